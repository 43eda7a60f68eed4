// Copyright (c) 2026 Garagem. All rights reserved.

package schema

// CarsTable represents the 'cars' table
type CarsTable struct {
	Table               string
	ID                  string
	Brand               string
	Model               string
	Year                string
	Price               string
	Km                  string
	Fuel                string
	MotorPower          string
	EngineSize          string
	Origin              string
	LastMaintenanceDate string
	Description         string
	ImageURLs           string
	Featured            string
	Status              string
	PurchasePrice       string
	SoldPrice           string
	SoldTo              string
	SoldDate            string
	VehicleType         string
	BodyType            string
	Transmission        string
	Traction            string
	Condition           string
	ColorExterior       string
	ColorInterior       string
	Doors               string
	Seats               string
	Equipment           string
	CreatedAt           string
	UpdatedAt           string
}

// Cars is the schema definition for cars
var Cars = CarsTable{
	Table:               "cars",
	ID:                  "id",
	Brand:               "brand",
	Model:               "model",
	Year:                "year",
	Price:               "price",
	Km:                  "km",
	Fuel:                "fuel",
	MotorPower:          "motorpower",
	EngineSize:          "enginesize",
	Origin:              "origin",
	LastMaintenanceDate: "lastmaintenancedate",
	Description:         "description",
	ImageURLs:           "imageurls",
	Featured:            "featured",
	Status:              "status",
	PurchasePrice:       "purchaseprice",
	SoldPrice:           "soldprice",
	SoldTo:              "soldto",
	SoldDate:            "solddate",
	VehicleType:         "vehicletype",
	BodyType:            "bodytype",
	Transmission:        "transmission",
	Traction:            "traction",
	Condition:           "condition",
	ColorExterior:       "colorexterior",
	ColorInterior:       "colorinterior",
	Doors:               "doors",
	Seats:               "seats",
	Equipment:           "equipment",
	CreatedAt:           "createdat",
	UpdatedAt:           "updatedat",
}

// Columns returns all standard column names
func (t CarsTable) Columns() []string {
	return []string{
		t.ID, t.Brand, t.Model, t.Year, t.Price, t.Km, t.Fuel, t.MotorPower,
		t.EngineSize, t.Origin, t.LastMaintenanceDate, t.Description,
		t.ImageURLs, t.Featured, t.Status, t.PurchasePrice, t.SoldPrice,
		t.SoldTo, t.SoldDate, t.VehicleType, t.BodyType, t.Transmission,
		t.Traction, t.Condition, t.ColorExterior, t.ColorInterior, t.Doors,
		t.Seats, t.Equipment, t.CreatedAt, t.UpdatedAt,
	}
}
