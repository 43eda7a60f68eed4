// Copyright (c) 2026 Garagem. All rights reserved.

/*
Package car implements the vehicle inventory of the dealership.

Cars are the public face of the storefront (browse, filter, featured picks)
and the commercial ledger of the back office (purchase price, sale price,
buyer, sale date). Listing endpoints are public; every mutation is admin-only.
*/
package car

import "time"

// Sale status values. An empty status is treated as available for listings
// and dashboard counts, matching records created before the field existed.
const (
	StatusAvailable = "available"
	StatusSold      = "sold"
	StatusReserved  = "reserved"
)

// Statuses enumerates the accepted values for the status field.
var Statuses = []string{StatusAvailable, StatusSold, StatusReserved}

// Car represents a vehicle in the dealership inventory.
type Car struct {
	ID                  string     `json:"id"`
	Brand               string     `json:"brand"`
	Model               string     `json:"model"`
	Year                int        `json:"year"`
	Price               float64    `json:"price"`
	Km                  int        `json:"km"`
	Fuel                string     `json:"fuel"`
	MotorPower          int        `json:"motorPower"`
	EngineSize          *float64   `json:"engineSize"`
	Origin              *string    `json:"origin"`
	LastMaintenanceDate *time.Time `json:"lastMaintenanceDate"`
	Description         *string    `json:"description"`
	ImageURLs           []string   `json:"imageUrls"`
	Featured            bool       `json:"featured"`
	Status              string     `json:"status"`
	PurchasePrice       *float64   `json:"purchasePrice"`
	SoldPrice           *float64   `json:"soldPrice"`
	SoldTo              *string    `json:"soldTo"`
	SoldDate            *time.Time `json:"soldDate"`
	VehicleType         *string    `json:"vehicleType"`
	BodyType            *string    `json:"bodyType"`
	Transmission        *string    `json:"transmission"`
	Traction            *string    `json:"traction"`
	Condition           *string    `json:"condition"`
	ColorExterior       *string    `json:"colorExterior"`
	ColorInterior       *string    `json:"colorInterior"`
	Doors               *string    `json:"doors"`
	Seats               *int       `json:"seats"`
	Equipment           []string   `json:"equipment"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// Patch carries a partial update. Nil fields are left untouched; a non-nil
// pointer overwrites, including explicit nulls for clearable columns.
type Patch struct {
	Brand               *string    `json:"brand"`
	Model               *string    `json:"model"`
	Year                *int       `json:"year"`
	Price               *float64   `json:"price"`
	Km                  *int       `json:"km"`
	Fuel                *string    `json:"fuel"`
	MotorPower          *int       `json:"motorPower"`
	EngineSize          *float64   `json:"engineSize"`
	Origin              *string    `json:"origin"`
	LastMaintenanceDate *time.Time `json:"lastMaintenanceDate"`
	Description         *string    `json:"description"`
	ImageURLs           *[]string  `json:"imageUrls"`
	Featured            *bool      `json:"featured"`
	Status              *string    `json:"status"`
	PurchasePrice       *float64   `json:"purchasePrice"`
	SoldPrice           *float64   `json:"soldPrice"`
	SoldTo              *string    `json:"soldTo"`
	SoldDate            *time.Time `json:"soldDate"`
	VehicleType         *string    `json:"vehicleType"`
	BodyType            *string    `json:"bodyType"`
	Transmission        *string    `json:"transmission"`
	Traction            *string    `json:"traction"`
	Condition           *string    `json:"condition"`
	ColorExterior       *string    `json:"colorExterior"`
	ColorInterior       *string    `json:"colorInterior"`
	Doors               *string    `json:"doors"`
	Seats               *int       `json:"seats"`
	Equipment           *[]string  `json:"equipment"`
}

// Filter holds the parameters for a paginated inventory search.
//
// Zero values mean "not filtering on this field", so minPrice=0 cannot be
// expressed; storefront clients never need it.
type Filter struct {
	Brand    string
	Model    string
	MinYear  int
	MaxYear  int
	MinPrice float64
	MaxPrice float64
	MinKm    int
	MaxKm    int
	Fuel     string
	MinPower int
	MaxPower int
	Origin   string
	Status   string
	SoldTo   string
}

const (
	FieldBrand      = "brand"
	FieldModel      = "model"
	FieldYear       = "year"
	FieldPrice      = "price"
	FieldKm         = "km"
	FieldFuel       = "fuel"
	FieldMotorPower = "motorPower"
	FieldStatus     = "status"
)
