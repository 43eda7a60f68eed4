// Copyright (c) 2026 Garagem. All rights reserved.

package schema

// PartnersTable represents the 'partners' table
type PartnersTable struct {
	Table       string
	ID          string
	Name        string
	LogoURL     string
	Website     string
	Description string
	CreatedAt   string
	UpdatedAt   string
}

// Partners is the schema definition for partners
var Partners = PartnersTable{
	Table:       "partners",
	ID:          "id",
	Name:        "name",
	LogoURL:     "logourl",
	Website:     "website",
	Description: "description",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns all standard column names
func (t PartnersTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.LogoURL, t.Website, t.Description, t.CreatedAt, t.UpdatedAt,
	}
}
