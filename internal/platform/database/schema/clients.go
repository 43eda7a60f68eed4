// Copyright (c) 2026 Garagem. All rights reserved.

package schema

// ClientsTable represents the 'clients' table
type ClientsTable struct {
	Table     string
	ID        string
	Name      string
	Email     string
	Phone     string
	NIF       string
	Address   string
	Notes     string
	Files     string
	CreatedAt string
	UpdatedAt string
}

// Clients is the schema definition for clients
var Clients = ClientsTable{
	Table:     "clients",
	ID:        "id",
	Name:      "name",
	Email:     "email",
	Phone:     "phone",
	NIF:       "nif",
	Address:   "address",
	Notes:     "notes",
	Files:     "files",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names
func (t ClientsTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Email, t.Phone, t.NIF, t.Address, t.Notes, t.Files,
		t.CreatedAt, t.UpdatedAt,
	}
}
