// Copyright (c) 2026 Garagem. All rights reserved.

package schema

// ContactsTable represents the 'contacts' table
type ContactsTable struct {
	Table     string
	ID        string
	Name      string
	Email     string
	Message   string
	CreatedAt string
}

// Contacts is the schema definition for contacts
var Contacts = ContactsTable{
	Table:     "contacts",
	ID:        "id",
	Name:      "name",
	Email:     "email",
	Message:   "message",
	CreatedAt: "createdat",
}

// Columns returns all standard column names
func (t ContactsTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Email, t.Message, t.CreatedAt,
	}
}
