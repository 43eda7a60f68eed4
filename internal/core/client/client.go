// Copyright (c) 2026 Garagem. All rights reserved.

/*
Package client implements the dealership's customer records.

Clients hold contact details, the Portuguese tax number (NIF), free-form
notes, and uploaded document attachments (contracts, invoices). The whole
module is back-office only; nothing here is served to the storefront.
*/
package client

import "time"

// FileAttachment is a document linked to a client, stored as metadata
// pointing into the object store.
type FileAttachment struct {
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Client represents a dealership customer.
type Client struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Email     *string          `json:"email"`
	Phone     *string          `json:"phone"`
	NIF       *string          `json:"nif"`
	Address   *string          `json:"address"`
	Notes     *string          `json:"notes"`
	Files     []FileAttachment `json:"files"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// Patch carries a partial update. Nil fields are left untouched.
type Patch struct {
	Name    *string           `json:"name"`
	Email   *string           `json:"email"`
	Phone   *string           `json:"phone"`
	NIF     *string           `json:"nif"`
	Address *string           `json:"address"`
	Notes   *string           `json:"notes"`
	Files   *[]FileAttachment `json:"files"`
}

// Filter holds the parameters for a client search.
type Filter struct {
	Name  string // Case-insensitive substring match
	Email string // Case-insensitive substring match
}

const (
	FieldName  = "name"
	FieldEmail = "email"
)
