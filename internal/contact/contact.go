// Copyright (c) 2026 Garagem. All rights reserved.

/*
Package contact implements the storefront contact form.

Anyone can submit an inquiry; only admins can read the inbox.
*/
package contact

import "time"

// Inquiry is a message submitted through the public contact form.
type Inquiry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
	FieldSuccess = "success"
)
