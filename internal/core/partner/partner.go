// Copyright (c) 2026 Garagem. All rights reserved.

/*
Package partner implements the partner showcase of the storefront.

Partners are the garages, financing houses, and insurers displayed on the
public site. Reads are public; mutations are admin-only.
*/
package partner

import "time"

// Partner represents a business partner displayed on the storefront.
type Partner struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	LogoURL     *string   `json:"logoUrl"`
	Website     *string   `json:"website"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Patch carries a partial update. Nil fields are left untouched.
type Patch struct {
	Name        *string `json:"name"`
	LogoURL     *string `json:"logoUrl"`
	Website     *string `json:"website"`
	Description *string `json:"description"`
}

const (
	FieldName    = "name"
	FieldLogoURL = "logoUrl"
	FieldWebsite = "website"
)
