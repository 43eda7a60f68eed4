// Copyright (c) 2026 Garagem. All rights reserved.

package partner

import "context"

type Repository interface {
	ListPartners(context context.Context) ([]*Partner, error)
	GetPartner(context context.Context, id string) (*Partner, error)
	CreatePartner(context context.Context, p *Partner) error
	UpdatePartner(context context.Context, id string, patch *Patch) (*Partner, error)
	DeletePartner(context context.Context, id string) error
}
