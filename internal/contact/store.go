// Copyright (c) 2026 Garagem. All rights reserved.

package contact

import "context"

type Repository interface {
	ListInquiries(context context.Context, limit, offset int) ([]*Inquiry, int, error)
	CreateInquiry(context context.Context, inquiry *Inquiry) error
}
