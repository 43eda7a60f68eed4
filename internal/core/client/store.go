// Copyright (c) 2026 Garagem. All rights reserved.

package client

import "context"

type Repository interface {
	ListClients(context context.Context, f Filter, limit, offset int) ([]*Client, int, error)
	GetClient(context context.Context, id string) (*Client, error)
	CreateClient(context context.Context, c *Client) error
	UpdateClient(context context.Context, id string, patch *Patch) (*Client, error)
	DeleteClient(context context.Context, id string) error
}
