// Copyright (c) 2026 Garagem. All rights reserved.

package client

import (
	"context"
	"log/slog"

	"github.com/pvieira/garagem/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListClients(context context.Context, filter Filter, limit, offset int) ([]*Client, int, error) {
	return service.repo.ListClients(context, filter, limit, offset)
}

func (service *Service) GetClient(context context.Context, id string) (*Client, error) {
	return service.repo.GetClient(context, id)
}

func (service *Service) CreateClient(context context.Context, client *Client) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, client.Name).MaxLen(FieldName, client.Name, 200)

	if client.Email != nil && *client.Email != "" {
		validator.Email(FieldEmail, *client.Email)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateClient(context, client); err != nil {
		return err
	}

	service.logger.Info("client_created",
		slog.String("client_id", client.ID),
		slog.String("name", client.Name),
	)
	return nil
}

func (service *Service) UpdateClient(context context.Context, id string, patch *Patch) (*Client, error) {
	validator := &validate.Validator{}

	if patch.Name != nil {
		validator.Required(FieldName, *patch.Name).MaxLen(FieldName, *patch.Name, 200)
	}
	if patch.Email != nil && *patch.Email != "" {
		validator.Email(FieldEmail, *patch.Email)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	updated, err := service.repo.UpdateClient(context, id, patch)
	if err != nil {
		return nil, err
	}

	service.logger.Info("client_updated", slog.String("client_id", id))
	return updated, nil
}

func (service *Service) DeleteClient(context context.Context, id string) error {
	if err := service.repo.DeleteClient(context, id); err != nil {
		return err
	}

	service.logger.Warn("client_deleted", slog.String("client_id", id))
	return nil
}
