// Copyright (c) 2026 Garagem. All rights reserved.

package partner

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

func (service *Service) ListPartners(context context.Context) ([]*Partner, error) {
	return service.repo.ListPartners(context)
}

func (service *Service) GetPartner(context context.Context, id string) (*Partner, error) {
	return service.repo.GetPartner(context, id)
}

func (service *Service) CreatePartner(context context.Context, partner *Partner) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, partner.Name).MaxLen(FieldName, partner.Name, 200)

	if partner.LogoURL != nil && *partner.LogoURL != "" {
		validator.URL(FieldLogoURL, *partner.LogoURL)
	}
	if partner.Website != nil && *partner.Website != "" {
		validator.URL(FieldWebsite, *partner.Website)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreatePartner(context, partner); err != nil {
		return err
	}

	service.logger.Info("partner_created",
		slog.String("partner_id", partner.ID),
		slog.String("name", partner.Name),
	)
	return nil
}

func (service *Service) UpdatePartner(context context.Context, id string, patch *Patch) (*Partner, error) {
	validator := &validate.Validator{}

	if patch.Name != nil {
		validator.Required(FieldName, *patch.Name).MaxLen(FieldName, *patch.Name, 200)
	}
	if patch.LogoURL != nil && *patch.LogoURL != "" {
		validator.URL(FieldLogoURL, *patch.LogoURL)
	}
	if patch.Website != nil && *patch.Website != "" {
		validator.URL(FieldWebsite, *patch.Website)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	updated, err := service.repo.UpdatePartner(context, id, patch)
	if err != nil {
		return nil, err
	}

	service.logger.Info("partner_updated", slog.String("partner_id", id))
	return updated, nil
}

func (service *Service) DeletePartner(context context.Context, id string) error {
	if err := service.repo.DeletePartner(context, id); err != nil {
		return err
	}

	service.logger.Warn("partner_deleted", slog.String("partner_id", id))
	return nil
}
