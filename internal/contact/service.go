// Copyright (c) 2026 Garagem. All rights reserved.

package contact

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

func (service *Service) ListInquiries(context context.Context, limit, offset int) ([]*Inquiry, int, error) {
	return service.repo.ListInquiries(context, limit, offset)
}

func (service *Service) SubmitInquiry(context context.Context, inquiry *Inquiry) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, inquiry.Name).MaxLen(FieldName, inquiry.Name, 200).
		Required(FieldEmail, inquiry.Email).Email(FieldEmail, inquiry.Email).
		Required(FieldMessage, inquiry.Message).MaxLen(FieldMessage, inquiry.Message, 5000)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateInquiry(context, inquiry); err != nil {
		return err
	}

	service.logger.Info("contact_inquiry_received",
		slog.String("inquiry_id", inquiry.ID),
		slog.String("email", inquiry.Email),
	)
	return nil
}
