// Copyright (c) 2026 Garagem. All rights reserved.

package client_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvieira/garagem/internal/core/client"
	"github.com/pvieira/garagem/internal/platform/apperr"
	"github.com/pvieira/garagem/internal/platform/dberr"
	"github.com/pvieira/garagem/pkg/pointer"
)

// memoryRepository approximates the postgres store's ILIKE substring filters.
type memoryRepository struct {
	clients map[string]*client.Client
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{clients: make(map[string]*client.Client)}
}

func (repo *memoryRepository) ListClients(_ context.Context, filter client.Filter, limit, offset int) ([]*client.Client, int, error) {
	matched := make([]*client.Client, 0, len(repo.clients))
	for _, record := range repo.clients {
		if filter.Name != "" && !strings.Contains(strings.ToLower(record.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.Email != "" {
			if record.Email == nil || !strings.Contains(strings.ToLower(*record.Email), strings.ToLower(filter.Email)) {
				continue
			}
		}
		matched = append(matched, record)
	}

	total := len(matched)
	if offset >= total {
		return []*client.Client{}, total, nil
	}
	end := min(offset+limit, total)
	return matched[offset:end], total, nil
}

func (repo *memoryRepository) GetClient(_ context.Context, id string) (*client.Client, error) {
	record, found := repo.clients[id]
	if !found {
		return nil, dberr.ErrNotFound
	}
	return record, nil
}

func (repo *memoryRepository) CreateClient(_ context.Context, record *client.Client) error {
	if record.ID == "" {
		record.ID = fmt.Sprintf("client-%d", len(repo.clients)+1)
	}
	repo.clients[record.ID] = record
	return nil
}

func (repo *memoryRepository) UpdateClient(_ context.Context, id string, patch *client.Patch) (*client.Client, error) {
	record, found := repo.clients[id]
	if !found {
		return nil, dberr.ErrNotFound
	}
	if patch.Name != nil {
		record.Name = *patch.Name
	}
	if patch.Email != nil {
		record.Email = patch.Email
	}
	if patch.Files != nil {
		record.Files = *patch.Files
	}
	return record, nil
}

func (repo *memoryRepository) DeleteClient(_ context.Context, id string) error {
	if _, found := repo.clients[id]; !found {
		return dberr.ErrNotFound
	}
	delete(repo.clients, id)
	return nil
}

func newService(repo *memoryRepository) *client.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return client.NewService(repo, logger)
}

/* TestCreateClient_Valid verifies that a customer record with just a name is
enough; all contact fields are optional. */
func TestCreateClient_Valid(t *testing.T) {
	repo := newMemoryRepository()
	service := newService(repo)

	require.NoError(t, service.CreateClient(context.Background(), &client.Client{Name: "João Sousa"}))
	require.NoError(t, service.CreateClient(context.Background(), &client.Client{
		Name:  "Ana Martins",
		Email: pointer.To("ana@example.pt"),
		NIF:   pointer.To("245678901"),
	}))

	assert.Len(t, repo.clients, 2)
}

/* TestCreateClient_ValidationFailures verifies that the name is mandatory
and a present email must parse. */
func TestCreateClient_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		record client.Client
	}{
		{name: "missing name", record: client.Client{Email: pointer.To("ana@example.pt")}},
		{name: "oversized name", record: client.Client{Name: strings.Repeat("x", 201)}},
		{name: "malformed email", record: client.Client{Name: "Ana", Email: pointer.To("not-an-email")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryRepository()
			service := newService(repo)

			err := service.CreateClient(context.Background(), &tt.record)
			require.Error(t, err)

			var appError *apperr.AppError
			require.ErrorAs(t, err, &appError)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)
			assert.Empty(t, repo.clients)
		})
	}
}

/* TestListClients_SubstringSearch verifies the back-office search: name and
email filters match case-insensitive substrings. */
func TestListClients_SubstringSearch(t *testing.T) {
	repo := newMemoryRepository()
	service := newService(repo)

	require.NoError(t, service.CreateClient(context.Background(), &client.Client{Name: "João Sousa", Email: pointer.To("joao@example.pt")}))
	require.NoError(t, service.CreateClient(context.Background(), &client.Client{Name: "Ana Sousa", Email: pointer.To("ana@corp.pt")}))
	require.NoError(t, service.CreateClient(context.Background(), &client.Client{Name: "Rui Pinto", Email: pointer.To("rui@corp.pt")}))

	listing, total, err := service.ListClients(context.Background(), client.Filter{Name: "sousa"}, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, listing, 2)

	listing, total, err = service.ListClients(context.Background(), client.Filter{Name: "sousa", Email: "corp"}, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, listing, 1)
	assert.Equal(t, "Ana Sousa", listing[0].Name)
}

/* TestUpdateClient_AttachFiles verifies that document attachments arrive via
a whole-slice patch and untouched fields survive. */
func TestUpdateClient_AttachFiles(t *testing.T) {
	repo := newMemoryRepository()
	service := newService(repo)

	record := &client.Client{Name: "João Sousa"}
	require.NoError(t, service.CreateClient(context.Background(), record))

	files := []client.FileAttachment{{
		Name:       "contract.pdf",
		URL:        "https://api.garagem.pt/uploads/clients/joao/contract.pdf",
		UploadedAt: time.Now(),
	}}
	updated, err := service.UpdateClient(context.Background(), record.ID, &client.Patch{Files: &files})
	require.NoError(t, err)

	assert.Equal(t, "João Sousa", updated.Name)
	require.Len(t, updated.Files, 1)
	assert.Equal(t, "contract.pdf", updated.Files[0].Name)
}

/* TestDeleteClient verifies removal and the not-found error for an unknown
record. */
func TestDeleteClient(t *testing.T) {
	repo := newMemoryRepository()
	service := newService(repo)

	record := &client.Client{Name: "João Sousa"}
	require.NoError(t, service.CreateClient(context.Background(), record))

	require.NoError(t, service.DeleteClient(context.Background(), record.ID))
	require.ErrorIs(t, service.DeleteClient(context.Background(), "missing"), dberr.ErrNotFound)
}
