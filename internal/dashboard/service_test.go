// Copyright (c) 2026 Garagem. All rights reserved.

package dashboard_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvieira/garagem/internal/dashboard"
)

// fakeRepository serves fixed aggregates and counts how often it is hit.
type fakeRepository struct {
	aggregates dashboard.Aggregates
	err        error
	calls      int
}

func (repo *fakeRepository) InventoryAggregates(_ context.Context) (*dashboard.Aggregates, error) {
	repo.calls++
	if repo.err != nil {
		return nil, repo.err
	}
	snapshot := repo.aggregates
	return &snapshot, nil
}

// fakeCache is an in-memory Cache that can be forced to fail.
type fakeCache struct {
	stats    *dashboard.Stats
	lastTTL  time.Duration
	getErr   error
	setErr   error
	setCalls int
}

func (cache *fakeCache) Get(_ context.Context) (*dashboard.Stats, error) {
	if cache.getErr != nil {
		return nil, cache.getErr
	}
	return cache.stats, nil
}

func (cache *fakeCache) Set(_ context.Context, stats *dashboard.Stats, ttl time.Duration) error {
	cache.setCalls++
	if cache.setErr != nil {
		return cache.setErr
	}
	cache.stats = stats
	cache.lastTTL = ttl
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/* TestStats_AssemblesPayload verifies that a cache miss produces the full
payload: inventory aggregates, the three-entry news feed, and the six-month
sales chart. */
func TestStats_AssemblesPayload(t *testing.T) {
	repo := &fakeRepository{aggregates: dashboard.Aggregates{
		AvailableCars: 12,
		TotalSales:    184500,
		TotalSpends:   96200,
	}}
	service := dashboard.NewService(repo, &fakeCache{}, discardLogger())

	stats, err := service.Stats(context.Background())
	require.NoError(t, err)

	// 1. Aggregates pass through unchanged
	assert.Equal(t, 12, stats.AvailableCars)
	assert.Equal(t, 184500.0, stats.TotalSales)
	assert.Equal(t, 96200.0, stats.TotalSpends)

	// 2. Static feed: three entries, newest first
	require.Len(t, stats.Feed, 3)
	assert.Equal(t, "New ISV Tax Rates 2025", stats.Feed[0].Title)
	assert.True(t, stats.Feed[0].Date.After(stats.Feed[1].Date))
	assert.True(t, stats.Feed[1].Date.After(stats.Feed[2].Date))

	// 3. Static chart: first half of the year
	require.Len(t, stats.SalesChart, 6)
	assert.Equal(t, "Jan", stats.SalesChart[0].Name)
	assert.Equal(t, 4000.0, stats.SalesChart[0].Sales)
	assert.Equal(t, "Jun", stats.SalesChart[5].Name)
}

/* TestStats_ServesFromCache verifies that a warm cache short-circuits the
database entirely. */
func TestStats_ServesFromCache(t *testing.T) {
	repo := &fakeRepository{}
	cache := &fakeCache{stats: &dashboard.Stats{AvailableCars: 7}}
	service := dashboard.NewService(repo, cache, discardLogger())

	stats, err := service.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 7, stats.AvailableCars)
	assert.Zero(t, repo.calls)
}

/* TestStats_PopulatesCacheOnMiss verifies that the freshly assembled payload
is written back to the cache with the standard TTL. */
func TestStats_PopulatesCacheOnMiss(t *testing.T) {
	repo := &fakeRepository{aggregates: dashboard.Aggregates{AvailableCars: 3}}
	cache := &fakeCache{}
	service := dashboard.NewService(repo, cache, discardLogger())

	_, err := service.Stats(context.Background())
	require.NoError(t, err)

	require.NotNil(t, cache.stats)
	assert.Equal(t, 3, cache.stats.AvailableCars)
	assert.Equal(t, 60*time.Second, cache.lastTTL)
}

/* TestStats_CacheFailuresDegrade verifies that neither a failing cache read
nor a failing write surfaces to the caller; the database result wins. */
func TestStats_CacheFailuresDegrade(t *testing.T) {
	repo := &fakeRepository{aggregates: dashboard.Aggregates{AvailableCars: 5}}
	cache := &fakeCache{
		getErr: errors.New("redis: connection refused"),
		setErr: errors.New("redis: connection refused"),
	}
	service := dashboard.NewService(repo, cache, discardLogger())

	stats, err := service.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, stats.AvailableCars)
	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, 1, cache.setCalls)
}

/* TestStats_RepositoryErrorSurfaces verifies that a database failure on a
cache miss is returned to the caller. */
func TestStats_RepositoryErrorSurfaces(t *testing.T) {
	repoErr := errors.New("pool exhausted")
	repo := &fakeRepository{err: repoErr}
	service := dashboard.NewService(repo, &fakeCache{}, discardLogger())

	_, err := service.Stats(context.Background())
	require.ErrorIs(t, err, repoErr)
}
