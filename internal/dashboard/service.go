// Copyright (c) 2026 Garagem. All rights reserved.

package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/pvieira/garagem/internal/platform/constants"
)

type Service struct {
	repo   Repository
	cache  Cache
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, cache Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}
}

// Stats returns the dashboard payload, serving from cache when fresh.
// Cache failures degrade to a direct database read, never to an error.
func (service *Service) Stats(context context.Context) (*Stats, error) {
	if service.cache != nil {
		cached, err := service.cache.Get(context)
		if err != nil {
			service.logger.Warn("dashboard_cache_read_failed", slog.String("error", err.Error()))
		}
		if cached != nil {
			return cached, nil
		}
	}

	aggregates, err := service.repo.InventoryAggregates(context)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		AvailableCars: aggregates.AvailableCars,
		TotalSales:    aggregates.TotalSales,
		TotalSpends:   aggregates.TotalSpends,
		Feed:          service.feed(),
		SalesChart:    salesChart(),
	}

	if service.cache != nil {
		if err := service.cache.Set(context, stats, constants.DashboardCacheTTL); err != nil {
			service.logger.Warn("dashboard_cache_write_failed", slog.String("error", err.Error()))
		}
	}

	return stats, nil
}

// feed returns the static industry news shown next to the statistics.
func (service *Service) feed() []FeedItem {
	now := service.now()

	return []FeedItem{
		{
			ID:      1,
			Title:   "New ISV Tax Rates 2025",
			Date:    now,
			Type:    "law",
			Content: "The government has approved new ISV rates...",
			URL:     "#",
		},
		{
			ID:      2,
			Title:   "Electric Vehicle Incentives",
			Date:    now.Add(-24 * time.Hour),
			Type:    "news",
			Content: "Apply for the new efficiency fund...",
			URL:     "#",
		},
		{
			ID:      3,
			Title:   "Used Car Market Report",
			Date:    now.Add(-48 * time.Hour),
			Type:    "business",
			Content: "Prices are stabilizing...",
			URL:     "#",
		},
	}
}

// salesChart returns the static monthly sales series.
func salesChart() []ChartPoint {
	return []ChartPoint{
		{Name: "Jan", Sales: 4000},
		{Name: "Feb", Sales: 3000},
		{Name: "Mar", Sales: 2000},
		{Name: "Apr", Sales: 2780},
		{Name: "May", Sales: 1890},
		{Name: "Jun", Sales: 2390},
	}
}
