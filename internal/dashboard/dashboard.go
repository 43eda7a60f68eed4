// Copyright (c) 2026 Garagem. All rights reserved.

/*
Package dashboard assembles the admin console landing page statistics.

The numbers come from SQL aggregates over the car inventory; the news feed
and sales chart are static server-assembled content. Results are cached in
redis for a short window since the dashboard is polled on every console
visit.
*/
package dashboard

import (
	"context"
	"time"
)

// Stats is the dashboard payload.
type Stats struct {
	AvailableCars int          `json:"availableCars"`
	TotalSales    float64      `json:"totalSales"`
	TotalSpends   float64      `json:"totalSpends"`
	Feed          []FeedItem   `json:"feed"`
	SalesChart    []ChartPoint `json:"salesChart"`
}

// FeedItem is a news entry shown next to the statistics.
type FeedItem struct {
	ID      int       `json:"id"`
	Title   string    `json:"title"`
	Date    time.Time `json:"date"`
	Type    string    `json:"type"`
	Content string    `json:"content"`
	URL     string    `json:"url"`
}

// ChartPoint is one bar of the monthly sales chart.
type ChartPoint struct {
	Name  string  `json:"name"`
	Sales float64 `json:"sales"`
}

// Aggregates are the raw inventory numbers the stats are built from.
type Aggregates struct {
	AvailableCars int
	TotalSales    float64
	TotalSpends   float64
}

// Repository provides the inventory aggregates.
type Repository interface {
	InventoryAggregates(context context.Context) (*Aggregates, error)
}

// Cache persists assembled stats between polls. A miss returns (nil, nil).
type Cache interface {
	Get(context context.Context) (*Stats, error)
	Set(context context.Context, stats *Stats, ttl time.Duration) error
}
