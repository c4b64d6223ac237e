package queries

import (
	"context"

	"estate-marketplace/internal/domain/unit"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type StatusStats struct {
	Count int64           `json:"count"`
	Value decimal.Decimal `json:"value"`
}

type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
	Avg decimal.Decimal `json:"avg"`
}

type ProjectStats struct {
	ProjectID  uuid.UUID                   `json:"projectId"`
	Total      int64                       `json:"total"`
	TotalValue decimal.Decimal             `json:"totalValue"`
	ByStatus   map[unit.Status]StatusStats `json:"byStatus"`
	PriceRange PriceRange                  `json:"priceRange"`
}

// StatusAggregate is one GROUP BY status row over a project's live units.
type StatusAggregate struct {
	Status   unit.Status
	Count    int64
	Value    decimal.Decimal
	MinPrice decimal.Decimal
	MaxPrice decimal.Decimal
}

// FoldStats merges per-status rows into project totals. Every status is
// present in ByStatus, zero-valued when absent from rows.
func FoldStats(projectID uuid.UUID, rows []StatusAggregate) ProjectStats {
	stats := ProjectStats{
		ProjectID:  projectID,
		TotalValue: decimal.Zero,
		ByStatus:   make(map[unit.Status]StatusStats, len(unit.Statuses)),
		PriceRange: PriceRange{Min: decimal.Zero, Max: decimal.Zero, Avg: decimal.Zero},
	}
	for _, s := range unit.Statuses {
		stats.ByStatus[s] = StatusStats{Value: decimal.Zero}
	}

	seen := false
	for _, row := range rows {
		if row.Count == 0 {
			continue
		}
		prev := stats.ByStatus[row.Status]
		stats.ByStatus[row.Status] = StatusStats{
			Count: prev.Count + row.Count,
			Value: prev.Value.Add(row.Value),
		}
		stats.Total += row.Count
		stats.TotalValue = stats.TotalValue.Add(row.Value)

		if !seen || row.MinPrice.LessThan(stats.PriceRange.Min) {
			stats.PriceRange.Min = row.MinPrice
		}
		if !seen || row.MaxPrice.GreaterThan(stats.PriceRange.Max) {
			stats.PriceRange.Max = row.MaxPrice
		}
		seen = true
	}
	if stats.Total > 0 {
		stats.PriceRange.Avg = stats.TotalValue.Div(decimal.NewFromInt(stats.Total)).Round(2)
	}
	return stats
}

// StatsCache is a best-effort read-through cache; misses and failures look the same.
type StatsCache interface {
	Get(ctx context.Context, projectID uuid.UUID) (*ProjectStats, bool)
	Set(ctx context.Context, stats *ProjectStats)
}

type NopStatsCache struct{}

func (NopStatsCache) Get(context.Context, uuid.UUID) (*ProjectStats, bool) { return nil, false }
func (NopStatsCache) Set(context.Context, *ProjectStats)                   {}
