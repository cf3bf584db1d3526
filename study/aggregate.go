// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package study

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	"github.com/danielhkuo/variety-study/models"
)

// Querier is the read primitive the aggregator needs. *sql.DB satisfies it.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type cellKey struct {
	condition models.Condition
	variety   models.Variety
}

// Aggregate scans all persisted responses and produces the dense 2x3
// breakdown. The scan is read-only and may be stale relative to in-flight
// writes; that is acceptable for a live classroom view.
func Aggregate(ctx context.Context, db Querier) (models.AggregateView, error) {
	counts, err := countResponses(ctx, db)
	if err != nil {
		return models.AggregateView{}, fmt.Errorf("failed to aggregate responses: %w", err)
	}
	return buildView(counts), nil
}

// countResponses groups stored responses by (condition, variety).
func countResponses(ctx context.Context, db Querier) (map[cellKey]int, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT condition, variety, COUNT(*)
		FROM yogurt_variety
		GROUP BY condition, variety
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[cellKey]int)
	for rows.Next() {
		var condition models.Condition
		var variety models.Variety
		var n int
		if err := rows.Scan(&condition, &variety, &n); err != nil {
			return nil, err
		}
		counts[cellKey{condition, variety}] = n
	}

	return counts, rows.Err()
}

// buildView lays observed counts over a zero-filled 2x3 grid and computes
// within-condition percentages. A condition with no responses reports 0%
// in every cell rather than dividing by zero. Cell order is fixed:
// varieties Low/Medium/High inside conditions sequential/simultaneous.
func buildView(counts map[cellKey]int) models.AggregateView {
	view := models.AggregateView{
		Conditions: make([]models.ConditionBreakdown, 0, len(models.Conditions)),
	}

	for _, condition := range models.Conditions {
		breakdown := models.ConditionBreakdown{
			Condition: condition,
			Cells:     make([]models.VarietyCell, 0, len(models.Varieties)),
		}

		for _, variety := range models.Varieties {
			n := counts[cellKey{condition, variety}]
			breakdown.Total += n
			breakdown.Cells = append(breakdown.Cells, models.VarietyCell{
				Variety: variety,
				Count:   n,
			})
		}

		if breakdown.Total > 0 {
			for i := range breakdown.Cells {
				share := float64(breakdown.Cells[i].Count) / float64(breakdown.Total)
				breakdown.Cells[i].Percent = int(math.Round(share * 100))
			}
		}

		view.Total += breakdown.Total
		view.Conditions = append(view.Conditions, breakdown)
	}

	return view
}
