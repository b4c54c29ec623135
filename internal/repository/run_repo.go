package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rory34/retail-rewards/internal/model"
)

type RunRepository struct {
	pool *pgxpool.Pool
}

func NewRunRepository(pool *pgxpool.Pool) *RunRepository {
	return &RunRepository{pool: pool}
}

func (r *RunRepository) Insert(ctx context.Context, run *model.CalculationRun) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO calculation_runs (id, status, customer_count, transaction_count, error_count, summary_count, total_points, earliest_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		run.ID, run.Status, run.CustomerCount, run.TransactionCount, run.ErrorCount,
		run.SummaryCount, run.TotalPoints, run.EarliestDate, run.CreatedAt,
	)
	return err
}

func (r *RunRepository) ListRecent(ctx context.Context, limit int) ([]model.CalculationRun, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, status, customer_count, transaction_count, error_count, summary_count, total_points, earliest_date, created_at
		FROM calculation_runs
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query calculation runs: %w", err)
	}
	defer rows.Close()

	var runs []model.CalculationRun
	for rows.Next() {
		var run model.CalculationRun
		if err := rows.Scan(&run.ID, &run.Status, &run.CustomerCount, &run.TransactionCount,
			&run.ErrorCount, &run.SummaryCount, &run.TotalPoints, &run.EarliestDate, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan calculation run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (r *RunRepository) Stats(ctx context.Context) (model.RunStats, error) {
	var stats model.RunStats
	err := r.pool.QueryRow(ctx,
		`SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'rejected'),
			COALESCE(SUM(total_points), 0)
		FROM calculation_runs`).
		Scan(&stats.TotalRuns, &stats.RejectedRuns, &stats.TotalPoints)
	if err != nil {
		return model.RunStats{}, fmt.Errorf("query run stats: %w", err)
	}
	return stats, nil
}
