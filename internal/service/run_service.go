package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Rory34/retail-rewards/internal/model"
)

type RunStore interface {
	Insert(ctx context.Context, run *model.CalculationRun) error
	ListRecent(ctx context.Context, limit int) ([]model.CalculationRun, error)
	Stats(ctx context.Context) (model.RunStats, error)
}

type RunService struct {
	store RunStore
	limit int
}

func NewRunService(store RunStore, limit int) *RunService {
	if limit < 1 {
		limit = 20
	}
	return &RunService{store: store, limit: limit}
}

func (s *RunService) Record(ctx context.Context, run *model.CalculationRun) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	if err := s.store.Insert(ctx, run); err != nil {
		return fmt.Errorf("insert calculation run: %w", err)
	}
	return nil
}

type RunOverview struct {
	Runs  []model.CalculationRun `json:"runs"`
	Stats model.RunStats         `json:"stats"`
}

func (s *RunService) Limit() int {
	return s.limit
}

// Overview fetches the most recent runs and the ledger totals. A limit below 1
// uses the service default.
func (s *RunService) Overview(ctx context.Context, limit int) (*RunOverview, error) {
	if limit < 1 {
		limit = s.limit
	}

	g, gctx := errgroup.WithContext(ctx)

	var runs []model.CalculationRun
	var stats model.RunStats

	g.Go(func() error {
		var err error
		runs, err = s.store.ListRecent(gctx, limit)
		return err
	})

	g.Go(func() error {
		var err error
		stats, err = s.store.Stats(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if runs == nil {
		runs = []model.CalculationRun{}
	}
	return &RunOverview{Runs: runs, Stats: stats}, nil
}
