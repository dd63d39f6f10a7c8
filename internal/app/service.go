// Package service provides the core business service that drives resort
// sessions over the rating store.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/okian/ranked/internal/adapters/oracle"
	"github.com/okian/ranked/internal/adapters/repository"
	"github.com/okian/ranked/internal/domain/bucket"
	"github.com/okian/ranked/internal/domain/glicko"
	"github.com/okian/ranked/internal/domain/model"
	"github.com/okian/ranked/internal/domain/selector"
	"github.com/okian/ranked/internal/domain/stability"
	"github.com/okian/ranked/pkg/logger"
	"github.com/okian/ranked/pkg/metrics"
)

// State is the terminal state of a resort run.
type State int

const (
	// Stabilized means every item's deviation is at or below the threshold.
	Stabilized State = iota
	// InsufficientData means the working set held fewer than 2 items and
	// the run was a no-op. Not an error; the file is left untouched.
	InsufficientData
)

// Result summarizes a completed resort run.
type Result struct {
	State       State
	Comparisons int
}

// Service orchestrates resort sessions: load, optional decay, and the
// compare/update/persist loop until the collection stabilizes.
//
// A session is single-threaded on purpose. One comparison is proposed,
// answered, applied, and persisted before the next is proposed, so
// selection always sees the freshest ratings and an interruption loses
// at most the comparison in flight.
type Service struct {
	store    repository.Store
	oracle   oracle.Oracle
	rater    glicko.Rater
	selector *selector.Selector
	buckets  *bucket.Assigner
	checker  *stability.Checker
	logger   logger.Logger

	defaultRating    float64
	defaultDeviation float64
}

// New constructs a Service with default collaborators. The store and
// oracle have no defaults and must be provided via options.
func New(opts ...Option) *Service {
	s := &Service{
		rater:            glicko.New(),
		selector:         selector.New(),
		buckets:          bucket.New(),
		checker:          stability.New(),
		defaultRating:    model.DefaultRating,
		defaultDeviation: model.DefaultDeviation,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	return s
}

// Add appends a new item with the default rating and deviation.
func (s *Service) Add(ctx context.Context, name string) error {
	if s.store == nil {
		return ErrNotConfigured
	}

	item := &model.Item{
		Name:      name,
		Rating:    s.defaultRating,
		Deviation: s.defaultDeviation,
	}
	if err := s.store.Append(ctx, item); err != nil {
		return fmt.Errorf("add %q: %w", name, err)
	}

	s.logger.Info(ctx, "added new record", logger.String("name", name))
	return nil
}

// Resort runs comparisons until every item's rating is confident enough
// to trust the ordering. When decay is set, one deviation-decay step is
// applied to every item first, which can re-open a settled collection.
//
// The store is rewritten after every answered comparison, so a run can
// be interrupted at any point and resumed later from the last persisted
// state. Storage and oracle failures abort the run; the file then still
// holds the last fully applied comparison.
func (s *Service) Resort(ctx context.Context, decay bool) (Result, error) {
	if s.store == nil || s.oracle == nil {
		return Result{}, ErrNotConfigured
	}

	runID := uuid.NewString()

	s.logger.Info(ctx, "loading ratings from disk", logger.String("run_id", runID))
	items, err := s.store.Load(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("load ratings: %w", err)
	}
	metrics.UpdateItemCount(len(items))

	if decay {
		s.logger.Info(ctx, "processing rating decay",
			logger.String("run_id", runID),
			logger.Int("items", len(items)),
		)
		for _, item := range items {
			r := s.rater.Decay(glicko.Rating{Value: item.Rating, Deviation: item.Deviation})
			item.Rating, item.Deviation = r.Value, r.Deviation
		}
	}

	if len(items) < 2 {
		s.logger.Warn(ctx, "cannot sort fewer than 2 items",
			logger.String("run_id", runID),
			logger.Int("items", len(items)),
		)
		return Result{State: InsufficientData}, nil
	}

	metrics.RecordResortRun()
	metrics.UpdateMaxDeviation(stability.MaxDeviation(items))

	// One-time shuffle so file order cannot bias the session.
	s.selector.Shuffle(items)

	comparisons := 0
	for s.checker.Unstable(items) {
		metrics.UpdateStabilized(false)

		left, right, err := s.selector.Pick(items)
		if err != nil {
			return Result{}, fmt.Errorf("select pair: %w", err)
		}

		answer, err := s.oracle.Ask(ctx, left.Name, right.Name)
		if err != nil {
			metrics.RecordOracleAbort()
			return Result{}, fmt.Errorf("compare %q and %q: %w", left.Name, right.Name, err)
		}

		// Equal folds into a right win; the rating model has no draw.
		outcome := glicko.Loss
		if answer == oracle.Left {
			outcome = glicko.Win
		}

		newLeft, newRight, err := s.rater.Update(
			glicko.Rating{Value: left.Rating, Deviation: left.Deviation},
			glicko.Rating{Value: right.Rating, Deviation: right.Deviation},
			outcome,
		)
		if err != nil {
			return Result{}, fmt.Errorf("update ratings for %q and %q: %w", left.Name, right.Name, err)
		}
		left.Rating, left.Deviation = newLeft.Value, newLeft.Deviation
		right.Rating, right.Deviation = newRight.Value, newRight.Deviation

		s.buckets.Assign(items)

		start := time.Now()
		if err := s.store.Save(ctx, items); err != nil {
			metrics.RecordPersistError()
			return Result{}, fmt.Errorf("save ratings: %w", err)
		}
		metrics.ObservePersistDuration(time.Since(start).Seconds())

		comparisons++
		metrics.RecordComparison()
		metrics.UpdateMaxDeviation(stability.MaxDeviation(items))
	}

	metrics.UpdateStabilized(true)
	s.logger.Info(ctx, "ratings are stabilized",
		logger.String("run_id", runID),
		logger.Int("comparisons", comparisons),
	)
	return Result{State: Stabilized, Comparisons: comparisons}, nil
}
