package service

import (
	"github.com/okian/ranked/internal/adapters/oracle"
	"github.com/okian/ranked/internal/adapters/repository"
	"github.com/okian/ranked/internal/domain/bucket"
	"github.com/okian/ranked/internal/domain/glicko"
	"github.com/okian/ranked/internal/domain/selector"
	"github.com/okian/ranked/internal/domain/stability"
	"github.com/okian/ranked/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the rating store. Required.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithOracle sets the comparison oracle. Required for Resort.
func WithOracle(o oracle.Oracle) Option {
	return func(s *Service) {
		if o != nil {
			s.oracle = o
		}
	}
}

// WithRater sets the rating update function.
func WithRater(r glicko.Rater) Option {
	return func(s *Service) {
		if r != nil {
			s.rater = r
		}
	}
}

// WithSelector sets the pair selector.
func WithSelector(sel *selector.Selector) Option {
	return func(s *Service) {
		if sel != nil {
			s.selector = sel
		}
	}
}

// WithBucketAssigner sets the rank bucket assigner.
func WithBucketAssigner(a *bucket.Assigner) Option {
	return func(s *Service) {
		if a != nil {
			s.buckets = a
		}
	}
}

// WithChecker sets the convergence checker.
func WithChecker(c *stability.Checker) Option {
	return func(s *Service) {
		if c != nil {
			s.checker = c
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDefaults sets the rating and deviation seeded onto added items.
func WithDefaults(rating, deviation float64) Option {
	return func(s *Service) {
		if deviation >= 0 {
			s.defaultRating = rating
			s.defaultDeviation = deviation
		}
	}
}
