// Package selector picks which two items to compare next.
//
// Most of the time the two highest-deviation items are chosen, spending
// human effort where uncertainty is greatest. A minority of picks are
// uniformly random, which breaks the cycle where one stubborn pair keeps
// winning the deviation sort and occasionally re-validates the order of
// already-confident items.
package selector

import (
	"math/rand"
	"time"

	"github.com/okian/ranked/internal/domain/model"
)

// Default selection configuration constants.
const (
	defaultRandomPairProbability = 0.25
)

// Option applies a configuration option to the Selector.
type Option func(*Selector)

// WithRandomPairProbability sets the probability of picking a uniformly
// random pair instead of the two highest-deviation items.
func WithRandomPairProbability(p float64) Option {
	return func(s *Selector) {
		if p >= 0 && p <= 1 {
			s.randomPairProbability = p
		}
	}
}

// WithSeed makes the selector deterministic for testing.
func WithSeed(seed int64) Option {
	return func(s *Selector) {
		s.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // selection needs no cryptographic randomness
	}
}

// Selector chooses comparison pairs from the working set.
type Selector struct {
	rng                   *rand.Rand
	randomPairProbability float64
}

// New creates a Selector with configuration options.
func New(opts ...Option) *Selector {
	s := &Selector{
		rng:                   rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // selection needs no cryptographic randomness
		randomPairProbability: defaultRandomPairProbability,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Shuffle randomizes the working set in place. Called once before the
// first pick so file order cannot bias tie-breaking.
func (s *Selector) Shuffle(items []*model.Item) {
	s.rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

// Pick returns two distinct items from the working set. The pair is
// ordered for display only. Pick may reorder the slice; the working set
// carries no meaningful order during a run.
func (s *Selector) Pick(items []*model.Item) (left, right *model.Item, err error) {
	if len(items) < 2 {
		return nil, nil, ErrTooFewItems
	}

	if s.rng.Float64() < s.randomPairProbability {
		i := s.rng.Intn(len(items))
		j := s.rng.Intn(len(items) - 1)
		if j >= i {
			j++
		}
		return items[i], items[j], nil
	}

	// Deviation ties break arbitrarily; determinism is not required.
	top, second := 0, 1
	if items[second].Deviation > items[top].Deviation {
		top, second = second, top
	}
	for i := 2; i < len(items); i++ {
		switch {
		case items[i].Deviation > items[top].Deviation:
			second = top
			top = i
		case items[i].Deviation > items[second].Deviation:
			second = i
		}
	}
	return items[top], items[second], nil
}
