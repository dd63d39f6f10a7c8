// Package glicko implements the Glicko rating update used to score
// pairwise comparisons.
//
// The math follows Professor Mark E. Glickman's original (Glicko-1)
// system for a single game between two players:
//   - q: scaling constant, ln(10)/400.
//   - G: a weighting function that reduces the influence of an opponent
//     with a high rating deviation.
//   - E: the expected score against the opponent.
//
// See http://www.glicko.net/glicko/glicko.pdf for more details.
package glicko

import (
	"fmt"
	"math"
)

// Default rating configuration constants.
const (
	defaultDecayFactor  = 63.2  // c: deviation increase per decay step
	defaultMaxDeviation = 350.0 // deviation ceiling enforced by decay
)

var q = math.Ln10 / 400

// Outcome is the result of one comparison from the left player's
// perspective. The model has no draw.
type Outcome int

const (
	// Loss means the right player won.
	Loss Outcome = iota
	// Win means the left player won.
	Win
)

// Rating is a player's strength estimate.
type Rating struct {
	Value     float64
	Deviation float64
}

// Rater applies a two-player rating update and a deviation decay step.
type Rater interface {
	// Update plays one game between left and right and returns both
	// updated ratings. Inputs and outputs must be finite.
	Update(left, right Rating, outcome Outcome) (Rating, Rating, error)

	// Decay increases a rating's deviation by one staleness step.
	Decay(r Rating) Rating
}

// Option applies a configuration option to the Glicko1 rater.
type Option func(*Glicko1)

// WithDecayFactor sets the c constant used by the decay step.
func WithDecayFactor(c float64) Option {
	return func(g *Glicko1) {
		if c > 0 {
			g.decayFactor = c
		}
	}
}

// WithMaxDeviation sets the deviation ceiling enforced by decay.
func WithMaxDeviation(maxDeviation float64) Option {
	return func(g *Glicko1) {
		if maxDeviation > 0 {
			g.maxDeviation = maxDeviation
		}
	}
}

// Glicko1 implements Rater with the Glicko-1 single-game update.
type Glicko1 struct {
	decayFactor  float64
	maxDeviation float64
}

// New creates a Glicko1 rater with configuration options.
func New(opts ...Option) *Glicko1 {
	g := &Glicko1{
		decayFactor:  defaultDecayFactor,
		maxDeviation: defaultMaxDeviation,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Update plays one game between left and right and returns both updated
// ratings. Non-finite inputs are rejected rather than clamped; a silently
// altered rating could mask corruption in the stored file.
func (g *Glicko1) Update(left, right Rating, outcome Outcome) (Rating, Rating, error) {
	for _, r := range []Rating{left, right} {
		if !finite(r) {
			return Rating{}, Rating{}, fmt.Errorf("%w: rating=%v deviation=%v", ErrNonFinite, r.Value, r.Deviation)
		}
	}

	leftScore, rightScore := 0.0, 1.0
	if outcome == Win {
		leftScore, rightScore = 1.0, 0.0
	}

	newLeft := updateOne(left, right, leftScore)
	newRight := updateOne(right, left, rightScore)

	for _, r := range []Rating{newLeft, newRight} {
		if !finite(r) {
			return Rating{}, Rating{}, fmt.Errorf("%w: update produced rating=%v deviation=%v", ErrNonFinite, r.Value, r.Deviation)
		}
	}
	return newLeft, newRight, nil
}

// Decay widens the deviation by one step, capped at the configured
// ceiling. Used to re-open settled items to new comparisons.
func (g *Glicko1) Decay(r Rating) Rating {
	d := math.Sqrt(r.Deviation*r.Deviation + g.decayFactor*g.decayFactor)
	return Rating{
		Value:     r.Value,
		Deviation: math.Min(d, g.maxDeviation),
	}
}

// updateOne returns the post-game rating of a player with score s
// (1 win, 0 loss) against the given opponent.
func updateOne(player, opponent Rating, s float64) Rating {
	gOpp := calcG(opponent.Deviation)
	e := calcE(player.Value, opponent.Value, gOpp)

	// d^2: variance of the estimated rating from this game alone.
	d2 := 1 / (q * q * gOpp * gOpp * e * (1 - e))

	denom := 1/(player.Deviation*player.Deviation) + 1/d2
	return Rating{
		Value:     player.Value + q/denom*gOpp*(s-e),
		Deviation: math.Sqrt(1 / denom),
	}
}

func calcG(deviation float64) float64 {
	return 1 / math.Sqrt(1+3*q*q*deviation*deviation/(math.Pi*math.Pi))
}

func calcE(rating, oppRating, gOpp float64) float64 {
	return 1 / (1 + math.Pow(10, -gOpp*(rating-oppRating)/400))
}

func finite(r Rating) bool {
	return !math.IsNaN(r.Value) && !math.IsInf(r.Value, 0) &&
		!math.IsNaN(r.Deviation) && !math.IsInf(r.Deviation, 0) &&
		r.Deviation >= 0
}
