// Package oracle defines the human-interaction boundary that answers
// comparison requests.
package oracle

import (
	"context"
)

// Answer is the human's verdict on one comparison.
type Answer int

const (
	// Left means the first candidate is better.
	Left Answer = iota
	// Equal means neither candidate is better. Callers fold this into
	// the same outcome as Right winning; the rating model has no draw.
	Equal
	// Right means the second candidate is better.
	Right
)

// Oracle answers comparison requests. Ask blocks until the human
// responds; a cancelled or malformed answer is returned as ErrAborted
// and the caller must abandon the run.
type Oracle interface {
	Ask(ctx context.Context, left, right string) (Answer, error)
}
