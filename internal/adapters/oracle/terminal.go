package oracle

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// Terminal implements Oracle over an interactive text stream.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal creates a terminal oracle reading stdin and writing stdout
// unless overridden by options.
func NewTerminal(opts ...Option) *Terminal {
	t := &Terminal{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Ask presents the pair and reads one answer. An empty line defaults to
// Equal, matching the prompt's resting position between the candidates.
func (t *Terminal) Ask(ctx context.Context, left, right string) (Answer, error) {
	if err := ctx.Err(); err != nil {
		return Equal, fmt.Errorf("%w: %v", ErrAborted, err)
	}

	fmt.Fprintln(t.out, "Which is better?")
	fmt.Fprintf(t.out, "  1. %s\n", left)
	fmt.Fprintf(t.out, "  2. %s\n", right)
	fmt.Fprint(t.out, "Answer [1/2/equal, default equal]: ")

	line, err := t.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return Equal, fmt.Errorf("%w: %v", ErrAborted, err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "1", "l", "left":
		return Left, nil
	case "2", "r", "right":
		return Right, nil
	case "", "e", "=", "equal":
		return Equal, nil
	default:
		return Equal, fmt.Errorf("%w: unrecognized answer %q", ErrAborted, strings.TrimSpace(line))
	}
}
