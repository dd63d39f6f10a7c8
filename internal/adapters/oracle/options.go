package oracle

import (
	"bufio"
	"io"
)

// Option applies a configuration option to the Terminal.
type Option func(*Terminal)

// WithInput sets the reader answers are read from.
func WithInput(r io.Reader) Option {
	return func(t *Terminal) {
		if r != nil {
			t.in = bufio.NewReader(r)
		}
	}
}

// WithOutput sets the writer prompts are written to.
func WithOutput(w io.Writer) Option {
	return func(t *Terminal) {
		if w != nil {
			t.out = w
		}
	}
}
