package mux

import "github.com/katalvlaran/chipmux/codebook"

// baseKey is the value the key counter is reset to.
const baseKey = 0

// Context is the caller-owned spreading state: the current code book, the
// fixed book it resets to, and the auxiliary key counter.
//
// The zero value is ready to use and resets to the default book.
// A Context is not safe for concurrent use. Each goroutine should hold its
// own, or callers must serialise access externally.
type Context struct {
	opts Options
	book *codebook.Book
	key  int
}

// NewContext returns a Context already in its reset state.
// Returns ErrOptionViolation if any Option is invalid.
func NewContext(opts ...Option) (*Context, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	c := &Context{opts: o}
	c.Reset()

	return c, nil
}

// Reset restores the fixed code book and sets the key counter to its base
// value. A Context without a configured book falls back to codebook.Default().
func (c *Context) Reset() {
	if c.opts.Book == nil {
		c.opts.Book = codebook.Default()
	}

	c.key = baseKey
	c.book = c.opts.Book
}

// Book returns the code book currently in use.
func (c *Context) Book() *codebook.Book { return c.book }

// Key returns the auxiliary key counter.
func (c *Context) Key() int { return c.key }
