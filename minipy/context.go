package minipy

import (
	"bytes"
	"io"
)

// Context is the evaluator's I/O boundary: it supplies the stream
// print writes to.
type Context interface {
	Output() io.Writer
}

// SimpleContext passes output through to a caller-provided writer.
type SimpleContext struct {
	out io.Writer
}

func NewSimpleContext(w io.Writer) *SimpleContext { return &SimpleContext{out: w} }

func (c *SimpleContext) Output() io.Writer { return c.out }

// BufferedContext collects output in memory, mainly for tests.
type BufferedContext struct {
	buf bytes.Buffer
}

func (c *BufferedContext) Output() io.Writer { return &c.buf }

func (c *BufferedContext) String() string { return c.buf.String() }
