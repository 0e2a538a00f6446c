package gcode

import (
	"bytes"
	"io"
)

// Buffer renders instructions from a Reader on demand.
type Buffer struct {
	gr  Reader
	e   encoder
	n   int
	buf bytes.Buffer
	err error
}

var _ io.Reader = &Buffer{}

func NewBuffer(r Reader) *Buffer {
	return &Buffer{gr: r}
}

// Buffered returns the rendered bytes not yet read.
func (b *Buffer) Buffered() []byte { return b.buf.Bytes() }

func (b *Buffer) Read(p []byte) (n int, err error) {
	for b.err == nil && b.buf.Len() < len(p) {
		b.err = b.fill()
	}
	if b.buf.Len() > 0 {
		return b.buf.Read(p)
	}
	return 0, b.err
}

func (b *Buffer) fill() error {
	c, err := b.gr.Read()
	if err != nil {
		return err
	}
	i := b.n
	b.n++
	line, err := b.e.encode(c)
	if err != nil {
		return &RenderError{Index: i, Instruction: c, Err: err}
	}
	b.buf.WriteString(line)
	return nil
}
