package gcode

import (
	"io"
)

// Render writes p to w as G-code, one Write call per line.
//
// Errors from w are returned unchanged. A linear move before any
// feedrate is set fails with a *RenderError wrapping ErrNoFeedrate.
// Lines written before an error are not undone.
func Render(w io.Writer, p *Program) error {
	_, err := p.WriteTo(w)
	return err
}

// WriteTo implements io.WriterTo.
func (p *Program) WriteTo(w io.Writer) (n int64, err error) {
	var e encoder
	for i, c := range p.All() {
		line, err := e.encode(c)
		if err != nil {
			return n, &RenderError{Index: i, Instruction: c, Err: err}
		}
		if line == "" {
			continue
		}
		nn, err := io.WriteString(w, line)
		n += int64(nn)
		if err == nil && nn < len(line) {
			err = io.ErrShortWrite
		}
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
