package gcode

import "io"

type Reader interface {
	Read() (Instruction, error)
}

// ProgramReader reads the instructions of a Program in order.
type ProgramReader struct {
	p *Program
	n int
}

func (r *ProgramReader) Read() (Instruction, error) {
	if r.n == r.p.Len() {
		return nil, io.EOF
	}

	r.n++
	return r.p.At(r.n - 1), nil
}
