package gcode

import (
	"iter"
)

// Program is an ordered list of instructions.
type Program struct {
	codes []Instruction
}

// NewProgram returns a Program backed by codes. The caller must not
// use codes afterwards.
func NewProgram(codes []Instruction) *Program {
	return &Program{codes: codes}
}

func (p *Program) Push(c Instruction) { p.codes = append(p.codes, c) }

// Merge moves all instructions from other to the end of p, leaving
// other empty. Merging nil or p itself does nothing.
func (p *Program) Merge(other *Program) {
	if other == nil || other == p {
		return
	}
	p.codes = append(p.codes, other.codes...)
	other.codes = nil
}

func (p *Program) Len() int               { return len(p.codes) }
func (p *Program) At(i int) Instruction   { return p.codes[i] }
func (p *Program) Reader() *ProgramReader { return &ProgramReader{p: p} }

// All iterates over the instructions in order.
func (p *Program) All() iter.Seq2[int, Instruction] {
	return func(yield func(int, Instruction) bool) {
		for i, c := range p.codes {
			if !yield(i, c) {
				return
			}
		}
	}
}
