package gcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(p *Program) []Instruction {
	var res []Instruction
	for _, c := range p.All() {
		res = append(res, c)
	}
	return res
}

func TestProgram_Push(t *testing.T) {
	var p Program
	assert.Equal(t, 0, p.Len())

	p.Push(UnitsInches{})
	p.Push(Dwell{P: 2})
	p.Push(UnitsInches{})

	assert.Equal(t, 3, p.Len())
	assert.Equal(t, Dwell{P: 2}, p.At(1))
	assert.Equal(t, []Instruction{UnitsInches{}, Dwell{P: 2}, UnitsInches{}}, collect(&p))
}

func TestProgram_Merge(t *testing.T) {
	a := NewProgram([]Instruction{UnitsMillimeters{}, Comment("a")})
	b := NewProgram([]Instruction{Raw("M2"), ProgramEnd{}})

	a.Merge(b)

	assert.Equal(t, []Instruction{UnitsMillimeters{}, Comment("a"), Raw("M2"), ProgramEnd{}}, collect(a))
	assert.Equal(t, 0, b.Len())
	assert.Empty(t, collect(b))

	// b stays usable after being drained
	b.Push(StopSpindle{})
	assert.Equal(t, []Instruction{StopSpindle{}}, collect(b))
	assert.Equal(t, 4, a.Len())

	a.Merge(a)
	assert.Equal(t, 4, a.Len())

	a.Merge(nil)
	assert.Equal(t, 4, a.Len())
}

func TestProgram_AllBreak(t *testing.T) {
	p := NewProgram([]Instruction{UnitsInches{}, UnitsMillimeters{}, ProgramEnd{}})
	var seen []int
	for i := range p.All() {
		seen = append(seen, i)
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []int{0, 1}, seen)
}

func TestInstruction_Equal(t *testing.T) {
	a := LinearInterpolation{X: Some(1), F: Some(100)}
	b := LinearInterpolation{X: Some(1), F: Some(100)}
	c := LinearInterpolation{X: Some(1), Y: Some(0), F: Some(100)}

	assert.True(t, Instruction(a) == Instruction(b))
	assert.False(t, Instruction(a) == Instruction(c))
	assert.False(t, Instruction(Comment("x")) == Instruction(Raw("x")))

	// an absent field is not the same as zero
	assert.NotEqual(t, RapidPositioning{X: Some(0)}, RapidPositioning{})
}
