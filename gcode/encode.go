package gcode

import (
	"errors"
	"fmt"
	"math"
)

// FeedrateEpsilon is the tolerance used when comparing a feedrate to the
// current one.
const FeedrateEpsilon = 2.220446049250313e-16

// ErrNoFeedrate is returned when a linear move is rendered before any
// feedrate has been set.
var ErrNoFeedrate = errors.New("linear interpolation without previously set feedrate")

// RenderError reports the instruction a program failed on.
type RenderError struct {
	Index       int
	Instruction Instruction
	Err         error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("instruction %d: %v", e.Index, e.Err)
}
func (e *RenderError) Unwrap() error { return e.Err }

// encoder turns instructions into lines. It carries the last emitted
// feedrate between calls.
type encoder struct {
	feed Float
}

// encode returns the line for c including the trailing newline, or an
// empty string if c produces no output.
func (e *encoder) encode(c Instruction) (string, error) {
	var b Block
	switch c := c.(type) {
	case RapidPositioning:
		if !c.X.Valid && !c.Y.Valid {
			return "", nil
		}
		b = Block{{W: 'G', Arg: 0}}
		b = b.appendOpt('X', c.X)
		b = b.appendOpt('Y', c.Y)
	case LinearInterpolation:
		if !c.X.Valid && !c.Y.Valid && !c.Z.Valid && !c.F.Valid {
			return "", nil
		}
		f, err := e.feedrate(c.F)
		if err != nil {
			return "", err
		}
		b = Block{{W: 'G', Arg: 1}}
		b = b.appendOpt('X', c.X)
		b = b.appendOpt('Y', c.Y)
		b = b.appendOpt('Z', c.Z)
		b = b.appendOpt('F', f)
	case Dwell:
		b = Block{{W: 'G', Arg: 4}, {W: 'P', Arg: c.P}}
	case UnitsInches:
		b = Block{{W: 'G', Arg: 20}}
	case UnitsMillimeters:
		b = Block{{W: 'G', Arg: 21}}
	case ProgramEnd:
		b = Block{{W: 'M', Arg: 20}}
	case StartSpindle:
		var code float64
		switch c.Direction {
		case Clockwise:
			code = 3
		case AntiClockwise:
			code = 4
		default:
			return "", unsupported(c)
		}
		b = Block{{W: 'M', Arg: code}, {W: 'S', Arg: c.S}}
	case StopSpindle:
		b = Block{{W: 'M', Arg: 5}}
	case DistanceMode:
		var code float64
		switch c.Mode {
		case Absolute:
			code = 90
		case Incremental:
			code = 91
		default:
			return "", unsupported(c)
		}
		b = Block{{W: 'G', Arg: code}}
	case Comment:
		return "(" + string(c) + ")\n", nil
	case Raw:
		return string(c) + "\n", nil
	default:
		return "", unsupported(c)
	}

	return b.String() + "\n", nil
}

func unsupported(c Instruction) error {
	return fmt.Errorf("unsupported instruction: %#v", c)
}

// feedrate decides which F word, if any, goes on a linear move.
//
// The current feedrate only advances when it is first set or when f
// matches it; a different f is emitted but not recorded.
func (e *encoder) feedrate(f Float) (Float, error) {
	switch {
	case !e.feed.Valid && !f.Valid:
		return Float{}, ErrNoFeedrate
	case !e.feed.Valid:
		e.feed = f
		return f, nil
	case !f.Valid:
		return Float{}, nil
	case math.Abs(e.feed.Value-f.Value) < FeedrateEpsilon:
		e.feed = f
		return Float{}, nil
	}
	return f, nil
}
