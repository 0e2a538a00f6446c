package gcode

// Float is an optional numeric field. The zero value is absent.
type Float struct {
	Value float64
	Valid bool
}

// Some returns a present Float holding v.
func Some(v float64) Float { return Float{Value: v, Valid: true} }

type Direction int

const (
	Clockwise Direction = iota
	AntiClockwise
)

type Distance int

const (
	Absolute Distance = iota
	Incremental
)

// An Instruction is one machine command. The set of implementations is
// closed; all of them are comparable values.
type Instruction interface {
	instruction()
}

// RapidPositioning moves at maximum speed (G0).
type RapidPositioning struct {
	X, Y Float
}

// LinearInterpolation moves in a straight line at feedrate F (G1).
type LinearInterpolation struct {
	X, Y, Z Float
	F       Float
}

// Dwell pauses for P (G4).
type Dwell struct {
	P float64
}

type UnitsInches struct{}

type UnitsMillimeters struct{}

type ProgramEnd struct{}

// StartSpindle turns the spindle on at speed S (M3 or M4).
type StartSpindle struct {
	Direction Direction
	S         float64
}

type StopSpindle struct{}

// DistanceMode selects how subsequent coordinates are interpreted (G90 or G91).
type DistanceMode struct {
	Mode Distance
}

// Comment is emitted inside parentheses.
type Comment string

// Raw is emitted as-is.
type Raw string

func (RapidPositioning) instruction()    {}
func (LinearInterpolation) instruction() {}
func (Dwell) instruction()               {}
func (UnitsInches) instruction()         {}
func (UnitsMillimeters) instruction()    {}
func (ProgramEnd) instruction()          {}
func (StartSpindle) instruction()        {}
func (StopSpindle) instruction()         {}
func (DistanceMode) instruction()        {}
func (Comment) instruction()             {}
func (Raw) instruction()                 {}
