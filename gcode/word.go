package gcode

import (
	"strconv"
)

type Word struct {
	W   byte
	Arg float64
}

// formatFloat returns the shortest decimal form of f that round-trips,
// never using an exponent.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (w Word) String() string {
	return string(w.W) + formatFloat(w.Arg)
}
