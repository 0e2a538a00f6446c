package gcode

import (
	"strings"
)

// Block is a single line of words.
type Block []Word

// appendOpt adds a word for v if it is set.
func (b Block) appendOpt(w byte, v Float) Block {
	if !v.Valid {
		return b
	}
	return append(b, Word{W: w, Arg: v.Value})
}

func (b Block) String() string {
	parts := make([]string, len(b))
	for i, g := range b {
		parts[i] = g.String()
	}
	return strings.Join(parts, " ")
}
