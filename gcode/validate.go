package gcode

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// rxLine matches one line: any number of tokens, each '%', a
// parenthesized comment, or a letter followed by a number.
var rxLine = regexp.MustCompile(`^(?:(?:%|\(.*\)|[A-Z^E^U][+-]?\p{Nd}+(?:\.\p{Nd}*)?)[\t\p{Zs}]*)*$`)

// LineError reports the first line that does not match the grammar.
type LineError struct {
	Line int
	Text string
}

func (e *LineError) Error() string {
	return "invalid or unhandled line " + strconv.Itoa(e.Line) + ": " + e.Text
}

func validLine(s string) bool {
	return rxLine.MatchString(strings.TrimSuffix(s, "\r"))
}

// Valid reports whether every line of text is well-formed G-code.
func Valid(text string) bool {
	text = strings.TrimSuffix(text, "\n")
	for _, s := range strings.Split(text, "\n") {
		if !validLine(s) {
			return false
		}
	}
	return true
}

// Validate checks each line read from r, returning a *LineError for
// the first bad one.
func Validate(r io.Reader) error {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	for n := 1; ; n++ {
		s, err := br.ReadString('\n')
		if err == io.EOF && s != "" {
			err = nil
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		s = strings.TrimSuffix(s, "\n")
		if !validLine(s) {
			return &LineError{Line: n, Text: strings.TrimSuffix(s, "\r")}
		}
	}
}
