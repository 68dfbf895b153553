// Package svgpath tokenizes SVG path data. It understands the commands emitted
// by the icon geometry (M, L, H, V, A, Z and their relative forms, plus the
// curve commands) and checks argument counts and arc flags, which is enough to
// validate generated paths without a full renderer.
package svgpath

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrEmpty is returned for path data with no commands.
var ErrEmpty = errors.New("svgpath: empty path data")

// Segment is one command with its arguments. Implicitly repeated commands are
// expanded into separate segments.
type Segment struct {
	Command byte
	Args    []float64
}

// ArcFlag holds the two flag arguments of an arc segment.
type ArcFlag struct {
	LargeArc bool
	Sweep    bool
}

var argCounts = map[byte]int{
	'M': 2, 'L': 2, 'T': 2,
	'H': 1, 'V': 1,
	'C': 6,
	'S': 4, 'Q': 4,
	'A': 7,
	'Z': 0,
}

// Parse splits d into segments. The first command must be a moveto.
func Parse(d string) ([]Segment, error) {
	s := &scanner{src: d}
	s.skipSeparators()
	if s.done() {
		return nil, ErrEmpty
	}

	var segments []Segment
	for !s.done() {
		cmd := s.src[s.pos]
		n, ok := argCount(cmd)
		if !ok {
			return nil, fmt.Errorf("svgpath: unknown command %q at offset %d", cmd, s.pos)
		}
		if len(segments) == 0 && cmd != 'M' && cmd != 'm' {
			return nil, fmt.Errorf("svgpath: path must start with a moveto, got %q", cmd)
		}
		s.pos++
		s.skipSeparators()

		if n == 0 {
			segments = append(segments, Segment{Command: cmd})
			continue
		}

		// A command letter may be followed by several argument groups.
		for first := true; first || s.startsNumber(); first = false {
			args, err := s.readArgs(cmd, n)
			if err != nil {
				return nil, err
			}
			segments = append(segments, Segment{Command: cmd, Args: args})
		}
	}
	return segments, nil
}

// ArcFlags returns the flags of every arc segment in d, in order.
func ArcFlags(d string) ([]ArcFlag, error) {
	segments, err := Parse(d)
	if err != nil {
		return nil, err
	}
	var flags []ArcFlag
	for _, seg := range segments {
		if seg.Command != 'A' && seg.Command != 'a' {
			continue
		}
		flags = append(flags, ArcFlag{LargeArc: seg.Args[3] == 1, Sweep: seg.Args[4] == 1})
	}
	return flags, nil
}

func argCount(cmd byte) (int, bool) {
	upper := cmd
	if cmd >= 'a' && cmd <= 'z' {
		upper = cmd - ('a' - 'A')
	}
	n, ok := argCounts[upper]
	return n, ok
}

func isArc(cmd byte) bool {
	return cmd == 'A' || cmd == 'a'
}

type scanner struct {
	src string
	pos int
}

func (s *scanner) done() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) skipSeparators() {
	for !s.done() {
		switch s.src[s.pos] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			s.pos++
		default:
			return
		}
	}
}

func (s *scanner) startsNumber() bool {
	if s.done() {
		return false
	}
	c := s.src[s.pos]
	return c == '+' || c == '-' || c == '.' || isDigit(c)
}

func (s *scanner) readArgs(cmd byte, n int) ([]float64, error) {
	args := make([]float64, n)
	for i := range args {
		if isArc(cmd) && (i == 3 || i == 4) {
			flag, err := s.readFlag()
			if err != nil {
				return nil, err
			}
			args[i] = flag
		} else {
			v, err := s.readNumber()
			if err != nil {
				return nil, fmt.Errorf("svgpath: command %q argument %d: %w", cmd, i+1, err)
			}
			args[i] = v
		}
		s.skipSeparators()
	}
	return args, nil
}

// readFlag reads a single 0 or 1 character; flags may be written without
// separators ("A10 10 0 01 5 5").
func (s *scanner) readFlag() (float64, error) {
	if s.done() {
		return 0, errors.New("svgpath: missing arc flag")
	}
	switch s.src[s.pos] {
	case '0':
		s.pos++
		return 0, nil
	case '1':
		s.pos++
		return 1, nil
	default:
		return 0, fmt.Errorf("svgpath: invalid arc flag %q at offset %d", s.src[s.pos], s.pos)
	}
}

func (s *scanner) readNumber() (float64, error) {
	start := s.pos
	if !s.done() && (s.src[s.pos] == '+' || s.src[s.pos] == '-') {
		s.pos++
	}
	digits := s.consumeDigits()
	if !s.done() && s.src[s.pos] == '.' {
		s.pos++
		digits += s.consumeDigits()
	}
	if digits == 0 {
		s.pos = start
		return 0, fmt.Errorf("expected number at offset %d", start)
	}
	if !s.done() && (s.src[s.pos] == 'e' || s.src[s.pos] == 'E') {
		mark := s.pos
		s.pos++
		if !s.done() && (s.src[s.pos] == '+' || s.src[s.pos] == '-') {
			s.pos++
		}
		if s.consumeDigits() == 0 {
			s.pos = mark
		}
	}
	return strconv.ParseFloat(s.src[start:s.pos], 64)
}

func (s *scanner) consumeDigits() int {
	n := 0
	for !s.done() && isDigit(s.src[s.pos]) {
		s.pos++
		n++
	}
	return n
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
