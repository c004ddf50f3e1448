package scenefile

import (
	"fmt"
	"strconv"
)

// scanner tokenizes SVG number lists, where numbers may be separated by
// whitespace, a comma, or nothing at all ("1-2.5.5" is 1, -2.5, .5).
type scanner struct {
	s   string
	pos int
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func (sc *scanner) skipSpace() {
	for sc.pos < len(sc.s) && isSpace(sc.s[sc.pos]) {
		sc.pos++
	}
}

// skipSep skips whitespace and at most one comma.
func (sc *scanner) skipSep() {
	sc.skipSpace()
	if sc.pos < len(sc.s) && sc.s[sc.pos] == ',' {
		sc.pos++
		sc.skipSpace()
	}
}

func (sc *scanner) done() bool {
	sc.skipSpace()
	return sc.pos >= len(sc.s)
}

// atNumber reports whether a number starts at the current position.
func (sc *scanner) atNumber() bool {
	sc.skipSep()
	if sc.pos >= len(sc.s) {
		return false
	}
	c := sc.s[sc.pos]
	return isDigit(c) || c == '-' || c == '+' || c == '.'
}

func (sc *scanner) number() (float64, error) {
	sc.skipSep()
	start := sc.pos
	i := sc.pos
	if i < len(sc.s) && (sc.s[i] == '-' || sc.s[i] == '+') {
		i++
	}
	digits := 0
	for i < len(sc.s) && isDigit(sc.s[i]) {
		i++
		digits++
	}
	if i < len(sc.s) && sc.s[i] == '.' {
		i++
		for i < len(sc.s) && isDigit(sc.s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, sc.errorf("expected number")
	}
	if i < len(sc.s) && (sc.s[i] == 'e' || sc.s[i] == 'E') {
		j := i + 1
		if j < len(sc.s) && (sc.s[j] == '-' || sc.s[j] == '+') {
			j++
		}
		if j < len(sc.s) && isDigit(sc.s[j]) {
			for j < len(sc.s) && isDigit(sc.s[j]) {
				j++
			}
			i = j
		}
	}
	v, err := strconv.ParseFloat(sc.s[start:i], 64)
	if err != nil {
		return 0, sc.errorf("%v", err)
	}
	sc.pos = i
	return v, nil
}

// flag reads an arc flag, which may be written without a separator.
func (sc *scanner) flag() (bool, error) {
	sc.skipSep()
	if sc.pos < len(sc.s) {
		switch sc.s[sc.pos] {
		case '0':
			sc.pos++
			return false, nil
		case '1':
			sc.pos++
			return true, nil
		}
	}
	return false, sc.errorf("expected flag")
}

func (sc *scanner) numbers(dst ...*float64) error {
	for _, d := range dst {
		v, err := sc.number()
		if err != nil {
			return err
		}
		*d = v
	}
	return nil
}

func (sc *scanner) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: offset %d: %s", ErrInvalidValue, sc.pos, fmt.Sprintf(format, args...))
}

// parseNumbers parses a whitespace or comma separated number list.
func parseNumbers(s string) ([]float64, error) {
	sc := &scanner{s: s}
	var out []float64
	for !sc.done() {
		v, err := sc.number()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
