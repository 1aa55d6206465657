package finitediff

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// scanner reads the runes of a single summand. Parsing functions use it to
// consume the sign, coefficient, and order marker before handing the rest of
// the summand to parseArg.
type scanner struct {
	src string
	// pos is the byte offset of the next rune.
	pos int
	// last is the byte size of the last rune read, or 0 if it has been
	// unread or nothing has been read.
	last int
}

func scan(src string) *scanner {
	return &scanner{src: src}
}

// readRune reads the next rune. The second result is false at the end of the
// input.
func (l *scanner) readRune() (rune, bool) {
	if l.pos >= len(l.src) {
		l.last = 0
		return 0, false
	}
	r, sz := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += sz
	l.last = sz
	return r, true
}

// unreadRune unreads the last rune read. Panics if there is none.
func (l *scanner) unreadRune() {
	if l.last == 0 {
		panic("finitediff: unread without read")
	}
	l.pos -= l.last
	l.last = 0
}

// skipSpace consumes any whitespace.
func (l *scanner) skipSpace() {
	for {
		r, ok := l.readRune()
		if !ok {
			return
		}
		if !unicode.IsSpace(r) {
			l.unreadRune()
			return
		}
	}
}

// scanRun consumes the longest run of runes satisfying accept and returns it.
func (l *scanner) scanRun(accept func(rune) bool) string {
	start := l.pos
	for {
		r, ok := l.readRune()
		if !ok {
			break
		}
		if !accept(r) {
			l.unreadRune()
			break
		}
	}
	return l.src[start:l.pos]
}

// rest returns the unread remainder of the input without consuming it.
func (l *scanner) rest() string {
	return l.src[l.pos:]
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isCoefRune reports whether r can appear in a coefficient. Decimal commas
// have already been replaced by points.
func isCoefRune(r rune) bool {
	return isDigit(r) || r == '.'
}

// digitRuns counts the maximal runs of decimal digits in s.
func digitRuns(s string) int {
	n := 0
	in := false
	for _, r := range s {
		d := isDigit(r)
		if d && !in {
			n++
		}
		in = d
	}
	return n
}

// stripSpace removes all whitespace from s.
func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
