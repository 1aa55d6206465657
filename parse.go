package finitediff

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Summand = [Sign] [Coef ['*']] Term
// Sign = '+' | '-'
// Coef = digits | digits '.' digits        (',' is accepted for '.')
// Term = ['d' [['^'] digits]] 'u' Arg
// Arg = '(' 'x' ')' | '(' 'x' Sign 'h' ')' | '(' 'x' Sign digits ['*'] 'h' ')'
//
// Whitespace may appear between any two tokens except inside numbers. Letters
// are case-insensitive.

// summand is a parsed summand before it is turned into a Difference.
type summand struct {
	// sign is +1 or -1.
	sign float64
	// coef is the coefficient, 1 if absent.
	coef float64
	// order is the order of the difference, 0 if absent.
	order int
	// offset is the multiplier of h in the argument of u.
	offset int
}

// parseSummand parses the text of one summand. If signed is true, the summand
// must begin with a sign; otherwise the sign defaults to +. Errors are not
// located; the caller attaches the fragment.
func parseSummand(text string, signed bool) (summand, error) {
	text = strings.TrimSpace(strings.ToLower(strings.ReplaceAll(text, ",", ".")))
	if text == "" {
		return summand{}, formatErr(EmptySummand)
	}
	p := summand{sign: 1, coef: 1}
	l := scan(text)
	switch r, _ := l.readRune(); r {
	case '+': // do nothing
	case '-':
		p.sign = -1
	default:
		if signed {
			return p, formatErr(MissingSign)
		}
		l.unreadRune()
	}
	l.skipSpace()
	lit := l.scanRun(isCoefRune)
	if lit != "" {
		c, err := parseCoef(lit)
		if err != nil {
			return p, err
		}
		p.coef = c
	}
	l.skipSpace()
	r, ok := l.readRune()
	if ok && r == '*' {
		if lit == "" {
			// +*du(x)
			return p, formatErr(MalformedCoefficient)
		}
		l.skipSpace()
		r, ok = l.readRune()
	}
	if !ok {
		return p, formatErr(MissingDifferenceTerm)
	}
	switch {
	case isCoefRune(r), r == '*', r == '+', r == '-':
		// A second number, multiplication, or sign where the difference
		// term should begin: 1 1du(x), 2*2*du(x), ++du(x), 2+2du(x).
		return p, formatErr(MalformedCoefficient)
	}
	l.unreadRune()
	order, err := parseOrder(l)
	if err != nil {
		return p, err
	}
	p.order = order
	p.offset, err = parseArg(l.rest())
	if err != nil {
		return p, err
	}
	return p, nil
}

// parseCoef parses a coefficient literal consisting of digits and points.
func parseCoef(lit string) (float64, error) {
	if lit[0] == '.' || lit[len(lit)-1] == '.' || strings.Count(lit, ".") > 1 {
		return 0, formatErr(MalformedCoefficient)
	}
	c, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, overflowErr(CoefficientOverflow, lit)
		}
		return 0, formatErr(MalformedCoefficient)
	}
	return c, nil
}

// parseOrder scans an optional order marker followed by u. The order is 1 for
// a bare d and 0 if there is no marker.
func parseOrder(l *scanner) (int, error) {
	if !strings.ContainsRune(l.rest(), 'u') {
		return 0, formatErr(MissingU)
	}
	switch r, _ := l.readRune(); r {
	case 'u':
		return 0, nil
	case 'd': // continue below
	default:
		return 0, formatErr(MissingDifferenceTerm)
	}
	l.skipSpace()
	caret := false
	if r, ok := l.readRune(); ok {
		if r == '^' {
			caret = true
			l.skipSpace()
		} else {
			l.unreadRune()
		}
	}
	lit := l.scanRun(isDigit)
	if caret && lit == "" {
		return 0, formatErr(MalformedOrder)
	}
	l.skipSpace()
	if r, ok := l.readRune(); !ok || r != 'u' {
		// d^5 5u, d^5xu, ddu
		return 0, formatErr(MalformedOrder)
	}
	if lit == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(lit)
	if err != nil || n > MaxOrder {
		// lit is all digits, so the only possible error is range.
		return 0, overflowErr(OrderOverflow, lit)
	}
	return n, nil
}

// parseArg parses the argument of u, which is everything in the summand
// following the u, and returns the multiplier of h.
func parseArg(arg string) (int, error) {
	// Two separate numbers would be concatenated once spaces are removed.
	if digitRuns(arg) > 1 {
		return 0, formatErr(BadArgumentFormat)
	}
	arg = stripSpace(arg)
	if arg == "(x)" {
		return 0, nil
	}
	if len(arg) < len("(xh)") || !strings.HasPrefix(arg, "(x") || !strings.HasSuffix(arg, "h)") {
		return 0, formatErr(BadArgumentFormat)
	}
	n := arg[len("(x") : len(arg)-len("h)")]
	switch n {
	case "+":
		return 1, nil
	case "-":
		return -1, nil
	case "":
		// (xh)
		return 0, formatErr(BadArgumentFormat)
	}
	if n[0] != '+' && n[0] != '-' {
		// (x2*h)
		return 0, formatErr(BadArgumentFormat)
	}
	n = strings.TrimSuffix(n, "*")
	h, err := strconv.ParseInt(n, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, overflowErr(OffsetOverflow, n)
		}
		return 0, formatErr(BadArgumentFormat)
	}
	return int(h), nil
}

// evalSummand parses one summand and creates its scaled difference.
func (t *Table) evalSummand(text string, signed bool) (Difference, error) {
	p, err := parseSummand(text, signed)
	if err != nil {
		return Difference{}, err
	}
	d, err := t.ByOrderAndMinH(p.order, p.offset)
	if err != nil {
		return Difference{}, err
	}
	d = d.Scale(p.sign * p.coef)
	if !d.finite() {
		// The coefficient fits, but not once multiplied by the binomials.
		return Difference{}, overflowErr(CoefficientOverflow, strconv.FormatFloat(p.coef, 'g', -1, 64))
	}
	return d, nil
}

// ParseTerm parses a single term of the form [sign][coef[*]][d|d^n|dn]u(arg)
// using the default table. Blank input results in the zero difference.
// Errors implement InputError.
func ParseTerm(s string) (Difference, error) {
	return defaultTable.ParseTerm(s)
}

// ParseTerm parses a single term using t. See the package-level ParseTerm.
func (t *Table) ParseTerm(s string) (Difference, error) {
	frag := strings.TrimSpace(s)
	if frag == "" {
		return Difference{}, nil
	}
	d, err := t.evalSummand(frag, false)
	if err != nil {
		return Difference{}, locate(err, frag, leadColumn(s))
	}
	return d, nil
}

// Parse parses the formatted form of a difference as produced by
// Difference.String, or any other expression Evaluate accepts, using the
// default table.
func Parse(s string) (Difference, error) {
	return Evaluate(s)
}

// leadColumn returns the 1-based rune column of the first non-space rune in s.
func leadColumn(s string) int {
	lead := len(s) - len(strings.TrimLeftFunc(s, unicode.IsSpace))
	return utf8.RuneCountInString(s[:lead]) + 1
}
