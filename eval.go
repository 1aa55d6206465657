package finitediff

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// piece is the text of one summand in an expression.
type piece struct {
	// text is the summand, trimmed of spaces.
	text string
	// col is the rune column of text in the expression.
	col int
}

// summands splits an expression into summands. Each summand ends just after a
// close parenthesis or at the end of the input. Blank summands are included
// with empty text.
func summands(s string) []piece {
	var v []piece
	col := 1
	for len(s) > 0 {
		k := strings.IndexByte(s, ')') + 1
		if k == 0 {
			k = len(s)
		}
		part := s[:k]
		lead := len(part) - len(strings.TrimLeftFunc(part, unicode.IsSpace))
		v = append(v, piece{
			text: strings.TrimSpace(part),
			col:  col + utf8.RuneCountInString(part[:lead]),
		})
		col += utf8.RuneCountInString(part)
		s = s[k:]
	}
	return v
}

// Evaluate evaluates an expression which is a sum of finite differences, e.g.
// "-d^2u(x-2h)+3*du(x+h)", and returns the combined difference. Summands are
// added left to right, so terms which cancel reduce the order of the result.
// If the expression is blank or all of its terms cancel, the result is the
// zero difference.
//
// Each summand is a term as accepted by ParseTerm. Every summand other than
// the first must begin with a sign. Decimal commas are accepted.
//
// If any summand is invalid, or adding it makes a coefficient infinite or the
// result wider than MaxSpan offsets, the error is a *FormatError or
// *OverflowError whose Fragment is that summand exactly as it appears in s,
// including its sign but without surrounding spaces.
func Evaluate(s string, opts ...EvalOption) (Difference, error) {
	p := newEvalctx(opts)
	var r Difference
	for i, m := range summands(s) {
		d, err := p.table.evalSummand(m.text, i != 0)
		if err != nil {
			var fe *FormatError
			if errors.As(err, &fe) && fe.Kind == EmptySummand {
				continue
			}
			return Difference{}, locate(err, m.text, m.col)
		}
		if r.span(d) > MaxSpan {
			return Difference{}, locate(overflowErr(OffsetOverflow, strconv.Itoa(d.MinH())), m.text, m.col)
		}
		r = r.Add(d)
		if !r.finite() {
			return Difference{}, locate(overflowErr(CoefficientOverflow, m.text), m.text, m.col)
		}
	}
	return r, nil
}

// TryEvaluate is like Evaluate, but reports failure as a boolean. When the
// result is false, the difference is the zero difference.
func TryEvaluate(s string, opts ...EvalOption) (Difference, bool) {
	d, err := Evaluate(s, opts...)
	if err != nil {
		return Difference{}, false
	}
	return d, true
}
