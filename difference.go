package finitediff

import (
	"math"
	"strconv"
	"strings"
)

// MaxSpan is the largest number of consecutive offsets, from MinH to MaxH, that
// the result of Evaluate may cover, including any coefficients that cancel.
const MaxSpan = 1 << 20

// Epsilon is the magnitude below which a coefficient is considered to be zero.
// Cancellation in sums is detected with this tolerance.
const Epsilon = 1e-10

// isZero reports whether x is numerically zero.
func isZero(x float64) bool {
	return math.Abs(x) < Epsilon
}

// Difference is a finite difference
//
//	a[0]*u(x + MinH*h) + a[1]*u(x + (MinH+1)*h) + ... + a[n]*u(x + MaxH*h)
//
// where n is the order. The first and last coefficients are never
// numerically zero, and any between that are numerically zero are exactly
// zero. The zero value of Difference is the zero difference,
// which represents an expression that is identically zero; it has order -1.
//
// Differences are immutable. Operations return new values and never modify
// their operands.
type Difference struct {
	// minH is the offset of the first coefficient.
	minH int
	// coef holds the coefficients from minH to minH+len(coef)-1. It is nil
	// exactly for the zero difference.
	coef []float64
}

// ByOrder creates the difference of the given order starting at u(x), using
// the default table.
func ByOrder(order int) (Difference, error) {
	return defaultTable.ByOrderAndMinH(order, 0)
}

// ByOrderAndMinH creates the difference of the given order starting at
// u(x + minH*h), using the default table.
func ByOrderAndMinH(order, minH int) (Difference, error) {
	return defaultTable.ByOrderAndMinH(order, minH)
}

// ByOrder creates the difference of the given order starting at u(x).
func (t *Table) ByOrder(order int) (Difference, error) {
	return t.ByOrderAndMinH(order, 0)
}

// ByOrderAndMinH creates the difference of the given order starting at
// u(x + minH*h). The coefficient of u(x + (minH+i)*h) is
// (-1)^(order-i) * C(order, i). Every offset from minH to minH+order must be
// in the range of an int32; otherwise the error is OffsetOverflow.
func (t *Table) ByOrderAndMinH(order, minH int) (Difference, error) {
	row, err := t.row(order)
	if err != nil {
		return Difference{}, err
	}
	if minH < math.MinInt32 || minH > math.MaxInt32-order {
		return Difference{}, overflowErr(OffsetOverflow, strconv.Itoa(minH))
	}
	coef := make([]float64, len(row))
	for i, c := range row {
		if (order-i)%2 == 0 {
			coef[i] = float64(c)
		} else {
			coef[i] = -float64(c)
		}
	}
	return Difference{minH: minH, coef: coef}, nil
}

// IsZero returns whether d is the zero difference.
func (d Difference) IsZero() bool {
	return len(d.coef) == 0
}

// Order returns the order of d, or -1 if d is the zero difference.
func (d Difference) Order() int {
	return len(d.coef) - 1
}

// MinH returns the offset of the first term of d. It is 0 for the zero
// difference.
func (d Difference) MinH() int {
	return d.minH
}

// MaxH returns the offset of the last term of d. It is -1 for the zero
// difference.
func (d Difference) MaxH() int {
	return d.minH + len(d.coef) - 1
}

// Coef returns the coefficient of u(x + h*step). It is zero outside
// [MinH, MaxH].
func (d Difference) Coef(h int) float64 {
	if h < d.minH || h > d.MaxH() {
		return 0
	}
	return d.coef[h-d.minH]
}

// Coefficients returns a copy of the coefficients of d from MinH to MaxH.
func (d Difference) Coefficients() []float64 {
	return append([]float64(nil), d.coef...)
}

// Scale returns k*d. If k is numerically zero or d is the zero difference,
// the result is the zero difference. Ends made numerically zero by a small k
// are trimmed as in Add.
func (d Difference) Scale(k float64) Difference {
	if d.IsZero() || isZero(k) {
		return Difference{}
	}
	coef := make([]float64, len(d.coef))
	for i, c := range d.coef {
		coef[i] = k * c
	}
	return canon(d.minH, coef)
}

// Neg returns -d.
func (d Difference) Neg() Difference {
	return d.Scale(-1)
}

// Div returns d/k. The error is ErrDivisionByZero if k is numerically zero.
func (d Difference) Div(k float64) (Difference, error) {
	if isZero(k) {
		return Difference{}, ErrDivisionByZero
	}
	return d.Scale(1 / k), nil
}

// Add returns d+e. Terms that cancel at either end of the sum are removed, so
// the order of the result may be less than the orders of both operands. If
// every term cancels, the result is the zero difference.
//
// The sum holds a coefficient for every offset from the least MinH to the
// greatest MaxH of d and e, so its memory is proportional to that span.
// Evaluate rejects sums spanning more than MaxSpan offsets.
func (d Difference) Add(e Difference) Difference {
	if d.IsZero() {
		return e
	}
	if e.IsZero() {
		return d
	}
	lo, hi := d.minH, d.MaxH()
	if e.minH < lo {
		lo = e.minH
	}
	if m := e.MaxH(); m > hi {
		hi = m
	}
	sum := make([]float64, hi-lo+1)
	for i, c := range d.coef {
		sum[d.minH-lo+i] += c
	}
	for i, c := range e.coef {
		sum[e.minH-lo+i] += c
	}
	return canon(lo, sum)
}

// span returns the number of offsets that d+e covers before trimming, or 0
// if both are zero.
func (d Difference) span(e Difference) int64 {
	switch {
	case d.IsZero() && e.IsZero():
		return 0
	case d.IsZero():
		return int64(len(e.coef))
	case e.IsZero():
		return int64(len(d.coef))
	}
	lo, hi := int64(d.minH), int64(d.MaxH())
	if m := int64(e.minH); m < lo {
		lo = m
	}
	if m := int64(e.MaxH()); m > hi {
		hi = m
	}
	return hi - lo + 1
}

// Sub returns d-e.
func (d Difference) Sub(e Difference) Difference {
	return d.Add(e.Neg())
}

// canon trims numerically zero coefficients from both ends of coef and sets
// those in between to exactly zero.
func canon(minH int, coef []float64) Difference {
	l := 0
	for isZero(coef[l]) {
		if l == len(coef)-1 {
			return Difference{}
		}
		l++
	}
	r := len(coef) - 1
	for isZero(coef[r]) {
		r--
	}
	coef = coef[l : r+1 : r+1]
	for i, c := range coef {
		if isZero(c) {
			coef[i] = 0
		}
	}
	return Difference{minH: minH + l, coef: coef}
}

// finite reports whether every coefficient of d is finite.
func (d Difference) finite() bool {
	for _, c := range d.coef {
		if math.IsInf(c, 0) || math.IsNaN(c) {
			return false
		}
	}
	return true
}

// Equal returns whether d and e have the same order, the same MinH, and
// exactly equal coefficients. The zero difference equals only itself.
func (d Difference) Equal(e Difference) bool {
	if d.IsZero() || e.IsZero() {
		return d.IsZero() && e.IsZero()
	}
	if d.minH != e.minH || len(d.coef) != len(e.coef) {
		return false
	}
	for i, c := range d.coef {
		if c != e.coef[i] {
			return false
		}
	}
	return true
}

// String formats d as a sum of weighted values of u, from the largest offset
// to the smallest, e.g. "u(x+h)-3*u(x)-u(x-2*h)". Zero coefficients are
// omitted. The zero difference formats as "0". Parse
// inverts String.
func (d Difference) String() string {
	if d.IsZero() {
		return "0"
	}
	var b strings.Builder
	for h := d.MaxH(); h >= d.minH; h-- {
		k := d.coef[h-d.minH]
		switch k {
		case 0:
			continue
		case 1:
			b.WriteString("+u")
		case -1:
			b.WriteString("-u")
		default:
			if k > 0 {
				b.WriteByte('+')
			}
			b.WriteString(strconv.FormatFloat(k, 'f', -1, 64))
			b.WriteString("*u")
		}
		switch h {
		case 0:
			b.WriteString("(x)")
		case 1:
			b.WriteString("(x+h)")
		case -1:
			b.WriteString("(x-h)")
		default:
			b.WriteString("(x")
			if h > 0 {
				b.WriteByte('+')
			}
			b.WriteString(strconv.Itoa(h))
			b.WriteString("*h)")
		}
	}
	return strings.TrimPrefix(b.String(), "+")
}
