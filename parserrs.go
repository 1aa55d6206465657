package finitediff

import (
	"errors"
	"strconv"
)

// Kind identifies the grammar rule or numeric limit that an input violated.
type Kind int8

const (
	kindNone Kind = iota

	// MalformedCoefficient is a coefficient with a leading or trailing
	// decimal point, more than one decimal point, a digit run split by
	// spaces, or a stray * or sign in its place.
	MalformedCoefficient
	// MalformedOrder is an order marker that cannot be read, e.g. d^ with no
	// digits, two digit runs, or junk between the order and u.
	MalformedOrder
	// BadArgumentFormat is an argument of u that is not (x), (x±h), or
	// (x±n*h).
	BadArgumentFormat
	// MissingDifferenceTerm is a summand with a coefficient but no u term.
	MissingDifferenceTerm
	// MissingU is a summand with no u at all.
	MissingU
	// EmptySummand is a blank summand. Evaluation treats it as contributing
	// nothing.
	EmptySummand
	// MissingSign is a summand after the first that does not begin with + or
	// -.
	MissingSign

	// OrderOverflow is an order greater than MaxOrder.
	OrderOverflow
	// OffsetOverflow is an offset outside the range of a 32-bit integer.
	OffsetOverflow
	// CoefficientOverflow is a coefficient outside the range of float64.
	CoefficientOverflow
)

func (k Kind) String() string {
	switch k {
	case MalformedCoefficient:
		return "malformed coefficient"
	case MalformedOrder:
		return "malformed order"
	case BadArgumentFormat:
		return "bad argument format"
	case MissingDifferenceTerm:
		return "missing difference term"
	case MissingU:
		return "missing u"
	case EmptySummand:
		return "empty summand"
	case MissingSign:
		return "missing sign"
	case OrderOverflow:
		return "order overflow"
	case OffsetOverflow:
		return "offset overflow"
	case CoefficientOverflow:
		return "coefficient overflow"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Overflow returns whether k is a numeric overflow rather than a syntax
// problem.
func (k Kind) Overflow() bool {
	return k >= OrderOverflow
}

// FormatError is an error indicating input text that does not match the
// grammar. It implements InputError.
type FormatError struct {
	// Kind is the rule that failed.
	Kind Kind
	// Fragment is the trimmed summand containing the error, including its
	// sign exactly as it appeared in the input.
	Fragment string
	// Col is the rune column of the start of Fragment in the input.
	Col int
}

func (err *FormatError) Error() string {
	return errpos(err.Col, "invalid format ("+err.Kind.String()+"): "+strconv.Quote(err.Fragment))
}

func (err *FormatError) Pos() int {
	return err.Col
}

func (err *FormatError) Text() string {
	return err.Fragment
}

// OverflowError is an error indicating a grammatically valid number that is
// too large to represent. It implements InputError.
type OverflowError struct {
	// Kind is OrderOverflow, OffsetOverflow, or CoefficientOverflow.
	Kind Kind
	// Fragment is the trimmed summand containing the error.
	Fragment string
	// Literal is the numeric text that overflowed.
	Literal string
	// Col is the rune column of the start of Fragment in the input.
	Col int
}

func (err *OverflowError) Error() string {
	return errpos(err.Col, "too large ("+err.Kind.String()+" "+err.Literal+"): "+strconv.Quote(err.Fragment))
}

func (err *OverflowError) Pos() int {
	return err.Col
}

func (err *OverflowError) Text() string {
	return err.Fragment
}

// OrderError indicates a request to construct a difference of negative order.
type OrderError struct {
	Order int
}

func (err *OrderError) Error() string {
	return "invalid order " + strconv.Itoa(err.Order) + ": order cannot be less than zero"
}

// ErrDivisionByZero is returned when dividing a difference by a number that
// is numerically zero.
var ErrDivisionByZero = errors.New("finitediff: division by zero")

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error caused by invalid input text. Every error resulting
// from parsing or evaluation of text implements InputError.
type InputError interface {
	error
	// Pos returns the rune column at which the offending summand starts.
	Pos() int
	// Text returns the offending summand, trimmed of surrounding spaces.
	Text() string
}

var (
	_ InputError = (*FormatError)(nil)
	_ InputError = (*OverflowError)(nil)
)

// locate attaches the summand fragment and its column to an error from
// parsing that summand. Errors that are not InputErrors pass through.
func locate(err error, fragment string, col int) error {
	var fe *FormatError
	if errors.As(err, &fe) {
		return &FormatError{Kind: fe.Kind, Fragment: fragment, Col: col}
	}
	var oe *OverflowError
	if errors.As(err, &oe) {
		return &OverflowError{Kind: oe.Kind, Fragment: fragment, Literal: oe.Literal, Col: col}
	}
	return err
}

// formatErr creates a format error without location. The caller locates it.
func formatErr(kind Kind) error {
	return &FormatError{Kind: kind}
}

// overflowErr creates an overflow error without location.
func overflowErr(kind Kind, lit string) error {
	return &OverflowError{Kind: kind, Literal: lit}
}
