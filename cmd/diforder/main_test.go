package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestHandle(t *testing.T) {
	cases := []struct {
		name string
		expr string
		want string
	}{
		{
			"order",
			"d^2u(x) - u(x+2h)",
			"Resulting finite difference is: -2*u(x+h)+u(x)\nOrder of the difference equation is 1\n",
		},
		{"zero", "du(x) - u(x+h) + u(x)", "The expression is equivalent to zero\n"},
		{"blank", "  ", "The expression is equivalent to zero\n"},
		{"format", "u(x)+2*2*du(x)", "Invalid format of the fragment: +2*2*du(x)\n"},
		{"overflow", "-d^55646u(x-242h)+3*du(x-4223h)", "Too large coefficients are used in the fragment: -d^55646u(x-242h)\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var b bytes.Buffer
			handle(&b, c.expr, nil)
			if got := b.String(); got != c.want {
				t.Errorf("want %q, got %q", c.want, got)
			}
		})
	}
}

func TestHandleExp(t *testing.T) {
	x, err := parseFloat("0", 64)
	if err != nil {
		t.Fatal(err)
	}
	h, err := parseFloat(" 1 ", 64)
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	handle(&b, "du(x)", &probe{x: x, h: h, prec: 64})
	if !strings.Contains(b.String(), "Applied to exp(0) with step 1: 1.71828") {
		t.Errorf("missing application to exp:\n%s", b.String())
	}
}

func TestLines(t *testing.T) {
	in := strings.NewReader("u(x)\n\n   \nu(x)-u(x)\n")
	var b bytes.Buffer
	lines(&b, in, nil)
	want := "u(x): \n" +
		"Resulting finite difference is: u(x)\nOrder of the difference equation is 0\n" +
		"u(x)-u(x): \n" +
		"The expression is equivalent to zero\n"
	if got := b.String(); got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestParseFloatError(t *testing.T) {
	if _, err := parseFloat("x", 64); err == nil {
		t.Error("no error for x")
	}
}
