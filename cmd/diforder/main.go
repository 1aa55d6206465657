package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"
	"strings"

	"github.com/peterh/liner"

	fd "github.com/zephyrtronium/finitediff"
)

const usage = "Usage: -d^2u(x-2h)+3*du(x+h)"

func main() {
	log.SetFlags(0)
	var (
		inname, xs, hs string
		exp            bool
		prec           int
	)
	flag.StringVar(&inname, "in", "", "file of expressions, one per line (- for stdin)")
	flag.BoolVar(&exp, "exp", false, "also print the result applied to exp at -x with step -step")
	flag.StringVar(&xs, "x", "0", "point at which to apply the result with -exp")
	flag.StringVar(&hs, "step", "1", "step h with which to apply the result with -exp")
	flag.IntVar(&prec, "p", 64, "precision of -exp calculations in bits")
	flag.Parse()
	if prec <= 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}

	var pr *probe
	if exp {
		x, err := parseFloat(xs, uint(prec))
		if err != nil {
			log.Fatalf("bad -x: %v", err)
		}
		h, err := parseFloat(hs, uint(prec))
		if err != nil {
			log.Fatalf("bad -step: %v", err)
		}
		pr = &probe{x: x, h: h, prec: uint(prec)}
	}

	switch {
	case flag.NArg() > 0:
		for _, arg := range flag.Args() {
			fmt.Println(arg + ": ")
			handle(os.Stdout, arg, pr)
		}
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		lines(os.Stdout, f, pr)
	case inname == "-" || !liner.TerminalSupported():
		lines(os.Stdout, os.Stdin, pr)
	default:
		interactive(pr)
	}
}

// probe holds the settings for applying results to exp.
type probe struct {
	x, h *big.Float
	prec uint
}

func parseFloat(s string, prec uint) (*big.Float, error) {
	r, _, err := new(big.Float).SetPrec(prec).Parse(strings.TrimSpace(s), 0)
	return r, err
}

// interactive reads expressions from the terminal until a blank line.
func interactive(pr *probe) {
	fmt.Println(usage)
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	for {
		expr, err := ln.Prompt("Enter expression to evaluate (hit enter to exit): ")
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, liner.ErrPromptAborted) {
				log.Print(err)
			}
			return
		}
		if strings.TrimSpace(expr) == "" {
			return
		}
		ln.AppendHistory(expr)
		handle(os.Stdout, expr, pr)
	}
}

// lines evaluates each non-blank line of r.
func lines(w io.Writer, r io.Reader, pr *probe) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		expr := sc.Text()
		if strings.TrimSpace(expr) == "" {
			continue
		}
		fmt.Fprintln(w, expr+": ")
		handle(w, expr, pr)
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
}

// handle evaluates an expression and writes the result or the fragment that
// caused an error.
func handle(w io.Writer, expr string, pr *probe) {
	d, err := fd.Evaluate(expr)
	if err != nil {
		var oe *fd.OverflowError
		var fe *fd.FormatError
		switch {
		case errors.As(err, &oe):
			fmt.Fprintln(w, "Too large coefficients are used in the fragment: "+oe.Fragment)
		case errors.As(err, &fe):
			fmt.Fprintln(w, "Invalid format of the fragment: "+fe.Fragment)
		default:
			fmt.Fprintln(w, err)
		}
		return
	}
	if d.IsZero() {
		fmt.Fprintln(w, "The expression is equivalent to zero")
		return
	}
	fmt.Fprintln(w, "Resulting finite difference is: "+d.String())
	fmt.Fprintf(w, "Order of the difference equation is %d\n", d.Order())
	if pr != nil {
		fmt.Fprintf(w, "Applied to exp(%g) with step %g: %g\n", pr.x, pr.h, d.ApplyExp(pr.x, pr.h, pr.prec))
	}
}
