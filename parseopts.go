package finitediff

// EvalOption is an option for evaluating expressions.
type EvalOption interface {
	evalOption(evalctx) evalctx
}

// evalctx holds the configuration of one evaluation.
type evalctx struct {
	// table is the source of binomial coefficients.
	table *Table
}

type tableopt struct {
	t *Table
}

// UseTable evaluates with a caller-owned table of binomial coefficients
// instead of the package default. Passing nil restores the default.
func UseTable(t *Table) EvalOption {
	return tableopt{t}
}

func (o tableopt) evalOption(p evalctx) evalctx {
	p.table = o.t
	if p.table == nil {
		p.table = defaultTable
	}
	return p
}

// newEvalctx applies options in order over the defaults.
func newEvalctx(opts []EvalOption) evalctx {
	p := evalctx{table: defaultTable}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.evalOption(p)
	}
	return p
}
