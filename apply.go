package finitediff

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// ApplyExp applies d to the exponential function, computing
//
//	a[0]*exp(x + MinH*h) + ... + a[n]*exp(x + MaxH*h)
//
// to prec bits of precision. For the difference of order n returned by ByOrder,
// the result is exp(x)*(exp(h)-1)^n. The result for the zero difference is 0.
func (d Difference) ApplyExp(x, h *big.Float, prec uint) *big.Float {
	r := new(big.Float).SetPrec(prec)
	var arg, e, k big.Float
	for i, a := range d.coef {
		if isZero(a) {
			continue
		}
		arg.SetPrec(prec).SetInt64(int64(d.minH + i))
		arg.Mul(&arg, h)
		arg.Add(&arg, x)
		e.SetPrec(prec)
		bigfloat.Exp(&e, &arg)
		k.SetPrec(prec).SetFloat64(a)
		r.Add(r, e.Mul(&e, &k))
	}
	return r
}
