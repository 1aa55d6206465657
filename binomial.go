package finitediff

import (
	"strconv"
	"sync"
)

// MaxOrder is the largest order of difference that can be constructed. Its
// row of binomial coefficients is the last row of Pascal's triangle whose
// entries are all below 2^53, so every coefficient is exact as a float64 and
// identities between differences cancel exactly. Larger orders are rejected
// with OrderOverflow before any row is computed.
const MaxOrder = 56

// Table is a memoized Pascal's triangle. Rows are computed on demand and
// cached for the life of the table. A Table is safe for concurrent use.
type Table struct {
	mu   sync.Mutex
	rows [][]uint64
}

// NewTable creates a table holding only row 0.
func NewTable() *Table {
	return &Table{rows: [][]uint64{{1}}}
}

// defaultTable is used by the package-level constructors and by evaluation
// when no table is given.
var defaultTable = NewTable()

// Row returns the binomial coefficients C(order, 0), ..., C(order, order),
// computing and caching any missing rows up to order. The returned slice is a
// copy and may be modified.
func (t *Table) Row(order int) ([]uint64, error) {
	r, err := t.row(order)
	if err != nil {
		return nil, err
	}
	return append([]uint64(nil), r...), nil
}

// Len returns the number of rows currently cached.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.rows)
}

// row is like Row, but returns the cached slice, which must not be modified.
func (t *Table) row(order int) ([]uint64, error) {
	if order < 0 {
		return nil, &OrderError{Order: order}
	}
	if order > MaxOrder {
		return nil, overflowErr(OrderOverflow, strconv.Itoa(order))
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.rows) == 0 {
		// Zero Table.
		t.rows = append(t.rows, []uint64{1})
	}
	for len(t.rows) <= order {
		prev := t.rows[len(t.rows)-1]
		cur := make([]uint64, len(prev)+1)
		cur[0], cur[len(prev)] = 1, 1
		for i := 1; i < len(prev); i++ {
			cur[i] = prev[i-1] + prev[i]
		}
		t.rows = append(t.rows, cur)
	}
	return t.rows[order], nil
}
