// Package dataset loads rental-listing tables and prepares them for
// modeling: region filtering, categorical casting, and removal of rows
// that cannot describe a real unit.
package dataset

import "sort"

// Dataset is a columnar table of rental listings. Numeric and factor
// columns are stored separately; row order is shared across all columns.
type Dataset struct {
	n        int
	numNames []string
	num      map[string][]float64
	facNames []string
	fac      map[string]*Factor
}

// N returns the row count.
func (d *Dataset) N() int { return d.n }

// Numeric returns the named numeric column, or false if absent.
func (d *Dataset) Numeric(name string) ([]float64, bool) {
	col, ok := d.num[name]
	return col, ok
}

// Fac returns the named factor column, or false if absent.
func (d *Dataset) Fac(name string) (*Factor, bool) {
	f, ok := d.fac[name]
	return f, ok
}

// NumericNames returns numeric column names in load order.
func (d *Dataset) NumericNames() []string { return d.numNames }

// FactorNames returns factor column names in load order.
func (d *Dataset) FactorNames() []string { return d.facNames }

// Has reports whether the dataset carries a column of either kind.
func (d *Dataset) Has(name string) bool {
	if _, ok := d.num[name]; ok {
		return true
	}
	_, ok := d.fac[name]
	return ok
}

// Select returns a new dataset containing only the given rows, in order.
// Factor level declarations are preserved.
func (d *Dataset) Select(keep []int) *Dataset {
	out := &Dataset{
		n:        len(keep),
		numNames: d.numNames,
		num:      make(map[string][]float64, len(d.num)),
		facNames: d.facNames,
		fac:      make(map[string]*Factor, len(d.fac)),
	}
	for name, col := range d.num {
		sub := make([]float64, len(keep))
		for i, r := range keep {
			sub[i] = col[r]
		}
		out.num[name] = sub
	}
	for name, f := range d.fac {
		out.fac[name] = f.subset(keep)
	}
	return out
}

// without drops the named columns. Used by Clean to discard the region and
// state columns once the dataset is fixed to a single region.
func (d *Dataset) without(names ...string) *Dataset {
	drop := make(map[string]struct{}, len(names))
	for _, n := range names {
		drop[n] = struct{}{}
	}
	out := &Dataset{n: d.n, num: map[string][]float64{}, fac: map[string]*Factor{}}
	for _, n := range d.numNames {
		if _, skip := drop[n]; skip {
			continue
		}
		out.numNames = append(out.numNames, n)
		out.num[n] = d.num[n]
	}
	for _, n := range d.facNames {
		if _, skip := drop[n]; skip {
			continue
		}
		out.facNames = append(out.facNames, n)
		out.fac[n] = d.fac[n]
	}
	return out
}

// New assembles a dataset from prebuilt columns. All columns must share
// the same length; primarily useful for tests and synthetic data.
func New(n int, numeric map[string][]float64, factors []*Factor) *Dataset {
	d := &Dataset{n: n, num: map[string][]float64{}, fac: map[string]*Factor{}}
	names := make([]string, 0, len(numeric))
	for name := range numeric {
		names = append(names, name)
	}
	// deterministic order for reporting
	sort.Strings(names)
	for _, name := range names {
		d.numNames = append(d.numNames, name)
		d.num[name] = numeric[name]
	}
	for _, f := range factors {
		d.facNames = append(d.facNames, f.Name())
		d.fac[f.Name()] = f
	}
	return d
}
