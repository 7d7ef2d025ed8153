package dataset

import "sort"

// Factor is a categorical column with an explicit, declared level order.
// The first level is the reference level used as the dummy-encoding
// baseline; it never silently reorders when rows are filtered.
type Factor struct {
	name   string
	levels []string
	index  map[string]int
	codes  []int
}

// NewFactor builds a factor over the observed values. Levels are the sorted
// unique values; if reference is non-empty and observed, it is moved to the
// front and becomes the baseline.
func NewFactor(name string, values []string, reference string) *Factor {
	uniq := map[string]struct{}{}
	for _, v := range values {
		uniq[v] = struct{}{}
	}
	levels := make([]string, 0, len(uniq))
	for v := range uniq {
		levels = append(levels, v)
	}
	sort.Strings(levels)
	if reference != "" {
		for i, l := range levels {
			if l == reference && i > 0 {
				copy(levels[1:i+1], levels[:i])
				levels[0] = reference
				break
			}
		}
	}
	index := make(map[string]int, len(levels))
	for i, l := range levels {
		index[l] = i
	}
	codes := make([]int, len(values))
	for i, v := range values {
		codes[i] = index[v]
	}
	return &Factor{name: name, levels: levels, index: index, codes: codes}
}

// Name returns the column name.
func (f *Factor) Name() string { return f.name }

// Levels returns the declared level order. Index 0 is the reference level.
func (f *Factor) Levels() []string { return f.levels }

// Reference returns the baseline level.
func (f *Factor) Reference() string { return f.levels[0] }

// Len returns the number of rows.
func (f *Factor) Len() int { return len(f.codes) }

// Code returns the level index of row i.
func (f *Factor) Code(i int) int { return f.codes[i] }

// Value returns the level string of row i.
func (f *Factor) Value(i int) string { return f.levels[f.codes[i]] }

// Counts returns per-level observation counts, aligned with Levels.
// Filtering rows can leave declared levels unobserved; callers that build
// design matrices must skip zero-count levels.
func (f *Factor) Counts() []int {
	counts := make([]int, len(f.levels))
	for _, c := range f.codes {
		counts[c]++
	}
	return counts
}

// subset keeps the declared level order and retains only the given rows.
func (f *Factor) subset(keep []int) *Factor {
	codes := make([]int, len(keep))
	for i, r := range keep {
		codes[i] = f.codes[r]
	}
	return &Factor{name: f.name, levels: f.levels, index: f.index, codes: codes}
}
