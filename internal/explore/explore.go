// Package explore computes univariate summaries of a cleaned listings
// dataset: frequency tables for factors and five-number summaries for
// numeric columns.
package explore

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/rentlens/rentlens/internal/dataset"
)

// NumericSummary is the five-number summary, mean, and standard deviation
// of one numeric column.
type NumericSummary struct {
	Name   string
	N      int
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
	Mean   float64
	Std    float64
}

// LevelCount is one row of a frequency table.
type LevelCount struct {
	Level string
	Count int
}

// FrequencyTable counts observations per factor level, sorted by count
// then level name.
type FrequencyTable struct {
	Name      string
	Reference string
	Levels    []LevelCount
}

// Summary is the full exploratory pass over a dataset.
type Summary struct {
	Rows    int
	Numeric []NumericSummary
	Factors []FrequencyTable
}

// Summarize computes summaries for every column. A dataset with no rows
// (a region filter can legitimately match nothing) yields an empty summary
// rather than per-column statistics.
func Summarize(ds *dataset.Dataset) *Summary {
	s := &Summary{Rows: ds.N()}
	if ds.N() == 0 {
		return s
	}
	for _, name := range ds.NumericNames() {
		col, _ := ds.Numeric(name)
		s.Numeric = append(s.Numeric, summarizeNumeric(name, col))
	}
	for _, name := range ds.FactorNames() {
		f, _ := ds.Fac(name)
		s.Factors = append(s.Factors, tabulate(f))
	}
	return s
}

func summarizeNumeric(name string, col []float64) NumericSummary {
	sorted := make([]float64, len(col))
	copy(sorted, col)
	sort.Float64s(sorted)
	mean, std := stat.MeanStdDev(col, nil)
	return NumericSummary{
		Name:   name,
		N:      len(col),
		Min:    sorted[0],
		Q1:     stat.Quantile(0.25, stat.LinInterp, sorted, nil),
		Median: stat.Quantile(0.5, stat.LinInterp, sorted, nil),
		Q3:     stat.Quantile(0.75, stat.LinInterp, sorted, nil),
		Max:    sorted[len(sorted)-1],
		Mean:   mean,
		Std:    std,
	}
}

func tabulate(f *dataset.Factor) FrequencyTable {
	counts := f.Counts()
	levels := f.Levels()
	t := FrequencyTable{Name: f.Name(), Reference: f.Reference()}
	for i, c := range counts {
		if c == 0 {
			continue
		}
		t.Levels = append(t.Levels, LevelCount{Level: levels[i], Count: c})
	}
	sort.Slice(t.Levels, func(i, j int) bool {
		if t.Levels[i].Count == t.Levels[j].Count {
			return t.Levels[i].Level < t.Levels[j].Level
		}
		return t.Levels[i].Count > t.Levels[j].Count
	})
	return t
}

// Markdown renders the summary in the CLI's bracket-section style.
func (s *Summary) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	b.WriteString(fmt.Sprintf("Rows: %d\n\n", s.Rows))

	b.WriteString("[NUMERIC]\n")
	for _, c := range s.Numeric {
		b.WriteString(fmt.Sprintf("- %s: min %.4g, q1 %.4g, median %.4g, q3 %.4g, max %.4g, mean %.4g, std %.4g\n",
			c.Name, c.Min, c.Q1, c.Median, c.Q3, c.Max, c.Mean, c.Std))
	}

	b.WriteString("\n[CATEGORICAL]\n")
	for _, t := range s.Factors {
		b.WriteString(fmt.Sprintf("- %s (reference %s): ", t.Name, t.Reference))
		for i, lc := range t.Levels {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(fmt.Sprintf("%s(%d)", lc.Level, lc.Count))
		}
		b.WriteString("\n")
	}
	return b.String()
}
