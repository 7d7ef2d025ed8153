package dataset

import "fmt"

// CleanStats counts what Clean kept and why rows were dropped.
type CleanStats struct {
	Input         int
	Output        int
	OtherRegion   int
	ZeroBedsBaths int
}

func (s CleanStats) String() string {
	return fmt.Sprintf("cleaned %d -> %d listings (dropped %d other-region, %d zero beds/baths)",
		s.Input, s.Output, s.OtherRegion, s.ZeroBedsBaths)
}

// Clean fixes the dataset to a single region and removes rows that cannot
// describe a rentable unit (beds <= 0 or baths <= 0). The region and state
// columns are dropped from the result since they are constant afterwards.
func Clean(d *Dataset, region string) (*Dataset, CleanStats, error) {
	stats := CleanStats{Input: d.n}
	regionFac, ok := d.Fac(ColRegion)
	if !ok {
		return nil, stats, &InvalidRecordError{Column: ColRegion, Err: fmt.Errorf("column not loaded")}
	}
	beds, _ := d.Numeric(ColBeds)
	baths, _ := d.Numeric(ColBaths)

	keep := make([]int, 0, d.n)
	for i := 0; i < d.n; i++ {
		if regionFac.Value(i) != region {
			stats.OtherRegion++
			continue
		}
		if beds[i] <= 0 || baths[i] <= 0 {
			stats.ZeroBedsBaths++
			continue
		}
		keep = append(keep, i)
	}
	out := d.Select(keep).without(ColRegion, ColState)
	stats.Output = out.n
	return out, stats, nil
}
