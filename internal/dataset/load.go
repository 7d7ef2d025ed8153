package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Column names of the raw listings table.
const (
	ColPrice      = "price"
	ColRegion     = "region"
	ColState      = "state"
	ColType       = "type"
	ColSqFeet     = "sqfeet"
	ColBeds       = "beds"
	ColBaths      = "baths"
	ColCats       = "cats_allowed"
	ColDogs       = "dogs_allowed"
	ColSmoking    = "smoking_allowed"
	ColWheelchair = "wheelchair_access"
	ColEVCharge   = "electric_vehicle_charge"
	ColFurnished  = "comes_furnished"
	ColLaundry    = "laundry_options"
	ColParking    = "parking_options"
)

// numericColumns are parsed as float64 predictors/response.
var numericColumns = []string{ColPrice, ColSqFeet, ColBeds, ColBaths}

// flagColumns are 0/1 allowance columns cast to no/yes factors.
var flagColumns = []string{ColCats, ColDogs, ColSmoking, ColWheelchair, ColEVCharge, ColFurnished}

// multiLevelColumns are free categorical columns. Empty cells become the
// "unknown" level rather than dropping the row.
var multiLevelColumns = []string{ColType, ColLaundry, ColParking, ColRegion, ColState}

// Excluded columns (identifiers, free text, geo coordinates) are ignored at
// load time and never stored: id, url, region_url, image_url, lat, long,
// description.

// requiredColumns is everything the pipeline reads.
var requiredColumns = func() []string {
	out := append([]string{}, numericColumns...)
	out = append(out, flagColumns...)
	out = append(out, multiLevelColumns...)
	return out
}()

const unknownLevel = "unknown"

// Load parses the raw listings CSV. The header must contain every required
// column; extra columns are ignored. A missing column or unparseable value
// yields an *InvalidRecordError.
func Load(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, &InvalidRecordError{Column: col, Err: errors.New("column missing from header")}
		}
	}

	num := make(map[string][]float64, len(numericColumns))
	raw := make(map[string][]string, len(flagColumns)+len(multiLevelColumns))

	row := 0
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", row+1, err)
		}
		row++
		field := func(col string) string {
			i := idx[col]
			if i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		for _, col := range numericColumns {
			v := field(col)
			x, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, &InvalidRecordError{Column: col, Row: row, Err: fmt.Errorf("parse %q: %w", v, err)}
			}
			num[col] = append(num[col], x)
		}
		for _, col := range flagColumns {
			level, err := flagLevel(field(col))
			if err != nil {
				return nil, &InvalidRecordError{Column: col, Row: row, Err: err}
			}
			raw[col] = append(raw[col], level)
		}
		for _, col := range multiLevelColumns {
			v := field(col)
			if v == "" {
				v = unknownLevel
			}
			raw[col] = append(raw[col], v)
		}
	}

	d := &Dataset{n: row, num: map[string][]float64{}, fac: map[string]*Factor{}}
	for _, col := range numericColumns {
		d.numNames = append(d.numNames, col)
		d.num[col] = num[col]
	}
	for _, col := range flagColumns {
		d.facNames = append(d.facNames, col)
		d.fac[col] = NewFactor(col, raw[col], "no")
	}
	for _, col := range multiLevelColumns {
		d.facNames = append(d.facNames, col)
		d.fac[col] = NewFactor(col, raw[col], "")
	}
	return d, nil
}

func flagLevel(v string) (string, error) {
	switch strings.ToLower(v) {
	case "1", "true", "yes":
		return "yes", nil
	case "0", "false", "no", "":
		return "no", nil
	}
	return "", fmt.Errorf("parse flag %q: want 0 or 1", v)
}
