package dataset

import "fmt"

// InvalidRecordError indicates the input table is unusable: a required
// column is missing from the header, or a value cannot be parsed.
type InvalidRecordError struct {
	Column string
	Row    int // 1-based data row; 0 when the header itself is at fault
	Err    error
}

func (e *InvalidRecordError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("invalid record: column %q: %v", e.Column, e.Err)
	}
	return fmt.Sprintf("invalid record: row %d, column %q: %v", e.Row, e.Column, e.Err)
}

func (e *InvalidRecordError) Unwrap() error { return e.Err }
