package regress

import (
	"errors"
	"fmt"
)

var errNotPositiveDefinite = errors.New("normal equations are not positive definite")

// SingularDesignError indicates the design matrix for a formula is
// rank-deficient (perfectly collinear columns, or fewer rows than
// coefficients). The fit is unusable; callers may retry with a reduced
// formula.
type SingularDesignError struct {
	Formula string
	Reason  string
}

func (e *SingularDesignError) Error() string {
	return fmt.Sprintf("singular design matrix for %s: %s", e.Formula, e.Reason)
}
