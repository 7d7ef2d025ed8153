// Package regress fits ordinary least-squares models over listing datasets
// and selects among them by backward AIC elimination.
package regress

import (
	"fmt"
	"math"
	"strings"
)

// Transform is applied to the response before fitting.
type Transform int

const (
	// Identity leaves the response as-is.
	Identity Transform = iota
	// Log fits ln(y).
	Log
	// BoxCox fits (y^λ − 1)/λ for the formula's Lambda; Lambda 0 degrades
	// to Log.
	BoxCox
)

// Formula is an immutable model specification: a response column, an
// optional response transform, and an ordered list of predictor columns.
// Factor predictors are dummy-encoded against their reference level at fit
// time.
type Formula struct {
	Response  string
	Transform Transform
	Lambda    float64
	Terms     []string
}

// Without returns a copy of the formula with one term removed.
func (f Formula) Without(term string) Formula {
	terms := make([]string, 0, len(f.Terms))
	for _, t := range f.Terms {
		if t != term {
			terms = append(terms, t)
		}
	}
	out := f
	out.Terms = terms
	return out
}

// ResponseLabel names the transformed response, e.g. "log(price)".
func (f Formula) ResponseLabel() string {
	switch f.Transform {
	case Log:
		return fmt.Sprintf("log(%s)", f.Response)
	case BoxCox:
		return fmt.Sprintf("boxcox(%s, %g)", f.Response, f.Lambda)
	default:
		return f.Response
	}
}

func (f Formula) String() string {
	if len(f.Terms) == 0 {
		return f.ResponseLabel() + " ~ 1"
	}
	return f.ResponseLabel() + " ~ " + strings.Join(f.Terms, " + ")
}

// apply transforms a single response value.
func (f Formula) apply(y float64) (float64, error) {
	switch f.Transform {
	case Identity:
		return y, nil
	case Log:
		if y <= 0 {
			return 0, fmt.Errorf("log response requires positive values, got %g", y)
		}
		return math.Log(y), nil
	case BoxCox:
		if y <= 0 {
			return 0, fmt.Errorf("box-cox response requires positive values, got %g", y)
		}
		if f.Lambda == 0 {
			return math.Log(y), nil
		}
		return (math.Pow(y, f.Lambda) - 1) / f.Lambda, nil
	}
	return 0, fmt.Errorf("unknown response transform %d", f.Transform)
}
