package regress

import (
	"fmt"
	"strings"
)

// Markdown renders the fitted model as a compact coefficient table in the
// same bracket-section style the rest of the CLI emits.
func (m *Model) Markdown() string {
	var b strings.Builder
	b.WriteString("[MODEL]\n")
	b.WriteString(fmt.Sprintf("Formula: %s\n", m.Formula))
	b.WriteString(fmt.Sprintf("Observations: %d\n", m.N))
	b.WriteString(fmt.Sprintf("R²: %.4f (adjusted %.4f), residual df %d\n\n", m.R2, m.AdjR2, m.ResidualDF))

	b.WriteString("| term | estimate | std. error | t | p |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, c := range m.Coefficients {
		b.WriteString(fmt.Sprintf("| %s | %.6g | %.4g | %.3f | %.4g |\n",
			c.Name, c.Estimate, c.StdErr, c.TValue, c.PValue))
	}
	return b.String()
}

// Markdown renders the elimination trace and the surviving model.
func (s *Selection) Markdown() string {
	var b strings.Builder
	b.WriteString("[STEPWISE SELECTION]\n")
	b.WriteString(fmt.Sprintf("Start: %s (AIC %.2f)\n", s.Start, s.StartAIC))
	if len(s.Trace) == 0 {
		b.WriteString("No removal lowered AIC; full model retained.\n")
	} else {
		for _, st := range s.Trace {
			b.WriteString(fmt.Sprintf("- removed %s -> AIC %.2f (%d terms left)\n", st.Term, st.AIC, st.Remaining))
		}
	}
	b.WriteString("\n")
	b.WriteString(s.Model.Markdown())
	return b.String()
}
