package plugin

import (
	"strconv"
	"strings"
)

// PerfData is one numeric datapoint attached to a check result. Value and the
// threshold fields are kept as strings so caller-supplied thresholds pass
// through to the output verbatim; empty fields are omitted when rendering.
type PerfData struct {
	Label string
	Value string
	Unit  string
	Warn  string
	Crit  string
	Min   string
	Max   string
}

// String renders the datapoint as label=value[unit][;warn[;crit[;min[;max]]]],
// dropping trailing empty fields.
func (pd PerfData) String() string {
	var sb strings.Builder
	sb.WriteString(pd.Label)
	sb.WriteString("=")
	sb.WriteString(pd.Value)
	sb.WriteString(pd.Unit)

	fields := []string{pd.Warn, pd.Crit, pd.Min, pd.Max}
	last := -1
	for i, f := range fields {
		if f != "" {
			last = i
		}
	}
	for i := 0; i <= last; i++ {
		sb.WriteString(";")
		sb.WriteString(fields[i])
	}
	return sb.String()
}

// FormatFloat renders a float the way perfdata consumers expect, without a
// trailing ".0" for whole numbers.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
