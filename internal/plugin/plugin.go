// Package plugin implements the monitoring-plugin output conventions: a
// severity-ordered verdict, message aggregation across checked items, and the
// pipe-delimited performance-data segment.
package plugin

import "strings"

// Status is the verdict of a check, ordered by severity.
type Status int

const (
	StatusOK Status = iota
	StatusWarning
	StatusCritical
	StatusUnknown
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "WARNING"
	case StatusCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ExitCode maps the status to the conventional monitoring exit code.
func (s Status) ExitCode() int {
	return int(s)
}

// Worse returns the higher-severity of two statuses.
func Worse(a, b Status) Status {
	if b > a {
		return b
	}
	return a
}

// Result is the final outcome of one check invocation.
type Result struct {
	Status   Status
	Message  string
	PerfData []PerfData
}

// Render formats the single output line consumed by the scheduler.
func (r *Result) Render() string {
	var sb strings.Builder
	sb.WriteString("NetScaler ")
	sb.WriteString(r.Status.String())
	sb.WriteString(": ")
	sb.WriteString(r.Message)
	if len(r.PerfData) > 0 {
		sb.WriteString(" |")
		for _, pd := range r.PerfData {
			sb.WriteString(" ")
			sb.WriteString(pd.String())
		}
	}
	return sb.String()
}
