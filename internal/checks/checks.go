// Package checks implements the health-check evaluators and the dispatcher
// that maps check names onto them. Each evaluator is a single linear pass:
// fetch, extract, apply the per-item rule, aggregate, emit.
package checks

import (
	"context"
	"fmt"
	"strconv"

	"github.com/DerInti/check-netscaler/internal/nitro"
	"github.com/DerInti/check-netscaler/internal/plugin"
)

// Params carries the per-invocation check arguments. Which fields are
// required varies per check; evaluators validate before any network call.
type Params struct {
	ObjectType string
	ObjectName string
	Endpoint   string // "config" or "stat"; empty uses the check's default
	Warning    string
	Critical   string
	URLOpts    string
}

// Evaluator runs one check against the appliance.
type Evaluator func(ctx context.Context, client *nitro.Client, p Params) (*plugin.Result, error)

// UsageError marks a missing or invalid parameter, raised before any network
// I/O and mapped to the UNKNOWN exit code.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

func usageErrorf(format string, args ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// endpointOr returns the endpoint override from the params, or the check's
// default.
func endpointOr(p Params, def string) string {
	if p.Endpoint != "" {
		return p.Endpoint
	}
	return def
}

// thresholdFloat parses a numeric threshold parameter, falling back to a
// default when the parameter was not given.
func thresholdFloat(value string, name string, def float64) (float64, error) {
	if value == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, usageErrorf("%s threshold %q is not numeric", name, value)
	}
	return v, nil
}

// requiredThresholdFloat parses a numeric threshold parameter that has no
// default.
func requiredThresholdFloat(value string, name string) (float64, error) {
	if value == "" {
		return 0, usageErrorf("%s threshold is required", name)
	}
	return thresholdFloat(value, name, 0)
}
