package checks

import (
	"context"
	"fmt"
	"strings"

	"github.com/DerInti/check-netscaler/internal/nitro"
	"github.com/DerInti/check-netscaler/internal/plugin"
)

// checkAbove alerts when a field value is at or above the thresholds.
func checkAbove(ctx context.Context, client *nitro.Client, p Params) (*plugin.Result, error) {
	return checkThreshold(ctx, client, p, false)
}

// checkBelow alerts when a field value is at or below the thresholds.
func checkBelow(ctx context.Context, client *nitro.Client, p Params) (*plugin.Result, error) {
	return checkThreshold(ctx, client, p, true)
}

func checkThreshold(ctx context.Context, client *nitro.Client, p Params, below bool) (*plugin.Result, error) {
	if p.ObjectType == "" {
		return nil, usageErrorf("threshold check requires an objecttype")
	}
	if p.ObjectName == "" {
		return nil, usageErrorf("threshold check requires the field names as objectname")
	}
	warn, err := requiredThresholdFloat(p.Warning, "warning")
	if err != nil {
		return nil, err
	}
	crit, err := requiredThresholdFloat(p.Critical, "critical")
	if err != nil {
		return nil, err
	}

	doc, err := client.Get(ctx, endpointOr(p, "stat"), p.ObjectType, "", p.URLOpts)
	if err != nil {
		return nil, err
	}
	narrowed, err := doc.Narrow(p.ObjectType)
	if err != nil {
		return nil, err
	}

	// The comparison direction flips between above and below; critical is
	// always evaluated before warning so it takes precedence on overlap.
	exceeds := func(v, threshold float64) bool {
		if below {
			return v <= threshold
		}
		return v >= threshold
	}

	var col plugin.Collector
	for _, field := range strings.Split(p.ObjectName, ",") {
		value, err := narrowed.FloatField(field)
		if err != nil {
			return nil, err
		}
		switch {
		case exceeds(value, crit):
			col.Add(plugin.StatusCritical, fmt.Sprintf("%s is %s (critical %s)", field, plugin.FormatFloat(value), plugin.FormatFloat(crit)))
		case exceeds(value, warn):
			col.Add(plugin.StatusWarning, fmt.Sprintf("%s is %s (warning %s)", field, plugin.FormatFloat(value), plugin.FormatFloat(warn)))
		default:
			col.Add(plugin.StatusOK, fmt.Sprintf("%s is %s", field, plugin.FormatFloat(value)))
		}
		col.AddPerfData(plugin.PerfData{
			Label: field,
			Value: plugin.FormatFloat(value),
			Warn:  p.Warning,
			Crit:  p.Critical,
		})
	}

	return col.Finalize(), nil
}
