package checks

import (
	"context"
	"fmt"
	"strings"

	"github.com/DerInti/check-netscaler/internal/nitro"
	"github.com/DerInti/check-netscaler/internal/plugin"
)

// checkMatches alerts when a field value equals the critical or warning
// string.
func checkMatches(ctx context.Context, client *nitro.Client, p Params) (*plugin.Result, error) {
	return checkStringMatch(ctx, client, p, false)
}

// checkMatchesNot is the exact logical inverse of checkMatches.
func checkMatchesNot(ctx context.Context, client *nitro.Client, p Params) (*plugin.Result, error) {
	return checkStringMatch(ctx, client, p, true)
}

func checkStringMatch(ctx context.Context, client *nitro.Client, p Params, invert bool) (*plugin.Result, error) {
	if p.ObjectType == "" {
		return nil, usageErrorf("string match check requires an objecttype")
	}
	if p.ObjectName == "" {
		return nil, usageErrorf("string match check requires the field names as objectname")
	}
	if p.Warning == "" || p.Critical == "" {
		return nil, usageErrorf("string match check requires warning and critical values")
	}

	doc, err := client.Get(ctx, endpointOr(p, "stat"), p.ObjectType, "", p.URLOpts)
	if err != nil {
		return nil, err
	}
	narrowed, err := doc.Narrow(p.ObjectType)
	if err != nil {
		return nil, err
	}

	verb := "matches"
	if invert {
		verb = "does not match"
	}

	var col plugin.Collector
	for _, field := range strings.Split(p.ObjectName, ",") {
		value, err := narrowed.StringField(field)
		if err != nil {
			return nil, err
		}
		switch {
		case (value == p.Critical) != invert:
			col.Add(plugin.StatusCritical, fmt.Sprintf("%s %s %q", field, verb, p.Critical))
		case (value == p.Warning) != invert:
			col.Add(plugin.StatusWarning, fmt.Sprintf("%s %s %q", field, verb, p.Warning))
		default:
			col.Add(plugin.StatusOK, fmt.Sprintf("%s is %q", field, value))
		}
	}

	return col.Finalize(), nil
}
