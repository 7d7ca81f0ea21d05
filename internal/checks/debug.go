package checks

import (
	"context"

	"github.com/DerInti/check-netscaler/internal/nitro"
	"github.com/DerInti/check-netscaler/internal/plugin"
)

// checkDebug dumps the decoded response for inspection. The output is
// diagnostic, not a verdict, so the result carries the UNKNOWN status.
func checkDebug(ctx context.Context, client *nitro.Client, p Params) (*plugin.Result, error) {
	if p.ObjectType == "" {
		return nil, usageErrorf("debug check requires an objecttype")
	}
	doc, err := client.Get(ctx, endpointOr(p, "config"), p.ObjectType, p.ObjectName, p.URLOpts)
	if err != nil {
		return nil, err
	}
	return &plugin.Result{
		Status:  plugin.StatusUnknown,
		Message: doc.Dump(),
	}, nil
}
