package checks

import (
	"context"

	"github.com/DerInti/check-netscaler/internal/nitro"
	"github.com/DerInti/check-netscaler/internal/plugin"
)

// checkNSConfig warns when the running configuration differs from the saved
// one. A missing flag is treated like unsaved changes, since older releases
// omit it exactly when the config is dirty.
func checkNSConfig(ctx context.Context, client *nitro.Client, p Params) (*plugin.Result, error) {
	doc, err := client.Get(ctx, endpointOr(p, "config"), "nsconfig", "", p.URLOpts)
	if err != nil {
		return nil, err
	}
	narrowed, err := doc.Narrow("nsconfig")
	if err != nil {
		return nil, err
	}

	changed := true
	if field, err := narrowed.Field("configchanged"); err == nil {
		if v, err := field.Bool(); err == nil {
			changed = v
		}
	}

	if changed {
		return &plugin.Result{
			Status:  plugin.StatusWarning,
			Message: "unsaved configuration changes",
		}, nil
	}
	return &plugin.Result{
		Status:  plugin.StatusOK,
		Message: "no unsaved configuration changes",
	}, nil
}
