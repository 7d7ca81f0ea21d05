package checks

import (
	"context"
	"fmt"
	"strings"

	"github.com/DerInti/check-netscaler/internal/nitro"
	"github.com/DerInti/check-netscaler/internal/plugin"
)

// checkServer verifies that configured servers are enabled. A disabled server
// warns; all servers disabled escalates the overall verdict to critical after
// aggregation, the same override rule as the staserver check.
func checkServer(ctx context.Context, client *nitro.Client, p Params) (*plugin.Result, error) {
	doc, err := client.Get(ctx, endpointOr(p, "config"), "server", p.ObjectName, p.URLOpts)
	if err != nil {
		return nil, err
	}
	narrowed, err := doc.Narrow("server")
	if err != nil {
		return nil, err
	}

	var col plugin.Collector
	items := narrowed.Items()
	disabled := 0
	for _, item := range items {
		name, err := item.StringField("name")
		if err != nil {
			return nil, err
		}
		state, err := item.StringField("state")
		if err != nil {
			return nil, err
		}
		if !strings.EqualFold(state, "ENABLED") {
			disabled++
			col.Add(plugin.StatusWarning, fmt.Sprintf("server %s is %s", name, state))
		}
	}

	col.Add(plugin.StatusOK, fmt.Sprintf("%d of %d servers enabled", len(items)-disabled, len(items)))

	res := col.Finalize()
	if len(items) > 0 && disabled == len(items) {
		res.Status = plugin.StatusCritical
	}
	return res, nil
}
