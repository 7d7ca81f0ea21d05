package checks

import (
	"context"
	"errors"
	"fmt"

	"github.com/DerInti/check-netscaler/internal/nitro"
	"github.com/DerInti/check-netscaler/internal/plugin"
)

// checkStaserver verifies that the bound Secure Ticket Authority servers are
// reachable. A binding without an auth id is unreachable and warns; when every
// binding is unreachable no ticket can be issued at all, so the overall
// verdict escalates to critical after aggregation.
func checkStaserver(ctx context.Context, client *nitro.Client, p Params) (*plugin.Result, error) {
	objectType := "vpnglobal_staserver_binding"
	objectName := ""
	if p.ObjectName != "" {
		objectType = "vpnvserver_staserver_binding"
		objectName = p.ObjectName
	}

	doc, err := client.Get(ctx, endpointOr(p, "config"), objectType, objectName, p.URLOpts)
	if err != nil {
		return nil, err
	}
	narrowed, err := doc.Narrow(objectType)
	if err != nil {
		return nil, err
	}

	var col plugin.Collector
	items := narrowed.Items()
	unreachable := 0
	for _, item := range items {
		address, err := item.StringField("staserver")
		if err != nil {
			return nil, err
		}
		authID, err := item.StringField("staauthid")
		if err != nil {
			var notFound *nitro.FieldNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
			authID = ""
		}
		if authID == "" {
			unreachable++
			col.Add(plugin.StatusWarning, fmt.Sprintf("%s unavailable", address))
		} else {
			col.Add(plugin.StatusOK, fmt.Sprintf("%s (%s)", address, authID))
		}
	}

	res := col.Finalize()
	if len(items) > 0 && unreachable == len(items) {
		res.Status = plugin.StatusCritical
	}
	return res, nil
}
