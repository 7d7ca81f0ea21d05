package checks

import (
	"context"
	"fmt"
	"strings"

	units "github.com/docker/go-units"

	"github.com/DerInti/check-netscaler/internal/nitro"
	"github.com/DerInti/check-netscaler/internal/plugin"
)

// checkInterfaces verifies link state, interface state and admin state of
// every network interface. A single interface can fail more than one
// condition and then reports every failing reason.
func checkInterfaces(ctx context.Context, client *nitro.Client, p Params) (*plugin.Result, error) {
	doc, err := client.Get(ctx, endpointOr(p, "config"), "Interface", "", p.URLOpts)
	if err != nil {
		return nil, err
	}
	narrowed, err := doc.Narrow("Interface")
	if err != nil {
		return nil, err
	}

	var col plugin.Collector
	items := narrowed.Items()
	var totalRx, totalTx float64
	for _, item := range items {
		name, err := item.StringField("devicename")
		if err != nil {
			return nil, err
		}
		linkState, err := item.StringField("linkstate")
		if err != nil {
			return nil, err
		}
		intfState, err := item.StringField("intfstate")
		if err != nil {
			return nil, err
		}
		adminState, err := item.StringField("state")
		if err != nil {
			return nil, err
		}

		if linkState != "1" {
			col.Add(plugin.StatusCritical, fmt.Sprintf("interface %s link is down", name))
		}
		if intfState != "1" {
			col.Add(plugin.StatusCritical, fmt.Sprintf("interface %s is down", name))
		}
		if !strings.EqualFold(adminState, "ENABLED") {
			col.Add(plugin.StatusCritical, fmt.Sprintf("interface %s is %s", name, adminState))
		}

		label := strings.ReplaceAll(name, "/", "_")
		for _, counter := range []string{"rxbytes", "txbytes", "rxerrors", "txerrors"} {
			value, err := item.FloatField(counter)
			if err != nil {
				return nil, err
			}
			switch counter {
			case "rxbytes":
				totalRx += value
			case "txbytes":
				totalTx += value
			}
			col.AddPerfData(plugin.PerfData{
				Label: label + "_" + counter,
				Value: plugin.FormatFloat(value),
				Min:   "0",
			})
		}
	}

	col.Add(plugin.StatusOK, fmt.Sprintf("%d interfaces, %s received, %s transmitted",
		len(items), units.BytesSize(totalRx), units.BytesSize(totalTx)))

	return col.Finalize(), nil
}
