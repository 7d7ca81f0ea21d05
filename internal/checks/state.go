package checks

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/DerInti/check-netscaler/internal/nitro"
	"github.com/DerInti/check-netscaler/internal/plugin"
)

// checkState verifies that every instance of the requested object type is UP.
// Anything else, including states this plugin does not recognize, is treated
// as critical.
func checkState(ctx context.Context, client *nitro.Client, p Params) (*plugin.Result, error) {
	if p.ObjectType == "" {
		return nil, usageErrorf("state check requires an objecttype")
	}
	fields, ok := stateObjects[p.ObjectType]
	if !ok {
		return nil, usageErrorf("state check does not support objecttype %q", p.ObjectType)
	}

	doc, err := client.Get(ctx, endpointOr(p, fields.endpoint), p.ObjectType, p.ObjectName, p.URLOpts)
	if err != nil {
		return nil, err
	}
	narrowed, err := doc.Narrow(p.ObjectType)
	if err != nil {
		return nil, err
	}

	var col plugin.Collector
	var up, down, oos, unknown int
	for _, item := range narrowed.Items() {
		name, err := item.StringField(fields.nameField)
		if err != nil {
			return nil, err
		}
		state, err := item.StringField(fields.stateField)
		if err != nil {
			return nil, err
		}
		switch strings.ToUpper(state) {
		case "UP":
			up++
		case "DOWN":
			down++
			col.Add(plugin.StatusCritical, fmt.Sprintf("%s is DOWN", name))
		case "OUT OF SERVICE":
			oos++
			col.Add(plugin.StatusCritical, fmt.Sprintf("%s is OUT OF SERVICE", name))
		default:
			unknown++
			col.Add(plugin.StatusCritical, fmt.Sprintf("%s is in unknown state %q", name, state))
		}
	}

	total := up + down + oos + unknown
	col.Add(plugin.StatusOK, fmt.Sprintf("%d of %d %s up", up, total, p.ObjectType))

	col.AddPerfData(plugin.PerfData{Label: "up", Value: strconv.Itoa(up)})
	col.AddPerfData(plugin.PerfData{Label: "down", Value: strconv.Itoa(down)})
	col.AddPerfData(plugin.PerfData{Label: "oos", Value: strconv.Itoa(oos)})
	col.AddPerfData(plugin.PerfData{Label: "unknown", Value: strconv.Itoa(unknown)})

	return col.Finalize(), nil
}
