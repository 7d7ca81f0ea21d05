package checks

import (
	"context"
	"fmt"
	"strings"

	"github.com/DerInti/check-netscaler/internal/nitro"
	"github.com/DerInti/check-netscaler/internal/plugin"
)

// checkPerformanceData emits one perfdata point per requested field. When the
// response is a list, each field spec must pair an identifier field with the
// metric field ("id.name") so every emitted point gets a unique label.
func checkPerformanceData(ctx context.Context, client *nitro.Client, p Params) (*plugin.Result, error) {
	if p.ObjectType == "" {
		return nil, usageErrorf("performancedata check requires an objecttype")
	}
	if p.ObjectName == "" {
		return nil, usageErrorf("performancedata check requires the field names as objectname")
	}

	doc, err := client.Get(ctx, endpointOr(p, "stat"), p.ObjectType, "", p.URLOpts)
	if err != nil {
		return nil, err
	}
	narrowed, err := doc.Narrow(p.ObjectType)
	if err != nil {
		return nil, err
	}

	var col plugin.Collector
	specs := strings.Split(p.ObjectName, ",")

	switch narrowed.Kind() {
	case nitro.KindSequence:
		for _, spec := range specs {
			idField, metricField, ok := strings.Cut(spec, ".")
			if !ok {
				return nil, usageErrorf("field %q must be of the form id.name when the response is a list", spec)
			}
			for _, item := range narrowed.Items() {
				id, err := item.StringField(idField)
				if err != nil {
					return nil, err
				}
				value, err := item.StringField(metricField)
				if err != nil {
					return nil, err
				}
				label := fmt.Sprintf("%s.%s.%s", p.ObjectType, id, metricField)
				col.Add(plugin.StatusOK, fmt.Sprintf("%s is %s", label, value))
				col.AddPerfData(plugin.PerfData{
					Label: label,
					Value: value,
					Warn:  p.Warning,
					Crit:  p.Critical,
				})
			}
		}
	case nitro.KindMapping:
		for _, spec := range specs {
			value, err := narrowed.StringField(spec)
			if err != nil {
				return nil, err
			}
			label := p.ObjectType + "." + spec
			col.Add(plugin.StatusOK, fmt.Sprintf("%s is %s", label, value))
			col.AddPerfData(plugin.PerfData{
				Label: label,
				Value: value,
				Warn:  p.Warning,
				Crit:  p.Critical,
			})
		}
	default:
		return nil, fmt.Errorf("unexpected response shape for %s", p.ObjectType)
	}

	return col.Finalize(), nil
}
