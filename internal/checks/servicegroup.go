package checks

import (
	"context"
	"fmt"
	"strings"

	"github.com/DerInti/check-netscaler/internal/nitro"
	"github.com/DerInti/check-netscaler/internal/plugin"
)

// checkServicegroup queries both the servicegroup object and its member
// bindings, verifies the group-level health conditions, and computes the
// member quorum as the percentage of members that are enabled and up.
func checkServicegroup(ctx context.Context, client *nitro.Client, p Params) (*plugin.Result, error) {
	if p.ObjectName == "" {
		return nil, usageErrorf("servicegroup check requires the servicegroup name as objectname")
	}
	warn, err := thresholdFloat(p.Warning, "warning", 90)
	if err != nil {
		return nil, err
	}
	crit, err := thresholdFloat(p.Critical, "critical", 50)
	if err != nil {
		return nil, err
	}

	endpoint := endpointOr(p, "config")

	groupDoc, err := client.Get(ctx, endpoint, "servicegroup", p.ObjectName, p.URLOpts)
	if err != nil {
		return nil, err
	}
	groups, err := groupDoc.Narrow("servicegroup")
	if err != nil {
		return nil, err
	}

	var col plugin.Collector
	for _, group := range groups.Items() {
		if err := checkGroupCondition(group, "state", "ENABLED", "is disabled", &col); err != nil {
			return nil, err
		}
		if err := checkGroupCondition(group, "servicegroupeffectivestate", "UP", "effective state is not up", &col); err != nil {
			return nil, err
		}
		if err := checkGroupCondition(group, "monstate", "ENABLED", "monitoring is disabled", &col); err != nil {
			return nil, err
		}
		if err := checkGroupCondition(group, "healthmonitor", "YES", "health monitoring is off", &col); err != nil {
			return nil, err
		}
	}

	memberDoc, err := client.Get(ctx, endpoint, "servicegroup_servicegroupmember_binding", p.ObjectName, p.URLOpts)
	if err != nil {
		return nil, err
	}
	members, err := memberDoc.Narrow("servicegroup_servicegroupmember_binding")
	if err != nil {
		return nil, err
	}

	var up, down int
	for _, member := range members.Items() {
		name, err := member.StringField("servername")
		if err != nil {
			return nil, err
		}
		state, err := member.StringField("state")
		if err != nil {
			return nil, err
		}
		srvState, err := member.StringField("svrstate")
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(state, "ENABLED") && strings.EqualFold(srvState, "UP") {
			up++
		} else {
			down++
			col.Add(plugin.StatusCritical, fmt.Sprintf("member %s is down", name))
		}
	}

	if up+down == 0 {
		col.Add(plugin.StatusCritical, fmt.Sprintf("servicegroup %s has no members", p.ObjectName))
		return col.Finalize(), nil
	}

	quorum := 100 * float64(up) / float64(up+down)
	switch {
	case quorum <= crit:
		col.Add(plugin.StatusCritical, fmt.Sprintf("quorum %s%% of %s", plugin.FormatFloat(quorum), p.ObjectName))
	case quorum <= warn:
		col.Add(plugin.StatusWarning, fmt.Sprintf("quorum %s%% of %s", plugin.FormatFloat(quorum), p.ObjectName))
	default:
		col.Add(plugin.StatusOK, fmt.Sprintf("quorum %s%% of %s (%d of %d members up)", plugin.FormatFloat(quorum), p.ObjectName, up, up+down))
	}
	col.AddPerfData(plugin.PerfData{
		Label: p.ObjectName + "_quorum",
		Value: plugin.FormatFloat(quorum),
		Unit:  "%",
		Warn:  plugin.FormatFloat(warn),
		Crit:  plugin.FormatFloat(crit),
		Min:   "0",
		Max:   "100",
	})

	return col.Finalize(), nil
}

func checkGroupCondition(group nitro.Document, field, want, reason string, col *plugin.Collector) error {
	value, err := group.StringField(field)
	if err != nil {
		return err
	}
	if !strings.EqualFold(value, want) {
		col.Add(plugin.StatusCritical, fmt.Sprintf("servicegroup %s (%s is %s)", reason, field, value))
	}
	return nil
}
