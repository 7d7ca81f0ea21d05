package checks

import (
	"context"
	"fmt"

	"github.com/DerInti/check-netscaler/internal/nitro"
	"github.com/DerInti/check-netscaler/internal/plugin"
)

// checkSSLCert inspects every installed certificate for upcoming expiry.
// Certificates comfortably away from expiry produce no message of their own.
func checkSSLCert(ctx context.Context, client *nitro.Client, p Params) (*plugin.Result, error) {
	objectType := p.ObjectType
	if objectType == "" {
		objectType = "sslcertkey"
	}
	warn, err := thresholdFloat(p.Warning, "warning", 30)
	if err != nil {
		return nil, err
	}
	crit, err := thresholdFloat(p.Critical, "critical", 10)
	if err != nil {
		return nil, err
	}

	doc, err := client.Get(ctx, endpointOr(p, "config"), objectType, p.ObjectName, p.URLOpts)
	if err != nil {
		return nil, err
	}
	narrowed, err := doc.Narrow(objectType)
	if err != nil {
		return nil, err
	}

	var col plugin.Collector
	for _, item := range narrowed.Items() {
		name, err := item.StringField("certkey")
		if err != nil {
			return nil, err
		}
		days, err := item.FloatField("daystoexpiration")
		if err != nil {
			return nil, err
		}
		switch {
		case days <= crit:
			col.Add(plugin.StatusCritical, fmt.Sprintf("certificate %s expires in %s days", name, plugin.FormatFloat(days)))
		case days <= warn:
			col.Add(plugin.StatusWarning, fmt.Sprintf("certificate %s expires in %s days", name, plugin.FormatFloat(days)))
		}
	}

	res := col.Finalize()
	if res.Status == plugin.StatusOK {
		res.Message = fmt.Sprintf("all certificates valid for more than %s days", plugin.FormatFloat(warn))
	}
	return res, nil
}
