package checks

import (
	"context"
	"fmt"

	"github.com/DerInti/check-netscaler/internal/nitro"
	"github.com/DerInti/check-netscaler/internal/plugin"
)

// checkHWInfo assembles hardware and firmware information from two queries.
// Informational only; it always reports OK.
func checkHWInfo(ctx context.Context, client *nitro.Client, p Params) (*plugin.Result, error) {
	endpoint := endpointOr(p, "config")

	hwDoc, err := client.Get(ctx, endpoint, "nshardware", "", p.URLOpts)
	if err != nil {
		return nil, err
	}
	hw, err := hwDoc.Narrow("nshardware")
	if err != nil {
		return nil, err
	}

	platform, err := hw.StringField("hwdescription")
	if err != nil {
		return nil, err
	}
	sysID, err := hw.StringField("sysid")
	if err != nil {
		return nil, err
	}
	day, err := hw.StringField("manufactureday")
	if err != nil {
		return nil, err
	}
	month, err := hw.StringField("manufacturemonth")
	if err != nil {
		return nil, err
	}
	year, err := hw.StringField("manufactureyear")
	if err != nil {
		return nil, err
	}
	// "cpufrequncy" is how the API spells it.
	cpu, err := hw.StringField("cpufrequncy")
	if err != nil {
		return nil, err
	}
	serial, err := hw.StringField("serialno")
	if err != nil {
		return nil, err
	}

	verDoc, err := client.Get(ctx, endpoint, "nsversion", "", p.URLOpts)
	if err != nil {
		return nil, err
	}
	ver, err := verDoc.Narrow("nsversion")
	if err != nil {
		return nil, err
	}
	version, err := ver.StringField("version")
	if err != nil {
		return nil, err
	}

	return &plugin.Result{
		Status: plugin.StatusOK,
		Message: fmt.Sprintf("Platform: %s %s, Manufactured on: %s.%s.%s, CPU: %sMHz, Serial no: %s, %s",
			platform, sysID, day, month, year, cpu, serial, version),
	}, nil
}
