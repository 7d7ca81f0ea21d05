package checks

import (
	"context"
	"strings"
	"testing"

	"github.com/DerInti/check-netscaler/internal/plugin"
)

func TestCheckHWInfo(t *testing.T) {
	client := newTestClient(t, respondByPath(t, map[string]string{
		"nshardware": `{"nshardware": {
			"hwdescription": "NetScaler",
			"sysid": "450010",
			"manufactureday": "17",
			"manufacturemonth": "6",
			"manufactureyear": "2021",
			"cpufrequncy": "2100",
			"serialno": "ABC1234567",
			"host": "0a0b0c0d0e0f"
		}}`,
		"nsversion": `{"nsversion": {"version": "NetScaler NS13.1: Build 37.38.nc"}}`,
	}))

	res, err := checkHWInfo(context.Background(), client, Params{})
	if err != nil {
		t.Fatalf("checkHWInfo: %v", err)
	}
	if res.Status != plugin.StatusOK {
		t.Errorf("expected OK, got %v", res.Status)
	}
	for _, part := range []string{
		"Platform: NetScaler 450010",
		"Manufactured on: 17.6.2021",
		"CPU: 2100MHz",
		"Serial no: ABC1234567",
		"NS13.1",
	} {
		if !strings.Contains(res.Message, part) {
			t.Errorf("missing %q in %q", part, res.Message)
		}
	}
}
