package checks

import (
	"bufio"
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	units "github.com/docker/go-units"

	"github.com/DerInti/check-netscaler/internal/nitro"
	"github.com/DerInti/check-netscaler/internal/plugin"
)

const licenseDir = "/nsconfig/license"

// checkLicense fetches a license file from the appliance and checks every
// INCREMENT record for upcoming feature expiry.
func checkLicense(ctx context.Context, client *nitro.Client, p Params) (*plugin.Result, error) {
	if p.ObjectName == "" {
		return nil, usageErrorf("license check requires the license file name as objectname")
	}
	warn, err := thresholdFloat(p.Warning, "warning", 30)
	if err != nil {
		return nil, err
	}
	crit, err := thresholdFloat(p.Critical, "critical", 10)
	if err != nil {
		return nil, err
	}

	opts := "args=filename:" + nitro.EscapeName(p.ObjectName) + ",filelocation:" + nitro.EscapeName(licenseDir)
	doc, err := client.Get(ctx, endpointOr(p, "config"), "systemfile", "", opts)
	if err != nil {
		return nil, err
	}
	narrowed, err := doc.Narrow("systemfile")
	if err != nil {
		return nil, err
	}
	items := narrowed.Items()
	if len(items) == 0 {
		return nil, fmt.Errorf("license file %s not found", p.ObjectName)
	}
	encoded, err := items[0].StringField("filecontent")
	if err != nil {
		return nil, err
	}
	content, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, &nitro.DecodeError{Err: fmt.Errorf("license file content: %w", err)}
	}

	var col plugin.Collector
	now := time.Now()
	features := 0
	scanner := bufio.NewScanner(strings.NewReader(string(content)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "INCREMENT") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 5 {
			continue
		}
		features++
		feature := fields[1]
		expiry, permanent, err := parseLicenseDate(fields[4])
		if err != nil {
			return nil, fmt.Errorf("license record %s: %w", feature, err)
		}
		if permanent {
			col.Add(plugin.StatusOK, fmt.Sprintf("%s never expires", feature))
			continue
		}
		days := expiry.Sub(now).Hours() / 24
		switch {
		case days <= crit:
			col.Add(plugin.StatusCritical, fmt.Sprintf("%s expires in %d days", feature, int(days)))
		case days <= warn:
			col.Add(plugin.StatusWarning, fmt.Sprintf("%s expires in %d days", feature, int(days)))
		default:
			col.Add(plugin.StatusOK, fmt.Sprintf("%s expires in %s", feature, units.HumanDuration(expiry.Sub(now))))
		}
	}
	if features == 0 {
		return nil, fmt.Errorf("no INCREMENT records found in %s", p.ObjectName)
	}

	return col.Finalize(), nil
}

var licenseMonths = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// parseLicenseDate parses the dd-mmm-yyyy expiry field of an INCREMENT
// record. "permanent" and a year of 0 both mean the feature never expires.
func parseLicenseDate(s string) (expiry time.Time, permanent bool, err error) {
	if strings.EqualFold(s, "permanent") {
		return time.Time{}, true, nil
	}
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, false, fmt.Errorf("expiry date %q is not dd-mmm-yyyy", s)
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false, fmt.Errorf("expiry date %q is not dd-mmm-yyyy", s)
	}
	month, ok := licenseMonths[strings.ToLower(parts[1])]
	if !ok {
		return time.Time{}, false, fmt.Errorf("expiry date %q has unknown month %q", s, parts[1])
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, false, fmt.Errorf("expiry date %q is not dd-mmm-yyyy", s)
	}
	if year == 0 {
		return time.Time{}, true, nil
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), false, nil
}
