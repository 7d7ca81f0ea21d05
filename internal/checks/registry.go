package checks

// CheckDef pairs a check name with its evaluator and the one-line description
// shown in the command help.
type CheckDef struct {
	Name        string
	Description string
	Run         Evaluator
}

var registry = []CheckDef{
	{"state", "Check the state of vservers, services, servicegroups or servers", checkState},
	{"above", "Alert when numeric fields are at or above the thresholds", checkAbove},
	{"below", "Alert when numeric fields are at or below the thresholds", checkBelow},
	{"matches", "Alert when string fields match the threshold values", checkMatches},
	{"matches_not", "Alert when string fields do not match the threshold values", checkMatchesNot},
	{"sslcert", "Check installed SSL certificates for upcoming expiry", checkSSLCert},
	{"nsconfig", "Check for unsaved configuration changes", checkNSConfig},
	{"staserver", "Check the state of bound Secure Ticket Authority servers", checkStaserver},
	{"server", "Check that configured servers are enabled", checkServer},
	{"servicegroup", "Check servicegroup health and member quorum", checkServicegroup},
	{"license", "Check a license file for upcoming feature expiry", checkLicense},
	{"interfaces", "Check network interface link, state and error counters", checkInterfaces},
	{"hwinfo", "Show hardware and version information", checkHWInfo},
	{"performancedata", "Collect performance data from arbitrary stat fields", checkPerformanceData},
	{"debug", "Dump the raw API response for inspection", checkDebug},
}

// All returns every registered check in a stable order.
func All() []CheckDef {
	return registry
}

// Lookup resolves a check name. Unknown names are a usage error.
func Lookup(name string) (CheckDef, error) {
	for _, def := range registry {
		if def.Name == name {
			return def, nil
		}
	}
	return CheckDef{}, usageErrorf("unknown check %q", name)
}
