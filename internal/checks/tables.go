package checks

// stateObject describes how one object type names its instances and reports
// their state. The key names are not uniform across the NITRO API, so the
// irregularity lives in this table; new object types are new rows.
type stateObject struct {
	nameField  string
	stateField string
	endpoint   string
}

var stateObjects = map[string]stateObject{
	"lbvserver":             {"name", "state", "config"},
	"csvserver":             {"name", "state", "config"},
	"gslbvserver":           {"name", "state", "config"},
	"vpnvserver":            {"name", "state", "config"},
	"authenticationvserver": {"name", "state", "config"},
	"service":               {"name", "svrstate", "config"},
	"servicegroup":          {"servicegroupname", "servicegroupeffectivestate", "config"},
	"server":                {"name", "state", "config"},
}
