package main

import (
	"os"

	"github.com/DerInti/check-netscaler/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Argument errors are usage errors; exit UNKNOWN so the scheduler
		// does not mistake them for a health verdict.
		os.Exit(3)
	}
}
