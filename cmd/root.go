package cmd

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags "-X github.com/DerInti/check-netscaler/cmd.Version=..."
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "check_netscaler",
	Short: "Monitoring plugin for Citrix NetScaler appliances",
	Long: `check_netscaler queries the NITRO REST management API of a NetScaler
appliance and reports a standard monitoring verdict: exit code 0 (OK),
1 (WARNING), 2 (CRITICAL) or 3 (UNKNOWN), with optional performance data.`,
	Version:       Version,
	SilenceErrors: true,
}

const checkGroupID = "checks"

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		exitUnknown(err)
	}
	return nil
}

func init() {
	rootCmd.AddGroup(&cobra.Group{ID: checkGroupID, Title: "Health Checks:"})

	pf := rootCmd.PersistentFlags()
	pf.StringP("hostname", "H", "", "NetScaler hostname or address")
	pf.Int("port", 0, "Port of the management API (0 uses the scheme default)")
	pf.StringP("username", "u", "", "Username for the management API")
	pf.StringP("password", "p", "", "Password for the management API")
	pf.BoolP("ssl", "s", true, "Connect via HTTPS")
	pf.Bool("insecure", false, "Skip TLS certificate verification")
	pf.String("api-version", "v1", "NITRO API version")
	pf.DurationP("timeout", "t", 15*time.Second, "Timeout for the whole API exchange")
	pf.CountP("verbose", "v", "Log requests and raw responses to stderr")
	pf.StringP("config", "C", "", "Path to a YAML file with connection defaults")
}

// newLogger builds the diagnostic sink. Verbose mode enables debug output on
// stderr; diagnostics never change the verdict.
func newLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetCount("verbose")
	level := slog.LevelWarn
	if verbose > 0 {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
