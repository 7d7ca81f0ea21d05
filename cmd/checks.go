package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DerInti/check-netscaler/internal/checks"
	"github.com/DerInti/check-netscaler/internal/config"
	"github.com/DerInti/check-netscaler/internal/nitro"
)

func init() {
	for _, def := range checks.All() {
		def := def
		c := &cobra.Command{
			Use:     def.Name,
			Short:   def.Description,
			GroupID: checkGroupID,
			Args:    cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				runCheck(cmd, def)
			},
		}
		c.Flags().StringP("objecttype", "o", "", "NITRO object type to query")
		c.Flags().StringP("objectname", "n", "", "Object name, or comma-separated field list depending on the check")
		c.Flags().StringP("endpoint", "e", "", "API endpoint override (config or stat)")
		c.Flags().StringP("warning", "w", "", "Warning threshold")
		c.Flags().StringP("critical", "c", "", "Critical threshold")
		c.Flags().String("urlopts", "", "Extra query string appended to the request")
		rootCmd.AddCommand(c)
	}
}

func runCheck(cmd *cobra.Command, def checks.CheckDef) {
	settings, err := loadSettings(cmd)
	if err != nil {
		exitUnknown(err)
	}
	if settings.Host == "" {
		exitUnknown(&checks.UsageError{Msg: "hostname is required"})
	}

	client := nitro.New(nitro.Config{
		Host:       settings.Host,
		Port:       settings.Port,
		SSL:        settings.SSL,
		Username:   settings.Username,
		Password:   settings.Password,
		APIVersion: settings.APIVersion,
		Timeout:    settings.Timeout,
		Insecure:   settings.Insecure,
	}, newLogger(cmd))

	p := checks.Params{}
	p.ObjectType, _ = cmd.Flags().GetString("objecttype")
	p.ObjectName, _ = cmd.Flags().GetString("objectname")
	p.Endpoint, _ = cmd.Flags().GetString("endpoint")
	p.Warning, _ = cmd.Flags().GetString("warning")
	p.Critical, _ = cmd.Flags().GetString("critical")
	p.URLOpts, _ = cmd.Flags().GetString("urlopts")

	ctx, cancel := context.WithTimeout(context.Background(), settings.Timeout)
	defer cancel()

	result, err := def.Run(ctx, client, p)
	if err != nil {
		exitUnknown(err)
	}

	fmt.Println(result.Render())
	os.Exit(result.Status.ExitCode())
}

// loadSettings resolves connection settings with flag > environment > config
// file > default precedence. Flags only win when explicitly set.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	path, _ := cmd.Flags().GetString("config")
	settings, err := config.Load(path)
	if err != nil {
		return config.Settings{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("hostname") {
		settings.Host, _ = flags.GetString("hostname")
	}
	if flags.Changed("port") {
		settings.Port, _ = flags.GetInt("port")
	}
	if flags.Changed("username") {
		settings.Username, _ = flags.GetString("username")
	}
	if flags.Changed("password") {
		settings.Password, _ = flags.GetString("password")
	}
	if flags.Changed("ssl") {
		settings.SSL, _ = flags.GetBool("ssl")
	}
	if flags.Changed("insecure") {
		settings.Insecure, _ = flags.GetBool("insecure")
	}
	if flags.Changed("api-version") {
		settings.APIVersion, _ = flags.GetString("api-version")
	}
	if flags.Changed("timeout") {
		settings.Timeout, _ = flags.GetDuration("timeout")
	}
	return settings, nil
}

// exitUnknown prints a single diagnostic line and terminates with the UNKNOWN
// exit code. No perfdata is emitted after a fatal error.
func exitUnknown(err error) {
	fmt.Printf("NetScaler UNKNOWN: %v\n", err)
	os.Exit(3)
}
