// Package cli implements the tripctl admin command line tool. tripctl
// talks to the same MySQL store as the API server and exists for the
// operations the HTTP surface does not expose, currently bulk-loading the
// city and activity reference catalogs.
package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	infoColor = color.New(color.FgCyan)
	okColor   = color.New(color.FgGreen, color.Bold)
)

// rootCmd is the root command for tripctl.
var rootCmd = &cobra.Command{
	Use:     "tripctl",
	Version: "dev",
	Short:   "Admin tooling for the GlobeTrotter itinerary service",
	Long: `tripctl performs administrative tasks against the GlobeTrotter store.

Database connection settings are read from the DB_* environment variables
(a .env file in the working directory is honored), the same way the API
server reads them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// SetVersion overrides the version shown by --version.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
