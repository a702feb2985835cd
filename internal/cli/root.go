// Package cli implements tripctl, the command-line companion to the API:
// the time and distance tools without a server, plus database migrations.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the tripctl command tree. Commands write to the
// command's configured output so tests can capture it.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tripctl",
		Short: "tripctl – tools for the Flåm trip companion",
		Long: `tripctl exposes the trip companion's time and distance helpers on the
command line and applies the database migrations that seed the itinerary.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newDurationCmd())
	root.AddCommand(newCountdownCmd())
	root.AddCommand(newDistanceCmd())
	root.AddCommand(newMigrateCmd())
	return root
}
