package cli

import (
	"fmt"
	"strconv"
	"time"
	_ "time/tzdata" // --tz must resolve without a system zoneinfo

	"github.com/spf13/cobra"

	"github.com/pkordes/trip-companion/internal/geo"
	"github.com/pkordes/trip-companion/internal/timefmt"
)

func newDurationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duration <start> <end>",
		Short: "Length of the span between two HH:MM times",
		Long:  "Prints e.g. \"2h 30m\" or \"45 min\". An end before start crosses midnight once.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := timefmt.Duration(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	}
}

func newCountdownCmd() *cobra.Command {
	var (
		nowFlag string
		tzFlag  string
	)

	cmd := &cobra.Command{
		Use:   "countdown <time>",
		Short: "Time remaining until HH:MM today",
		Long:  "Prints e.g. \"1h 30m\", or \"" + timefmt.Finished + "\" once the time has passed today.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := time.LoadLocation(tzFlag)
			if err != nil {
				return fmt.Errorf("--tz: %w", err)
			}

			now := time.Now()
			if nowFlag != "" {
				now, err = time.Parse(time.RFC3339, nowFlag)
				if err != nil {
					return fmt.Errorf("--now: %w", err)
				}
			}

			c, err := timefmt.CountdownToStart(args[0], now.In(loc))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c)
			return nil
		},
	}

	cmd.Flags().StringVar(&nowFlag, "now", "", "Reference time (RFC3339); defaults to the current time")
	cmd.Flags().StringVar(&tzFlag, "tz", "Europe/Oslo", "IANA timezone the target time is in")
	return cmd
}

func newDistanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance <lat1> <lng1> <lat2> <lng2>",
		Short: "Great-circle distance between two points",
		Args:  cobra.ExactArgs(4),
		// Negative coordinates look like flags.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var v [4]float64
			for i, a := range args {
				f, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("argument %d: %q is not a number", i+1, a)
				}
				v[i] = f
			}

			d, err := geo.CheckedDistance(
				geo.Coordinates{Latitude: v[0], Longitude: v[1]},
				geo.Coordinates{Latitude: v[2], Longitude: v[3]},
			)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.0f m (%.2f km)\n", d, d/1000)
			return nil
		},
	}
}
