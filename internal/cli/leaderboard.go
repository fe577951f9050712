package cli

import (
	"github.com/spf13/cobra"
)

func newLeaderboardCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "leaderboard [kind]",
		Short: "Show a leaderboard (daily, weekly, all-time)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := "daily"
			if len(args) > 0 {
				kind = args[0]
			}

			path := "/api/v1/leaderboard/" + kind
			if date != "" {
				path += "?date=" + date
			}

			var result Leaderboard
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Board date YYYY-MM-DD (default: today)")

	return cmd
}
