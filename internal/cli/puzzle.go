package cli

import (
	"github.com/spf13/cobra"
)

func newPuzzleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "puzzle",
		Short: "Daily puzzle commands",
	}

	cmd.AddCommand(newPuzzleTodayCmd())
	cmd.AddCommand(newPuzzleYesterdayCmd())

	return cmd
}

func newPuzzleTodayCmd() *cobra.Command {
	var duplicates bool

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Fetch today's puzzle stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/puzzle/today"
			if duplicates {
				path += "?duplicates=true"
			}

			var result Puzzle
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&duplicates, "duplicates", false, "Request the variant allowing repeated symbols")

	return cmd
}

func newPuzzleYesterdayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "yesterday",
		Short: "Fetch yesterday's puzzle including the solution",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Puzzle
			if err := client.Get("/api/v1/puzzle/yesterday", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
