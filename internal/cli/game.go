package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game submission commands",
	}

	cmd.AddCommand(newGameSubmitCmd())

	return cmd
}

func newGameSubmitCmd() *cobra.Command {
	var (
		playerID string
		date     string
		won      bool
		guesses  int
		timeMs   int
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a completed game",
		RunE: func(cmd *cobra.Command, args []string) error {
			if playerID == "" {
				return fmt.Errorf("--player is required")
			}
			if guesses <= 0 {
				return fmt.Errorf("--guesses must be positive")
			}
			if date == "" {
				date = time.Now().UTC().Format("2006-01-02")
			}

			req := map[string]any{
				"player_id": playerID,
				"date":      date,
				"won":       won,
				"guesses":   guesses,
				"time_ms":   timeMs,
			}

			var result SubmitResult
			if err := client.Post("/api/v1/game/submit", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&playerID, "player", "", "Player ID (required)")
	cmd.Flags().StringVar(&date, "date", "", "Puzzle date YYYY-MM-DD (default: today)")
	cmd.Flags().BoolVar(&won, "won", false, "Whether the puzzle was solved")
	cmd.Flags().IntVar(&guesses, "guesses", 0, "Number of guesses used (required)")
	cmd.Flags().IntVar(&timeMs, "time", 0, "Completion time in milliseconds")
	_ = cmd.MarkFlagRequired("player")
	_ = cmd.MarkFlagRequired("guesses")

	return cmd
}
