package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brigata/staffplan/pkg/core/services"
)

// PreviewDemandCmd creates the previewDemand command
func PreviewDemandCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "previewDemand <venue_id> <from> <to>",
		Short: "List the shift tasks the coverage templates demand, without assigning",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			venueID, from, to := args[0], args[1], args[2]

			app.Logger.Debug("previewDemand command",
				zap.String("venue_id", venueID),
				zap.String("from", from),
				zap.String("to", to))

			result, err := services.PreviewDemand(app.Ctx, app.Database, app.Logger,
				venueID, from, to)
			if err != nil {
				return fmt.Errorf("demand preview failed: %w", err)
			}

			fmt.Printf("\nDemand Preview\n\n")
			fmt.Printf("Venue:  %s\n", result.VenueID)
			fmt.Printf("Range:  %s to %s\n\n", result.From, result.To)

			if len(result.Tasks) == 0 {
				fmt.Println("No shift tasks in range.")
				return nil
			}

			fmt.Printf("Tasks (%d):\n", len(result.Tasks))
			for _, task := range result.Tasks {
				fmt.Printf("  %s  %s-%s  %-16s %s\n", task.Date, task.Start, task.End, task.Station, task.Period)
			}
			fmt.Println()

			return nil
		},
	}
}
