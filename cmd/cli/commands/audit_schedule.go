package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brigata/staffplan/pkg/core/services"
)

// AuditScheduleCmd creates the auditSchedule command
func AuditScheduleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "auditSchedule <venue_id> <from> <to>",
		Short: "Report coverage slots no stored shift covers",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			venueID, from, to := args[0], args[1], args[2]

			app.Logger.Debug("auditSchedule command",
				zap.String("venue_id", venueID),
				zap.String("from", from),
				zap.String("to", to))

			result, err := services.AuditSchedule(app.Ctx, app.Database, app.Cfg, app.Logger,
				venueID, from, to)
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			fmt.Printf("\nCoverage Audit Results\n\n")
			fmt.Printf("Venue:  %s\n", result.VenueID)
			fmt.Printf("Range:  %s to %s\n\n", result.From, result.To)

			if len(result.Uncovered) == 0 {
				fmt.Println("All coverage slots are staffed.")
				return nil
			}

			fmt.Printf("Uncovered slots (%d):\n", len(result.Uncovered))
			for _, u := range result.Uncovered {
				fmt.Printf("  %s  %s-%s  %s\n", u.Date, u.Start, u.End, u.Station)
			}
			fmt.Println()

			return nil
		},
	}
}
