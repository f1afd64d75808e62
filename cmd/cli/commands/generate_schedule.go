package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brigata/staffplan/pkg/core/services"
)

// GenerateScheduleCmd creates the generateSchedule command
func GenerateScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generateSchedule <venue_id> <from> <to>",
		Short: "Generate draft shift assignments for a date range",
		Long:  "Run the assignment engine over the venue's coverage templates and save the resulting draft shifts",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			venueID, from, to := args[0], args[1], args[2]
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			app.Logger.Debug("generateSchedule command",
				zap.String("venue_id", venueID),
				zap.String("from", from),
				zap.String("to", to),
				zap.Bool("dry_run", dryRun))

			result, err := services.GenerateSchedule(app.Ctx, app.Database, app.Cfg, app.Logger,
				venueID, from, to, dryRun)
			if err != nil {
				return fmt.Errorf("schedule generation failed: %w", err)
			}

			fmt.Printf("\nSchedule Generation Results\n\n")
			fmt.Printf("Venue:  %s\n", result.VenueID)
			fmt.Printf("Range:  %s to %s\n", result.From, result.To)
			if dryRun {
				fmt.Printf("Mode:   DRY RUN (not saved)\n")
			} else if result.Saved {
				fmt.Printf("Mode:   drafts saved to database\n")
			} else {
				fmt.Printf("Mode:   nothing to save\n")
			}
			fmt.Println()

			fmt.Printf("Tasks generated:     %d\n", result.Stats.TasksGenerated)
			fmt.Printf("Fixed shifts placed: %d\n", result.Stats.FixedShiftsPlaced)
			fmt.Printf("Tasks assigned:      %d\n", result.Stats.TasksAssigned)
			fmt.Printf("Already covered:     %d\n", result.Stats.PreCoveredTasks)
			if result.Stats.MalformedTimes > 0 {
				fmt.Printf("Malformed times:     %d (slots skipped)\n", result.Stats.MalformedTimes)
			}
			fmt.Println()

			if len(result.Assignments) > 0 {
				fmt.Printf("Assignments (%d):\n", len(result.Assignments))
				for _, a := range result.Assignments {
					fmt.Printf("  %s  %s-%s  %-16s %s\n", a.Date, a.Start, a.End, a.Station, a.WorkerID)
				}
				fmt.Println()
			}

			if len(result.Unassigned) > 0 {
				fmt.Printf("Unassigned (%d):\n", len(result.Unassigned))
				for _, u := range result.Unassigned {
					fmt.Printf("  %s  %s-%s  %-16s %s\n", u.Date, u.Start, u.End, u.Station, u.Reason)
				}
				fmt.Println()
			}

			if dryRun {
				fmt.Println("This was a dry run. Use without --dry-run to save drafts.")
			}

			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Run without saving to database")

	return cmd
}
