package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/studybuddy-app/studybuddy/internal/cli/formatter"
	"github.com/studybuddy-app/studybuddy/internal/domain"
	"github.com/studybuddy-app/studybuddy/internal/nlp"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Manage your weekly schedule",
	}

	cmd.AddCommand(
		newScheduleAddCmd(app),
		newScheduleListCmd(app),
		newScheduleRemoveCmd(app),
	)

	return cmd
}

func newScheduleAddCmd(app *App) *cobra.Command {
	var day, timeSlot, itemType string
	var noNotify bool

	cmd := &cobra.Command{
		Use:   "add SUBJECT",
		Short: "Add a schedule item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			canonical, ok := nlp.CanonicalWeekday(day)
			if !ok {
				return fmt.Errorf("invalid day %q, expected a weekday name", day)
			}

			item := &domain.ScheduleItem{
				Subject:       args[0],
				DayOfWeek:     canonical,
				TimeSlot:      timeSlot,
				Type:          domain.ScheduleItemType(itemType),
				Notifications: !noNotify,
			}
			if err := app.Schedule.Create(context.Background(), item); err != nil {
				return err
			}
			fmt.Printf("Scheduled %q on %s (%s)\n", item.Subject, item.DayOfWeek, formatter.TruncID(item.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Day of the week")
	cmd.Flags().StringVar(&timeSlot, "time", "", "Time of day, e.g. \"2:00 PM\"")
	cmd.Flags().StringVar(&itemType, "type", "reminder", "Item type: class, exam, or reminder")
	cmd.Flags().BoolVar(&noNotify, "no-notify", false, "Disable notifications for this item")
	_ = cmd.MarkFlagRequired("day")

	return cmd
}

func newScheduleListCmd(app *App) *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List schedule items",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var items []*domain.ScheduleItem
			var err error
			if day != "" {
				items, err = app.Schedule.ListByDay(ctx, day)
			} else {
				items, err = app.Schedule.List(ctx)
			}
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println("Nothing scheduled.")
				return nil
			}

			headers := []string{"ID", "SUBJECT", "DAY", "TIME", "TYPE", "NOTIFY"}
			rows := make([][]string, 0, len(items))
			for _, item := range items {
				notify := formatter.Dim("off")
				if item.Notifications {
					notify = formatter.StyleGreen.Render("on")
				}
				timeSlot := item.TimeSlot
				if timeSlot == "" {
					timeSlot = formatter.Dim("—")
				}
				rows = append(rows, []string{
					formatter.TruncID(item.ID),
					item.Subject,
					item.DayOfWeek,
					timeSlot,
					string(item.Type),
					notify,
				})
			}

			fmt.Print(formatter.RenderBox("Schedule", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Only show one day of the week")

	return cmd
}

func newScheduleRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a schedule item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Schedule.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed schedule item %s\n", args[0])
			return nil
		},
	}
}
