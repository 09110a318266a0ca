package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/studybuddy-app/studybuddy/internal/cli/formatter"
	"github.com/studybuddy-app/studybuddy/internal/domain"
	"github.com/studybuddy-app/studybuddy/internal/nlp"
)

func newClassCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "class",
		Short: "Manage classes",
	}

	cmd.AddCommand(
		newClassAddCmd(app),
		newClassListCmd(app),
		newClassRemoveCmd(app),
	)

	return cmd
}

func newClassAddCmd(app *App) *cobra.Command {
	var instructor, location, day, timeSlot string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &domain.Class{
				Name:        args[0],
				Instructor:  instructor,
				Location:    location,
				MeetingTime: timeSlot,
			}
			if day != "" {
				canonical, ok := nlp.CanonicalWeekday(day)
				if !ok {
					return fmt.Errorf("invalid day %q, expected a weekday name", day)
				}
				c.MeetingDay = canonical
			}

			if err := app.Classes.Create(context.Background(), c); err != nil {
				return err
			}
			fmt.Printf("Added class %q (%s)\n", c.Name, formatter.TruncID(c.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&instructor, "instructor", "", "Instructor name")
	cmd.Flags().StringVar(&location, "location", "", "Room or building")
	cmd.Flags().StringVar(&day, "day", "", "Meeting day of the week")
	cmd.Flags().StringVar(&timeSlot, "time", "", "Meeting time, e.g. \"2:00 PM\"")

	return cmd
}

func newClassListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List classes",
		RunE: func(cmd *cobra.Command, args []string) error {
			classes, err := app.Classes.List(context.Background())
			if err != nil {
				return err
			}
			if len(classes) == 0 {
				fmt.Println("No classes found.")
				return nil
			}

			headers := []string{"ID", "NAME", "INSTRUCTOR", "MEETS", "LOCATION"}
			rows := make([][]string, 0, len(classes))
			for _, c := range classes {
				meets := formatter.Dim("—")
				if c.MeetingDay != "" {
					meets = c.MeetingDay
					if c.MeetingTime != "" {
						meets += " " + c.MeetingTime
					}
				}
				rows = append(rows, []string{
					formatter.TruncID(c.ID),
					c.Name,
					formatter.Dim(c.Instructor),
					meets,
					formatter.Dim(c.Location),
				})
			}

			fmt.Print(formatter.RenderBox("Classes", formatter.RenderTable(headers, rows)))
			return nil
		},
	}
}

func newClassRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Classes.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed class %s\n", args[0])
			return nil
		},
	}
}
