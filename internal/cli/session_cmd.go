package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/studybuddy-app/studybuddy/internal/cli/formatter"
	"github.com/studybuddy-app/studybuddy/internal/domain"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage study sessions",
	}

	cmd.AddCommand(
		newSessionLogCmd(app),
		newSessionListCmd(app),
		newSessionRemoveCmd(app),
	)

	return cmd
}

func newSessionLogCmd(app *App) *cobra.Command {
	var minutes int
	var date, notes string

	cmd := &cobra.Command{
		Use:   "log SUBJECT",
		Short: "Log a study session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &domain.StudySession{
				Subject:         args[0],
				DurationMinutes: minutes,
				Notes:           notes,
			}
			if date != "" {
				d, err := time.ParseInLocation("2006-01-02", date, time.Local)
				if err != nil {
					return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
				}
				s.SessionDate = d
			}

			if err := app.Sessions.Log(context.Background(), s); err != nil {
				return err
			}
			fmt.Printf("Logged %s of %s (%s)\n",
				formatter.FormatMinutes(s.DurationMinutes), s.Subject, formatter.TruncID(s.ID))
			return nil
		},
	}

	cmd.Flags().IntVar(&minutes, "minutes", 60, "Session duration in minutes")
	cmd.Flags().StringVar(&date, "date", "", "Session date (YYYY-MM-DD), default today")
	cmd.Flags().StringVar(&notes, "notes", "", "What was covered")

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent study sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Sessions.ListRecent(context.Background(), days)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Println("No sessions found.")
				return nil
			}

			total := 0
			headers := []string{"ID", "SUBJECT", "DATE", "DURATION", "NOTES"}
			rows := make([][]string, 0, len(sessions))
			for _, s := range sessions {
				total += s.DurationMinutes
				notePreview := s.Notes
				if len(notePreview) > 40 {
					notePreview = notePreview[:37] + "..."
				}
				rows = append(rows, []string{
					formatter.TruncID(s.ID),
					s.Subject,
					formatter.HumanDate(s.SessionDate),
					formatter.FormatMinutes(s.DurationMinutes),
					formatter.Dim(notePreview),
				})
			}

			content := formatter.RenderTable(headers, rows) +
				"\n" + formatter.Dim(fmt.Sprintf("Total: %s over the last %d days", formatter.FormatMinutes(total), days))
			fmt.Print(formatter.RenderBox("Study Sessions", content))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Number of recent days to show")

	return cmd
}

func newSessionRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a study session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sessions.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed session %s\n", args[0])
			return nil
		},
	}
}
