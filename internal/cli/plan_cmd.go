package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/studybuddy-app/studybuddy/internal/cli/formatter"
	"github.com/studybuddy-app/studybuddy/internal/contract"
	"github.com/studybuddy-app/studybuddy/internal/domain"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage study plans",
	}

	cmd.AddCommand(
		newPlanNewCmd(app),
		newPlanListCmd(app),
		newPlanShowCmd(app),
		newPlanCheckCmd(app),
		newPlanRemoveCmd(app),
	)

	return cmd
}

func newPlanNewCmd(app *App) *cobra.Command {
	var subject, exam, topics string
	var hours float64

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a study plan for an upcoming exam",
		Long: `Create a study plan for an upcoming exam.

Without flags in a terminal, walks through an interactive wizard.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if subject == "" && exam == "" {
				if app.IsInteractive != nil && app.IsInteractive() {
					return runPlanWizard(app)
				}
				return fmt.Errorf("--subject and --exam are required outside a terminal")
			}
			if subject == "" || exam == "" {
				return fmt.Errorf("--subject and --exam are both required")
			}

			examDate, err := time.ParseInLocation("2006-01-02", exam, time.Local)
			if err != nil {
				return fmt.Errorf("invalid exam date %q, expected YYYY-MM-DD", exam)
			}

			req := contract.NewPlanRequest(subject, examDate)
			if hours > 0 {
				req.HoursPerDay = hours
			}
			if topics != "" {
				req.Topics = splitFlagList(topics)
			}

			plan, err := app.Plans.CreateFromRequest(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Printf("Created a %d-day study plan for %s (%s)\n",
				len(plan.Days), plan.Subject, formatter.TruncID(plan.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Exam subject")
	cmd.Flags().StringVar(&exam, "exam", "", "Exam date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&hours, "hours", 2, "Study hours per day")
	cmd.Flags().StringVar(&topics, "topics", "", "Comma-separated topic list")

	return cmd
}

func splitFlagList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func newPlanListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List study plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := app.Plans.List(context.Background())
			if err != nil {
				return err
			}
			if len(plans) == 0 {
				fmt.Println("No study plans found.")
				return nil
			}

			headers := []string{"ID", "SUBJECT", "EXAM", "DAYS", "HOURS/DAY"}
			rows := make([][]string, 0, len(plans))
			for _, p := range plans {
				rows = append(rows, []string{
					formatter.TruncID(p.ID),
					p.Subject,
					formatter.HumanDate(p.ExamDate),
					fmt.Sprintf("%d", len(p.Days)),
					fmt.Sprintf("%g", p.HoursPerDay),
				})
			}

			fmt.Print(formatter.RenderBox("Study Plans", formatter.RenderTable(headers, rows)))
			return nil
		},
	}
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a study plan day by day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Plans.GetByID(context.Background(), args[0])
			if err != nil {
				return err
			}

			var b strings.Builder
			fmt.Fprintf(&b, "Exam on %s · %g hours per day", formatter.HumanDate(p.ExamDate), p.HoursPerDay)
			if p.Topics != "" {
				b.WriteString("\n")
				b.WriteString(formatter.Dim("Topics: " + p.Topics))
			}

			for _, day := range p.Days {
				b.WriteString("\n\n")
				b.WriteString(formatter.Header(fmt.Sprintf("Day %d — %s", day.DayNumber, formatter.HumanDate(day.Date))))
				for _, t := range day.Tasks {
					check := "○"
					if t.Completed {
						check = formatter.StyleGreen.Render("✓")
					}
					fmt.Fprintf(&b, "\n%s %s  %s  %s  %s",
						check,
						formatter.Dim(formatter.TruncID(t.ID)),
						t.Title,
						formatter.TaskTypeColor(t.TaskType).Render(string(t.TaskType)),
						formatter.Dim(formatter.FormatMinutes(t.DurationMinutes)),
					)
				}
			}

			fmt.Print(formatter.RenderBox("Study Plan: "+p.Subject, b.String()))
			return nil
		},
	}
}

func newPlanCheckCmd(app *App) *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "check TASK_ID",
		Short: "Mark a plan task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Plans.SetTaskCompleted(context.Background(), args[0], !undo); err != nil {
				return err
			}
			if undo {
				fmt.Printf("Unchecked plan task %s\n", args[0])
			} else {
				fmt.Printf("Checked off plan task %s\n", args[0])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "Mark the task as not completed instead")

	return cmd
}

func newPlanRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a study plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Plans.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed study plan %s\n", args[0])
			return nil
		},
	}
}

// renderPlanSummary is shared by the wizard after creation.
func renderPlanSummary(p *domain.StudyPlan) string {
	return fmt.Sprintf("Created a %d-day study plan for %s, exam on %s (%s)",
		len(p.Days), p.Subject, formatter.HumanDate(p.ExamDate), formatter.TruncID(p.ID))
}
