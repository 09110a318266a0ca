package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/studybuddy-app/studybuddy/internal/cli/formatter"
	"github.com/studybuddy-app/studybuddy/internal/domain"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var subject, due, priority string
	var hours float64

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := &domain.Task{
				Title:          args[0],
				Subject:        subject,
				Priority:       domain.Priority(priority),
				EstimatedHours: hours,
			}
			if due != "" {
				d, err := time.ParseInLocation("2006-01-02", due, time.Local)
				if err != nil {
					return fmt.Errorf("invalid due date %q, expected YYYY-MM-DD", due)
				}
				t.DueDate = &d
			}

			if err := app.Tasks.Create(context.Background(), t); err != nil {
				return err
			}
			fmt.Printf("Added task %q (%s)\n", t.Title, formatter.TruncID(t.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Subject or class the task belongs to")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&priority, "priority", "medium", "Priority: low, medium, or high")
	cmd.Flags().Float64Var(&hours, "hours", 1, "Estimated effort in hours")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.List(context.Background(), all)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println("No tasks found.")
				return nil
			}

			today := time.Now()
			headers := []string{"ID", "TITLE", "SUBJECT", "DUE", "PRIORITY", "STATUS"}
			rows := make([][]string, 0, len(tasks))
			for _, t := range tasks {
				due := formatter.Dim("—")
				if t.DueDate != nil {
					due = formatter.RelativeDateFrom(*t.DueDate, today)
					if t.Overdue(today) {
						due = formatter.StyleRed.Render(due)
					}
				}
				rows = append(rows, []string{
					formatter.TruncID(t.ID),
					t.Title,
					formatter.Dim(t.Subject),
					due,
					formatter.PriorityBadge(t.Priority),
					formatter.StatusBadge(t.Status),
				})
			}

			fmt.Print(formatter.RenderBox("Tasks", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include completed tasks")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Mark a task as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.MarkDone(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Marked task %s as done\n", args[0])
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed task %s\n", args[0])
			return nil
		},
	}
}
