package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/studybuddy-app/studybuddy/internal/cli/formatter"
	"github.com/studybuddy-app/studybuddy/internal/domain"
)

func newNoteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage notes",
	}

	cmd.AddCommand(
		newNoteAddCmd(app),
		newNoteListCmd(app),
		newNoteShowCmd(app),
		newNoteSummarizeCmd(app),
		newNoteRemoveCmd(app),
	)

	return cmd
}

func newNoteAddCmd(app *App) *cobra.Command {
	var subject, content, file string

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Add a note",
		Long: `Add a note. Content comes from --content, --file, or stdin
when neither flag is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := content
			if body == "" && file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("reading note file: %w", err)
				}
				body = string(data)
			}
			if body == "" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				body = string(data)
			}
			if strings.TrimSpace(body) == "" {
				return fmt.Errorf("note content is empty")
			}

			n := &domain.Note{
				Title:   args[0],
				Subject: subject,
				Content: body,
			}
			if err := app.Notes.Create(context.Background(), n); err != nil {
				return err
			}
			fmt.Printf("Added note %q (%s)\n", n.Title, formatter.TruncID(n.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Subject the note belongs to")
	cmd.Flags().StringVar(&content, "content", "", "Note content")
	cmd.Flags().StringVar(&file, "file", "", "Read note content from a file")

	return cmd
}

func newNoteListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := app.Notes.List(context.Background())
			if err != nil {
				return err
			}
			if len(notes) == 0 {
				fmt.Println("No notes found.")
				return nil
			}

			headers := []string{"ID", "TITLE", "SUBJECT", "UPDATED", "SUMMARIZED"}
			rows := make([][]string, 0, len(notes))
			for _, n := range notes {
				summarized := formatter.Dim("no")
				if n.Summary != "" {
					summarized = formatter.StyleGreen.Render("yes")
				}
				rows = append(rows, []string{
					formatter.TruncID(n.ID),
					n.Title,
					formatter.Dim(n.Subject),
					formatter.RelativeDate(n.UpdatedAt),
					summarized,
				})
			}

			fmt.Print(formatter.RenderBox("Notes", formatter.RenderTable(headers, rows)))
			return nil
		},
	}
}

func newNoteShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Notes.GetByID(context.Background(), args[0])
			if err != nil {
				return err
			}

			var b strings.Builder
			if n.Subject != "" {
				b.WriteString(formatter.Dim("Subject: " + n.Subject))
				b.WriteString("\n\n")
			}
			b.WriteString(n.Content)
			if n.Summary != "" {
				b.WriteString("\n\n")
				b.WriteString(formatter.Header("Summary"))
				b.WriteString("\n")
				b.WriteString(n.Summary)
			}

			fmt.Print(formatter.RenderBox(n.Title, b.String()))
			return nil
		},
	}
}

func newNoteSummarizeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summarize ID",
		Short: "Summarize a note into key points and flashcards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			n, err := app.Notes.GetByID(ctx, args[0])
			if err != nil {
				return err
			}

			summary, err := app.Summarize.Summarize(ctx, n)
			if err != nil {
				return err
			}
			if err := app.Notes.SaveSummary(ctx, n.ID, summary.Summary); err != nil {
				return err
			}

			var b strings.Builder
			b.WriteString(summary.Summary)
			if len(summary.KeyPoints) > 0 {
				b.WriteString("\n\n")
				b.WriteString(formatter.Header("Key Points"))
				for _, p := range summary.KeyPoints {
					b.WriteString("\n- ")
					b.WriteString(p)
				}
			}
			if len(summary.Flashcards) > 0 {
				b.WriteString("\n\n")
				b.WriteString(formatter.Header("Flashcards"))
				for _, c := range summary.Flashcards {
					b.WriteString("\n")
					b.WriteString(formatter.Bold("Q: " + c.Question))
					b.WriteString("\n")
					b.WriteString("A: " + c.Answer)
				}
			}

			fmt.Print(formatter.RenderBox("Summary of "+n.Title, b.String()))
			return nil
		},
	}
}

func newNoteRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Notes.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed note %s\n", args[0])
			return nil
		},
	}
}
