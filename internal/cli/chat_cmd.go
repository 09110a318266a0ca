package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/studybuddy-app/studybuddy/internal/contract"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat [message]",
		Short: "Talk to your study assistant",
		Long: `Talk to your study assistant in plain English.

With a message argument, answers once and exits. Without arguments in a
terminal, starts an interactive chat session.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return runChatOnce(app, strings.Join(args, " "))
			}
			if app.IsInteractive == nil || !app.IsInteractive() {
				return fmt.Errorf("no message given and stdin is not a terminal; try: studybuddy chat \"add a task to finish my essay\"")
			}
			return runChatSession(app)
		},
	}
}

func runChatOnce(app *App, message string) error {
	resp, err := app.Chat.HandleMessage(context.Background(), contract.ChatRequest{Message: message})
	if err != nil {
		return err
	}
	fmt.Println(resp.Text)
	return nil
}

func runChatSession(app *App) error {
	model := newChatModel(app)
	p := tea.NewProgram(model)
	_, err := p.Run()
	return err
}
