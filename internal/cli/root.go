package cli

import (
	"github.com/spf13/cobra"
	"github.com/studybuddy-app/studybuddy/internal/intelligence"
	"github.com/studybuddy-app/studybuddy/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Profile   service.ProfileService
	Classes   service.ClassService
	Tasks     service.TaskService
	Notes     service.NoteService
	Sessions  service.SessionService
	Schedule  service.ScheduleService
	Plans     service.PlanService
	Chat      intelligence.ChatService
	Summarize intelligence.SummarizeService

	// IsInteractive reports whether stdin is a terminal, gating the chat REPL.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "studybuddy" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "studybuddy",
		Short: "Your personal study assistant",
	}

	root.AddCommand(
		newChatCmd(app),
		newTaskCmd(app),
		newClassCmd(app),
		newNoteCmd(app),
		newSessionCmd(app),
		newScheduleCmd(app),
		newPlanCmd(app),
		newProfileCmd(app),
	)

	return root
}
