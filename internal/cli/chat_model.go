package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studybuddy-app/studybuddy/internal/cli/formatter"
	"github.com/studybuddy-app/studybuddy/internal/contract"
)

// chatModel is the interactive chat REPL. Each submitted line runs through
// the assistant pipeline and the reply is appended to the transcript.
type chatModel struct {
	app      *App
	input    textinput.Model
	messages []string
	quitting bool
}

func newChatModel(app *App) *chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	return &chatModel{
		app: app,
		input: ti,
		messages: []string{
			formatter.Bold("StudyBuddy") + formatter.Dim(" — type a message, or \"quit\" to leave."),
		},
	}
}

// chatReplyMsg carries the assistant's reply back into the update loop.
type chatReplyMsg struct {
	resp *contract.ChatResponse
	err  error
}

func (m *chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line == "" {
				return m, nil
			}
			switch strings.ToLower(line) {
			case "quit", "exit", "/quit", "/exit", "/q":
				m.quitting = true
				return m, tea.Quit
			}
			m.messages = append(m.messages, formatter.Dim("You: ")+line)
			return m, m.submit(line)
		}

	case chatReplyMsg:
		if msg.err != nil {
			m.messages = append(m.messages, formatter.StyleRed.Render("Error: "+msg.err.Error()))
			return m, nil
		}
		m.messages = append(m.messages, renderChatReply(msg.resp))
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	for _, msg := range m.messages {
		b.WriteString(msg)
		b.WriteString("\n")
	}
	prompt := formatter.StylePurple.Render("you") + formatter.Dim("> ")
	b.WriteString(prompt)
	b.WriteString(m.input.View())
	return b.String()
}

func (m *chatModel) submit(line string) tea.Cmd {
	return func() tea.Msg {
		resp, err := m.app.Chat.HandleMessage(context.Background(), contract.ChatRequest{Message: line})
		return chatReplyMsg{resp: resp, err: err}
	}
}

func renderChatReply(resp *contract.ChatResponse) string {
	label := formatter.StyleBlue.Render("buddy: ")
	text := resp.Text
	if resp.Created != nil {
		text += formatter.Dim("  [" + string(resp.Created.Type) + " " + formatter.TruncID(resp.Created.ID) + "]")
	}
	return label + text
}
