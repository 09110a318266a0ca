package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/studybuddy-app/studybuddy/internal/cli/formatter"
	"github.com/studybuddy-app/studybuddy/internal/contract"
)

// studyHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func studyHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// runPlanWizard collects plan inputs through a huh form, then creates the
// plan.
func runPlanWizard(app *App) error {
	var subject, exam, hours, topics string
	hours = "2"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Subject").
				Placeholder("Biology").
				Value(&subject).
				Validate(validateNonEmpty("subject")),
			huh.NewInput().
				Title("Exam date (YYYY-MM-DD)").
				Placeholder("2026-09-15").
				Value(&exam).
				Validate(validateFutureDate),
			huh.NewInput().
				Title("Study hours per day").
				Placeholder("2").
				Value(&hours).
				Validate(validatePositiveFloat),
			huh.NewInput().
				Title("Topics (comma-separated, optional)").
				Placeholder("cells, photosynthesis, genetics").
				Value(&topics),
		),
	).WithTheme(studyHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	examDate, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(exam), time.Local)
	if err != nil {
		return fmt.Errorf("invalid exam date %q", exam)
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(hours), 64)
	if err != nil {
		return fmt.Errorf("invalid hours %q", hours)
	}

	req := contract.NewPlanRequest(strings.TrimSpace(subject), examDate)
	req.HoursPerDay = h
	if topics != "" {
		req.Topics = splitFlagList(topics)
	}

	plan, err := app.Plans.CreateFromRequest(context.Background(), req)
	if err != nil {
		return err
	}

	fmt.Println(renderPlanSummary(plan))
	return nil
}

func validateNonEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateFutureDate(s string) error {
	d, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(s), time.Local)
	if err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	if !d.After(time.Now()) {
		return fmt.Errorf("must be in the future")
	}
	return nil
}

func validatePositiveFloat(s string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f <= 0 {
		return fmt.Errorf("expected a positive number")
	}
	return nil
}
