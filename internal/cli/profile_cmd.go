package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/studybuddy-app/studybuddy/internal/cli/formatter"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update your profile",
	}

	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileSetCmd(app),
	)

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profile.Get(context.Background())
			if err != nil {
				return err
			}

			name := p.Name
			if name == "" {
				name = formatter.Dim("(not set)")
			}
			school := p.School
			if school == "" {
				school = formatter.Dim("(not set)")
			}

			content := fmt.Sprintf("Name:   %s\nSchool: %s\n\nDefault session:  %s\nDefault study load: %g hours/day",
				name, school, formatter.FormatMinutes(p.DefaultSessionMin), p.DefaultHoursPerDay)
			fmt.Print(formatter.RenderBox("Profile", content))
			return nil
		},
	}
}

func newProfileSetCmd(app *App) *cobra.Command {
	var name, school string
	var sessionMin int
	var hoursPerDay float64

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Profile.Get(ctx)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				p.Name = name
			}
			if cmd.Flags().Changed("school") {
				p.School = school
			}
			if cmd.Flags().Changed("session-minutes") {
				p.DefaultSessionMin = sessionMin
			}
			if cmd.Flags().Changed("hours-per-day") {
				p.DefaultHoursPerDay = hoursPerDay
			}

			if err := app.Profile.Update(ctx, p); err != nil {
				return err
			}
			fmt.Println("Profile updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Your name")
	cmd.Flags().StringVar(&school, "school", "", "Your school")
	cmd.Flags().IntVar(&sessionMin, "session-minutes", 0, "Default study session length in minutes")
	cmd.Flags().Float64Var(&hoursPerDay, "hours-per-day", 0, "Default study hours per day for plans")

	return cmd
}
