package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/athlog/internal/cli/formatter"
	"github.com/alexanderramin/athlog/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func athlogHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
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

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// promptBodyweight asks for the current bodyweight in display units and
// returns the canonical kg value. The second return is false when the user
// left the field blank to skip.
func promptBodyweight(units domain.Units) (float64, bool, error) {
	var raw string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Current bodyweight (%s, blank to skip)", units.WeightAbbr())).
				Placeholder("70").
				Value(&raw).
				Validate(validateOptionalWeight),
		),
	).WithTheme(athlogHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return 0, false, err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid bodyweight %q: %w", raw, err)
	}
	return weightToKg(v, units), true, nil
}

// promptPBEnrollment runs the one-time question that decides whether
// personal-best notifications are shown at all.
func promptPBEnrollment() (bool, error) {
	var enabled bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show personal-best notifications after workouts?").
				Affirmative("Yes").
				Negative("No").
				Value(&enabled),
		),
	).WithTheme(athlogHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return false, err
	}
	return enabled, nil
}

func validateOptionalWeight(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}
