package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasferrand/pathex/internal/cli/formatter"
	"github.com/lucasferrand/pathex/internal/domain"
)

// pathexHuhTheme returns a custom huh theme using the formatter palette.
func pathexHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateScore returns a validator for a 0..max score input. Blank is
// accepted and means "leave unchanged".
func validateScore(max int) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("enter a number between 0 and %d", max)
		}
		if v < 0 || v > float64(max) {
			return fmt.Errorf("score must be between 0 and %d", max)
		}
		return nil
	}
}

// runScoreWizard walks the assessor through every item, one form group
// per item, and writes the entered scores back into items.
func runScoreWizard(items []domain.AssessmentItem) error {
	scores := make([]string, len(items))
	comments := make([]string, len(items))
	for i, item := range items {
		scores[i] = strconv.FormatFloat(item.Achieved, 'f', -1, 64)
		comments[i] = item.Comments
	}

	groups := make([]*huh.Group, 0, len(items))
	for i, item := range items {
		title := fmt.Sprintf("%s — %s (max %d)", item.ID, item.Category, item.MaxScore)
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description(item.Description).
				Placeholder("0").
				Value(&scores[i]).
				Validate(validateScore(item.MaxScore)),
			huh.NewInput().
				Title("Comment (optional)").
				Value(&comments[i]),
		))
	}

	form := huh.NewForm(groups...).WithTheme(pathexHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return err
	}

	for i := range items {
		s := strings.TrimSpace(scores[i])
		if s != "" {
			if v, err := strconv.ParseFloat(s, 64); err == nil {
				items[i].Achieved = v
			}
		}
		items[i].Comments = comments[i]
	}
	return nil
}
