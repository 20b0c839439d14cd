package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasferrand/pathex/internal/catalog"
	"github.com/lucasferrand/pathex/internal/cli/formatter"
	"github.com/lucasferrand/pathex/internal/domain"
)

// checklistKeys are the key bindings of the interactive checklist.
type checklistKeys struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

var defaultChecklistKeys = checklistKeys{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// toggleSavedMsg reports the persisted result of one toggle.
type toggleSavedMsg struct {
	phase *domain.PhaseProgress
	err   error
}

// checklistModel is a minimal full-screen toggler for one phase's
// checklist. Every toggle is saved through the progress service before
// the view reflects it.
type checklistModel struct {
	app   *App
	scope domain.Scope
	phase int
	items []domain.ChecklistItem
	state domain.PhaseProgress

	cursor int
	saving bool
	err    error
	keys   checklistKeys
}

func newChecklistModel(app *App, scope domain.Scope, phase int, state domain.PhaseProgress) *checklistModel {
	if state.Checklist == nil {
		state.Checklist = make(map[string]bool)
	}
	return &checklistModel{
		app:   app,
		scope: scope,
		phase: phase,
		items: catalog.PhaseChecklist(phase),
		state: state,
		keys:  defaultChecklistKeys,
	}
}

func (m *checklistModel) Init() tea.Cmd { return nil }

func (m *checklistModel) toggleCurrent() tea.Cmd {
	item := m.items[m.cursor]
	done := !m.state.Checklist[item.ID]
	app, scope, phase := m.app, m.scope, m.phase
	return func() tea.Msg {
		pp, err := app.Progress.Toggle(context.Background(), scope, phase, item.ID, done)
		return toggleSavedMsg{phase: pp, err: err}
	}
}

func (m *checklistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case toggleSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.state = *msg.phase
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			if !m.saving && len(m.items) > 0 {
				m.saving = true
				return m, m.toggleCurrent()
			}
		}
	}
	return m, nil
}

func (m *checklistModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header(fmt.Sprintf("Phase %d — %s", m.phase, catalog.PhaseTitle(m.phase))) + "\n")
	b.WriteString(formatter.RenderProgress(m.state.Progress, 20) + "\n\n")

	for i, item := range m.items {
		mark := "[ ]"
		if m.state.Checklist[item.ID] {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, item.Description)
		if i == m.cursor {
			line = formatter.StyleHeader.Render("> " + line)
		} else {
			line = "  " + formatter.StyleFg.Render(line)
		}
		b.WriteString(line + "\n")
	}

	if m.err != nil {
		b.WriteString("\n" + formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	}
	b.WriteString("\n" + formatter.Dim("space toggle · ↑/↓ move · q quit") + "\n")
	return b.String()
}

// runChecklistView loads the phase state and runs the toggler until quit.
func runChecklistView(ctx context.Context, app *App, scope domain.Scope, phase int) error {
	prog, err := app.Progress.Get(ctx, scope)
	if err != nil {
		return err
	}

	model := newChecklistModel(app, scope, phase, *prog.Phase(phase))
	_, err = tea.NewProgram(model).Run()
	return err
}
