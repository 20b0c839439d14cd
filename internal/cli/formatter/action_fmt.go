package formatter

import (
	"fmt"
	"strings"

	"github.com/lucasferrand/pathex/internal/domain"
)

// FormatActions renders the prioritized improvement action list.
func FormatActions(actions []domain.ImprovementAction) string {
	if len(actions) == 0 {
		return Dim("No improvement actions. Every assessed item is at its maximum score.") + "\n"
	}

	headers := []string{"PRIORITY", "PHASE", "ACTION", "SOURCE"}
	rows := make([][]string, 0, len(actions))
	for _, a := range actions {
		rows = append(rows, []string{
			PriorityLabel(a.Priority),
			fmt.Sprintf("%d", a.Phase),
			StyleFg.Render(a.Action),
			Dim(a.SourceItemID),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString(Dim(fmt.Sprintf("\n%d actions", len(actions))) + "\n")
	return b.String()
}

// FormatChecklist renders one phase's checklist with done markers.
func FormatChecklist(items []domain.ChecklistItem, done map[string]bool) string {
	var b strings.Builder
	for _, item := range items {
		mark := StyleDim.Render("[ ]")
		desc := StyleFg.Render(item.Description)
		if done[item.ID] {
			mark = StyleGreen.Render("[x]")
			desc = Dim(item.Description)
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", mark, Dim(item.ID), desc))
		if item.Deliverable != "" {
			b.WriteString(Dim("      deliverable: "+item.Deliverable) + "\n")
		}
	}
	return b.String()
}
