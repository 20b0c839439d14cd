package formatter

import (
	"fmt"
	"strings"

	"github.com/lucasferrand/pathex/internal/contract"
)

const statusProgressBarWidth = 10

// FormatStatus renders the program dashboard for one scope.
func FormatStatus(resp *contract.StatusResponse) string {
	var b strings.Builder

	if resp.Assessment != nil {
		a := resp.Assessment
		b.WriteString(fmt.Sprintf("%s  %s\n",
			Bold("Assessment"),
			RenderProgress(a.PercentageScore, statusProgressBarWidth)))
		b.WriteString(Dim(fmt.Sprintf("  %.1f of %d points, %d gaps, %d actions",
			a.TotalScore, a.MaxScore, a.GapCount, a.ActionCount)) + "\n\n")
	} else {
		b.WriteString(Dim("No assessment saved yet. Run `pathex assess wizard` to start.") + "\n\n")
	}

	headers := []string{"PHASE", "TITLE", "PROGRESS", "STATE", "CHECKLIST"}
	rows := make([][]string, 0, len(resp.Phases))
	for _, p := range resp.Phases {
		title := p.Title
		if p.Phase == resp.CurrentPhase {
			title = Bold(title + " ◂")
		} else {
			title = StyleFg.Render(title)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.Phase),
			title,
			RenderProgress(p.Progress, statusProgressBarWidth),
			StateIndicator(p.State),
			Dim(fmt.Sprintf("%d/%d", p.DoneCount, p.TotalCount)),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Overall"), RenderProgress(resp.Overall, 2*statusProgressBarWidth)))

	return RenderBox("Path to Excellence", b.String())
}
