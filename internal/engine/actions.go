package engine

import (
	"fmt"
	"strconv"

	"github.com/lucasferrand/pathex/internal/domain"
)

// phaseByActivity routes an assessment item's activity code to the
// implementation phase where its corrective work belongs. Codes not in
// the table route to phase 1; the catalog is expected to evolve faster
// than this table.
var phaseByActivity = map[string]int{
	"1.1": 1,
	"1.2": 1,
	"1.3": 2,
	"1.4": 2,
	"1.5": 3,
	"1.7": 4,
	"1.6": 5,
	"1.8": 6,
}

// PhaseForActivity returns the target phase for an activity code,
// defaulting to phase 1 for unknown codes.
func PhaseForActivity(code string) int {
	if phase, ok := phaseByActivity[code]; ok {
		return phase
	}
	return domain.FirstPhase
}

// PriorityForMax derives an action's priority from the source item's
// maximum score alone. The size of the gap never matters: a high-ceiling
// item is high-stakes however close the assessor scored it.
func PriorityForMax(max int) domain.Priority {
	switch {
	case max >= 8:
		return domain.PriorityCritical
	case max >= 4:
		return domain.PriorityHigh
	default:
		return domain.PriorityMedium
	}
}

// actionTemplate renders one corrective-action sentence for a gap item.
type actionTemplate func(item domain.AssessmentItem, gap string) string

// templatesByCategory maps each practice area to its action template.
// Categories missing from the table fall through to genericAction.
var templatesByCategory = map[domain.Category]actionTemplate{
	domain.CategoryEquipmentRecords: func(item domain.AssessmentItem, gap string) string {
		return fmt.Sprintf("Complete and verify the equipment records covered by activity %s to close a %s-point maturity gap.", item.ActivityCode, gap)
	},
	domain.CategoryPMStrategy: func(item domain.AssessmentItem, gap string) string {
		return fmt.Sprintf("Review and rebuild the preventive maintenance strategy for activity %s; current practice is %s points short of target.", item.ActivityCode, gap)
	},
	domain.CategoryStoreroom: func(item domain.AssessmentItem, gap string) string {
		return fmt.Sprintf("Bring storeroom controls for activity %s up to standard to recover the %s-point shortfall in parts management.", item.ActivityCode, gap)
	},
	domain.CategoryWorkOrders: func(item domain.AssessmentItem, gap string) string {
		return fmt.Sprintf("Tighten work order discipline for activity %s; close the %s-point gap between current and required practice.", item.ActivityCode, gap)
	},
	domain.CategoryPlanningScheduling: func(item domain.AssessmentItem, gap string) string {
		return fmt.Sprintf("Establish formal planning and scheduling routines for activity %s to close a %s-point gap.", item.ActivityCode, gap)
	},
	domain.CategoryFailureAnalysis: func(item domain.AssessmentItem, gap string) string {
		return fmt.Sprintf("Institute root-cause failure analysis for activity %s; assessed practice is %s points below the maximum.", item.ActivityCode, gap)
	},
	domain.CategoryMetricsReporting: func(item domain.AssessmentItem, gap string) string {
		return fmt.Sprintf("Define and report the maintenance KPIs behind activity %s to eliminate a %s-point measurement gap.", item.ActivityCode, gap)
	},
	domain.CategoryTrainingDevelopment: func(item domain.AssessmentItem, gap string) string {
		return fmt.Sprintf("Develop the craft skills program behind activity %s; training maturity is %s points short of target.", item.ActivityCode, gap)
	},
}

const genericPrefixMax = 100

// genericAction is the mandatory default arm for categories outside the
// template table.
func genericAction(item domain.AssessmentItem, gap string) string {
	desc := item.Description
	if len(desc) > genericPrefixMax {
		desc = desc[:genericPrefixMax]
	}
	return fmt.Sprintf("Improve: %s (gap of %s points).", desc, gap)
}

// ActionID derives the deterministic identifier for the action generated
// from a source item. Regenerating from the same assessment yields the
// same IDs, which keeps UI keys stable and re-saves idempotent.
func ActionID(sourceItemID string) string {
	return "act-" + sourceItemID
}

// formatGap renders a gap value without trailing zeros ("8", "1.5").
func formatGap(gap float64) string {
	return strconv.FormatFloat(gap, 'f', -1, 64)
}

// GenerateAction converts one gap item into its improvement action.
func GenerateAction(item domain.AssessmentItem) domain.ImprovementAction {
	item.Clamp()
	gap := formatGap(item.Gap())

	text := genericAction(item, gap)
	if tmpl, ok := templatesByCategory[item.Category]; ok {
		text = tmpl(item, gap)
	}

	return domain.ImprovementAction{
		ID:           ActionID(item.ID),
		Phase:        PhaseForActivity(item.ActivityCode),
		Priority:     PriorityForMax(item.MaxScore),
		Action:       text,
		Rationale:    item.Description,
		SourceItemID: item.ID,
		Category:     item.Category,
	}
}

// GenerateActions runs the full gap-to-action pipeline over an assessment:
// detect gaps, generate one action per gap, and prioritize the result.
// The returned list replaces any previously stored list wholesale.
func GenerateActions(items []domain.AssessmentItem) []domain.ImprovementAction {
	gaps := DetectGaps(items)
	actions := make([]domain.ImprovementAction, 0, len(gaps))
	for _, item := range gaps {
		actions = append(actions, GenerateAction(item))
	}
	PrioritizeActions(actions)
	return actions
}
