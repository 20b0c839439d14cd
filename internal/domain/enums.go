package domain

import (
	"fmt"
	"strings"
)

// Priority classifies the urgency of a generated improvement action.
// It is derived from the source item's maximum score alone, never from
// the size of the gap.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
)

// Weight returns a numeric sort weight (lower = more urgent).
func (p Priority) Weight() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	default:
		return 3
	}
}

// ParsePriority parses a string into a Priority, case-insensitive.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "critical":
		return PriorityCritical, nil
	case "high":
		return PriorityHigh, nil
	case "medium":
		return PriorityMedium, nil
	default:
		return PriorityMedium, fmt.Errorf("invalid priority: %q", s)
	}
}

// PhaseState is the derived completion state of a single phase.
type PhaseState string

const (
	PhaseNotStarted      PhaseState = "not_started"
	PhaseInProgress      PhaseState = "in_progress"
	PhaseReadyToComplete PhaseState = "ready_to_complete"
	PhaseCompleted       PhaseState = "completed"
)

// Category labels an assessment item with one of the maintenance practice
// areas the action templates are keyed by.
type Category string

const (
	CategoryEquipmentRecords    Category = "Equipment Records"
	CategoryPMStrategy          Category = "PM Strategy"
	CategoryStoreroom           Category = "Storeroom Management"
	CategoryWorkOrders          Category = "Work Order Management"
	CategoryPlanningScheduling  Category = "Planning & Scheduling"
	CategoryFailureAnalysis     Category = "Failure Analysis"
	CategoryMetricsReporting    Category = "Metrics & Reporting"
	CategoryTrainingDevelopment Category = "Training & Development"
)

// FormType identifies the guided form associated with a checklist item,
// if any. Items without an associated form use FormNone.
type FormType string

const (
	FormNone           FormType = ""
	FormAssetRegister  FormType = "asset_register"
	FormCriticality    FormType = "criticality_ranking"
	FormPMTaskBuilder  FormType = "pm_task_builder"
	FormStockAnalysis  FormType = "stock_analysis"
	FormKPIDashboard   FormType = "kpi_dashboard"
	FormRootCauseStudy FormType = "root_cause_study"
)

type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientArchived ClientStatus = "archived"
)

const (
	// PhaseAssessment is the zeroth program stage: the scored maturity
	// assessment that feeds action generation. It never counts toward
	// program-wide completion.
	PhaseAssessment = 0

	// FirstPhase and LastPhase bound the six implementation phases.
	FirstPhase = 1
	LastPhase  = 6
)

// ValidPhase reports whether n names an implementation phase (1-6).
func ValidPhase(n int) bool {
	return n >= FirstPhase && n <= LastPhase
}
