package catalog

import "github.com/lucasferrand/pathex/internal/domain"

// phaseTitles names the six implementation phases in program order.
var phaseTitles = [domain.LastPhase + 1]string{
	domain.PhaseAssessment: "Maturity Assessment",
	1:                      "Foundations & Equipment Records",
	2:                      "Work Control",
	3:                      "Planning & Scheduling",
	4:                      "Reliability Engineering",
	5:                      "Materials Management",
	6:                      "Performance Management",
}

// phaseChecklists is the per-phase implementation checklist catalog,
// indexed by phase number. Index 0 is empty: the assessment stage has no
// checklist.
var phaseChecklists = [domain.LastPhase + 1][]domain.ChecklistItem{
	1: {
		{ID: "p1-register", Description: "Build the asset register for all maintainable equipment", Deliverable: "Verified asset register export", Form: domain.FormAssetRegister},
		{ID: "p1-hierarchy", Description: "Establish the parent/child equipment hierarchy", Deliverable: "Hierarchy diagram signed off by operations"},
		{ID: "p1-criticality", Description: "Rank equipment criticality with operations", Deliverable: "Criticality matrix", Form: domain.FormCriticality},
		{ID: "p1-nameplate", Description: "Capture nameplate data for critical equipment", Deliverable: "Completed nameplate data sheets"},
		{ID: "p1-docs", Description: "Index drawings and technical documentation", Deliverable: "Document index with retrieval locations"},
	},
	2: {
		{ID: "p2-flow", Description: "Define the work order flow from request to closeout", Deliverable: "Work flow map"},
		{ID: "p2-backlog", Description: "Build and scrub the work order backlog", Deliverable: "Prioritized backlog report"},
		{ID: "p2-codes", Description: "Define failure and closeout coding standards", Deliverable: "Coding standard document"},
		{ID: "p2-emergency", Description: "Establish the emergency work capture rule", Deliverable: "Emergency work procedure"},
		{ID: "p2-training", Description: "Train supervisors and crafts on the work order system", Deliverable: "Training attendance record"},
	},
	3: {
		{ID: "p3-planner", Description: "Appoint and train a dedicated maintenance planner", Deliverable: "Planner role description and training record"},
		{ID: "p3-jobplans", Description: "Build job plan templates for recurring work", Deliverable: "Job plan library"},
		{ID: "p3-schedule", Description: "Publish the weekly maintenance schedule", Deliverable: "First four weekly schedules"},
		{ID: "p3-coordination", Description: "Hold the weekly scheduling meeting with operations", Deliverable: "Meeting cadence agreement"},
		{ID: "p3-compliance", Description: "Measure schedule compliance weekly", Deliverable: "Schedule compliance trend"},
	},
	4: {
		{ID: "p4-pmreview", Description: "Review PM tasks against failure modes for critical equipment", Deliverable: "PM review workbook", Form: domain.FormPMTaskBuilder},
		{ID: "p4-rca", Description: "Stand up the root-cause analysis process", Deliverable: "RCA procedure and first completed study", Form: domain.FormRootCauseStudy},
		{ID: "p4-badactors", Description: "Identify bad-actor equipment from history", Deliverable: "Bad-actor list with loss estimates"},
		{ID: "p4-cbm", Description: "Introduce condition monitoring on critical rotating equipment", Deliverable: "Condition monitoring routes"},
		{ID: "p4-actions", Description: "Track reliability corrective actions to closure", Deliverable: "Action tracker"},
	},
	5: {
		{ID: "p5-inventory", Description: "Cycle count the storeroom to verify record accuracy", Deliverable: "Cycle count accuracy report", Form: domain.FormStockAnalysis},
		{ID: "p5-spares", Description: "Identify critical spares and link them to equipment", Deliverable: "Critical spares list"},
		{ID: "p5-minmax", Description: "Set min/max stocking levels from usage history", Deliverable: "Min/max analysis"},
		{ID: "p5-kitting", Description: "Introduce parts kitting for planned work", Deliverable: "Kitting procedure"},
		{ID: "p5-obsolete", Description: "Purge obsolete stock and recover value", Deliverable: "Obsolescence review"},
	},
	6: {
		{ID: "p6-kpis", Description: "Define the maintenance KPI set and targets", Deliverable: "KPI definition sheet", Form: domain.FormKPIDashboard},
		{ID: "p6-reporting", Description: "Automate the monthly maintenance report", Deliverable: "First three monthly reports"},
		{ID: "p6-reviews", Description: "Hold monthly performance reviews with leadership", Deliverable: "Review meeting cadence"},
		{ID: "p6-skills", Description: "Assess craft skills and build training plans", Deliverable: "Skills matrix and training plans"},
		{ID: "p6-sustain", Description: "Write the sustaining plan for the excellence program", Deliverable: "Sustaining plan signed by plant manager"},
	},
}

// PhaseChecklist returns the checklist catalog for an implementation
// phase, or nil for phase 0 and out-of-range values.
func PhaseChecklist(phase int) []domain.ChecklistItem {
	if !domain.ValidPhase(phase) {
		return nil
	}
	return phaseChecklists[phase]
}

// PhaseTitle returns the display title of a program phase, including
// phase 0. Unknown phases yield an empty string.
func PhaseTitle(phase int) string {
	if phase < 0 || phase > domain.LastPhase {
		return ""
	}
	return phaseTitles[phase]
}
