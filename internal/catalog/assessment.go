// Package catalog holds the fixed Path-to-Excellence program definition:
// the maturity assessment item catalog and the six implementation-phase
// checklists. The catalog is part of the product, compiled in rather than
// loaded from user data.
package catalog

import "github.com/lucasferrand/pathex/internal/domain"

// assessmentItems is the maturity assessment catalog. IDs and activity
// codes are stable across releases; action identifiers are derived from
// item IDs, so renaming an item orphans its stored actions.
var assessmentItems = []domain.AssessmentItem{
	{ID: "1.1.1", ActivityCode: "1.1", MaxScore: 8, Category: domain.CategoryEquipmentRecords,
		Description: "A complete asset register exists covering all maintainable equipment, with nameplate data, location, and parent/child hierarchy."},
	{ID: "1.1.2", ActivityCode: "1.1", MaxScore: 4, Category: domain.CategoryEquipmentRecords,
		Description: "Equipment criticality rankings are documented and reviewed annually with operations."},
	{ID: "1.2.1", ActivityCode: "1.2", MaxScore: 4, Category: domain.CategoryEquipmentRecords,
		Description: "Equipment history (failures, repairs, costs) is captured against individual assets, not cost centers."},
	{ID: "1.2.2", ActivityCode: "1.2", MaxScore: 2, Category: domain.CategoryMetricsReporting,
		Description: "Drawings and technical documentation are indexed and retrievable at the job site."},
	{ID: "1.3.1", ActivityCode: "1.3", MaxScore: 8, Category: domain.CategoryWorkOrders,
		Description: "All maintenance work flows through work orders; emergency work is captured after the fact within 24 hours."},
	{ID: "1.3.2", ActivityCode: "1.3", MaxScore: 4, Category: domain.CategoryWorkOrders,
		Description: "Work orders capture labor hours, parts used, and failure codes at closeout."},
	{ID: "1.4.1", ActivityCode: "1.4", MaxScore: 8, Category: domain.CategoryPMStrategy,
		Description: "PM tasks are derived from failure modes for critical equipment, not generic OEM schedules."},
	{ID: "1.4.2", ActivityCode: "1.4", MaxScore: 4, Category: domain.CategoryPMStrategy,
		Description: "PM compliance is measured weekly and sustained above 95%."},
	{ID: "1.5.1", ActivityCode: "1.5", MaxScore: 8, Category: domain.CategoryPlanningScheduling,
		Description: "A dedicated planner prepares job plans with parts, tools, and permits before work is scheduled."},
	{ID: "1.5.2", ActivityCode: "1.5", MaxScore: 4, Category: domain.CategoryPlanningScheduling,
		Description: "A weekly schedule is published, agreed with operations, and schedule compliance is tracked."},
	{ID: "1.6.1", ActivityCode: "1.6", MaxScore: 8, Category: domain.CategoryStoreroom,
		Description: "Storeroom inventory records are accurate above 95%, verified by cycle counting."},
	{ID: "1.6.2", ActivityCode: "1.6", MaxScore: 4, Category: domain.CategoryStoreroom,
		Description: "Critical spares are identified, stocked to min/max levels, and linked to the equipment they protect."},
	{ID: "1.7.1", ActivityCode: "1.7", MaxScore: 4, Category: domain.CategoryFailureAnalysis,
		Description: "Repetitive failures are identified from history and formal root-cause analysis is performed on the worst offenders."},
	{ID: "1.7.2", ActivityCode: "1.7", MaxScore: 2, Category: domain.CategoryFailureAnalysis,
		Description: "Corrective actions from failure analyses are tracked to closure."},
	{ID: "1.8.1", ActivityCode: "1.8", MaxScore: 4, Category: domain.CategoryMetricsReporting,
		Description: "A balanced set of maintenance KPIs is reported monthly and reviewed with plant leadership."},
	{ID: "1.8.2", ActivityCode: "1.8", MaxScore: 2, Category: domain.CategoryTrainingDevelopment,
		Description: "Craft skills gaps are assessed and individual training plans are in place."},
}

// NewAssessmentItems returns a fresh unscored copy of the assessment
// catalog, ready to be scored and saved as a phase-0 deliverable.
func NewAssessmentItems() []domain.AssessmentItem {
	items := make([]domain.AssessmentItem, len(assessmentItems))
	copy(items, assessmentItems)
	return items
}
