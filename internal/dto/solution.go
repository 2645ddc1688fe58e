package dto

import (
	"github.com/shiftsight/shiftsight-api/internal/analysis"
	"github.com/shiftsight/shiftsight-api/internal/models"
)

// AnalyzedSolution is the annotated, read-only view model produced from one
// solver run. Cell keys are rendered in their string form
// "<employeeId>-<YYYY-MM-DD>" so the payload survives JSON round trips
// through the cache unchanged.
type AnalyzedSolution struct {
	ID        string               `json:"id"`
	Days      []string             `json:"days"`
	Shifts    []models.Shift       `json:"shifts"`
	Employees []models.Employee    `json:"employees"`
	Stats     models.SolutionStats `json:"stats"`

	// Assignments maps non-empty cells to the abbreviations of the shifts
	// assigned there, in shift-catalog order.
	Assignments map[string][]string `json:"assignments"`

	AllDayOffWishCells      []string            `json:"all_day_off_wish_cells"`
	FulfilledDayOffCells    []string            `json:"fulfilled_day_off_cells"`
	FulfilledShiftWishCells []string            `json:"fulfilled_shift_wish_cells"`
	ShiftWishColors         map[string][]string `json:"shift_wish_colors"`

	// UnavailableCells lists employee/day cells blocked by vacation or
	// forbidden days; UnavailableShifts maps cells to the abbreviations of
	// individually blocked shifts. Display only.
	UnavailableCells  []string            `json:"unavailable_cells"`
	UnavailableShifts map[string][]string `json:"unavailable_shifts"`

	Hours []analysis.EmployeeHours `json:"hours"`

	ShiftWishPolicy string `json:"shift_wish_policy"`
}

// EmployeeHoursResponse wraps one employee's workload stats.
type EmployeeHoursResponse struct {
	SolutionID string                 `json:"solution_id"`
	Hours      analysis.EmployeeHours `json:"hours"`
}
