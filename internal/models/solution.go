package models

import (
	"fmt"
	"time"
)

// DayFormat is the wire format for schedule dates.
const DayFormat = "2006-01-02"

// TruncateDay reduces a timestamp to day precision in UTC. Every producer
// and consumer of cell keys must go through this to avoid timezone drift.
func TruncateDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// CellKey identifies an (employee, day) cell of the schedule grid. It is a
// comparable value type so it can back genuine map lookups; the string form
// is only used at the JSON boundary.
type CellKey struct {
	EmployeeID int
	Day        time.Time
}

// NewCellKey builds a day-precision cell key.
func NewCellKey(employeeID int, day time.Time) CellKey {
	return CellKey{EmployeeID: employeeID, Day: TruncateDay(day)}
}

// String renders the render-time lookup form "<employeeId>-<YYYY-MM-DD>".
func (k CellKey) String() string {
	return fmt.Sprintf("%d-%s", k.EmployeeID, k.Day.Format(DayFormat))
}

// AssignmentKey identifies a single solver decision variable.
type AssignmentKey struct {
	EmployeeID int
	Day        time.Time
	ShiftID    int
}

// NewAssignmentKey builds a day-precision assignment key.
func NewAssignmentKey(employeeID int, day time.Time, shiftID int) AssignmentKey {
	return AssignmentKey{EmployeeID: employeeID, Day: TruncateDay(day), ShiftID: shiftID}
}

// SolutionStats carries the solver's quality counters. Absent stats decode
// to the zero value.
type SolutionStats struct {
	ForwardRotationViolations  int     `json:"forward_rotation_violations"`
	ConsecutiveWorkingDaysGt5  int     `json:"consecutive_working_days_gt_5"`
	NoFreeWeekend              int     `json:"no_free_weekend"`
	ConsecutiveNightShiftsGt3  int     `json:"consecutive_night_shifts_gt_3"`
	TotalOvertimeHours         float64 `json:"total_overtime_hours"`
	NoFreeDaysAroundWeekend    int     `json:"no_free_days_around_weekend"`
	NotFreeAfterNightShift     int     `json:"not_free_after_night_shift"`
	ViolatedWishTotal          int     `json:"violated_wish_total"`
}

// ScheduleSolution is the fully decoded and annotated model of one solver
// run. It is built once per document and treated as immutable afterwards.
type ScheduleSolution struct {
	Employees   []Employee
	Shifts      []Shift
	Days        []time.Time
	Assignments map[AssignmentKey]bool
	Stats       SolutionStats

	// Derived sets, filled by the preference analyzer. A cell may appear in
	// AllDayOffWishCells without appearing in FulfilledDayOffCells.
	FulfilledDayOffCells    map[CellKey]struct{}
	FulfilledShiftWishCells map[CellKey]struct{}
	AllDayOffWishCells      map[CellKey]struct{}
	AllShiftWishColors      map[CellKey][]string
}

// ShiftByAbbreviation resolves a catalog shift by its abbreviation.
func (s *ScheduleSolution) ShiftByAbbreviation(abbrev string) (Shift, bool) {
	for _, shift := range s.Shifts {
		if shift.Abbreviation == abbrev {
			return shift, true
		}
	}
	return Shift{}, false
}
