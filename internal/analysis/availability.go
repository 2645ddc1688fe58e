package analysis

import (
	"time"

	"github.com/shiftsight/shiftsight-api/internal/models"
)

// AvailabilityAnalyzer derives display-only unavailability flags from the
// vacation and forbidden constraints an employee declared. Assignments that
// collide with these are never rejected or altered here; the rendering layer
// only highlights them.
type AvailabilityAnalyzer struct{}

// NewAvailabilityAnalyzer constructs an availability analyzer.
func NewAvailabilityAnalyzer() *AvailabilityAnalyzer {
	return &AvailabilityAnalyzer{}
}

// IsUnavailable reports whether the employee is blocked for the whole day,
// i.e. the day of month is a vacation day or a forbidden day.
func (a *AvailabilityAnalyzer) IsUnavailable(emp models.Employee, day time.Time) bool {
	dom := day.Day()
	return containsDay(emp.Availability.VacationDays, dom) ||
		containsDay(emp.Availability.ForbiddenDays, dom)
}

// IsShiftUnavailable reports whether the employee is blocked for a specific
// shift on the given day.
func (a *AvailabilityAnalyzer) IsShiftUnavailable(emp models.Employee, day time.Time, shift models.Shift) bool {
	dom := day.Day()
	return containsRef(emp.Availability.VacationShifts, dom, shift.Abbreviation) ||
		containsRef(emp.Availability.ForbiddenShifts, dom, shift.Abbreviation)
}

func containsDay(days []int, dom int) bool {
	for _, d := range days {
		if d == dom {
			return true
		}
	}
	return false
}

func containsRef(refs []models.ShiftRef, dom int, abbrev string) bool {
	for _, ref := range refs {
		if ref.Day == dom && ref.Abbreviation == abbrev {
			return true
		}
	}
	return false
}
