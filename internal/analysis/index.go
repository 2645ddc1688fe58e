// Package analysis contains the read-only passes that turn a decoded solver
// solution into a verified, queryable schedule model. All passes are pure
// and synchronous; they never mutate their inputs beyond filling the derived
// sets on the solution they were built for.
package analysis

import (
	"time"

	"github.com/shiftsight/shiftsight-api/internal/models"
)

// AssignmentIndex answers "which shift(s), if any, is employee E assigned
// on day D" over the solver's sparse decision-variable map.
type AssignmentIndex struct {
	assignments map[models.AssignmentKey]bool
	shifts      []models.Shift
}

// NewAssignmentIndex builds an index over the decoded solution.
func NewAssignmentIndex(sol *models.ScheduleSolution) *AssignmentIndex {
	return &AssignmentIndex{
		assignments: sol.Assignments,
		shifts:      sol.Shifts,
	}
}

// IsAssigned reports whether the solver set the decision variable for the
// given employee, day and shift. Keys absent from the map are unassigned.
func (ix *AssignmentIndex) IsAssigned(employeeID int, day time.Time, shiftID int) bool {
	return ix.assignments[models.NewAssignmentKey(employeeID, day, shiftID)]
}

// AssignedShifts returns every shift assigned to the employee on the given
// day, iterating the shift catalog in catalog order so the result is
// deterministic regardless of map iteration order. Split-day scheduling
// means the result may contain zero, one, or multiple shifts; exclusivity
// is reported as encoded, never enforced.
func (ix *AssignmentIndex) AssignedShifts(employeeID int, day time.Time) []models.Shift {
	var assigned []models.Shift
	for _, shift := range ix.shifts {
		if ix.IsAssigned(employeeID, day, shift.ID) {
			assigned = append(assigned, shift)
		}
	}
	return assigned
}
