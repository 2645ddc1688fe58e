package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftsight/shiftsight-api/internal/models"
)

func TestAssignmentIndexIsAssigned(t *testing.T) {
	sol := newTestSolution([]models.Employee{testEmployee(5, "Erika")}, 2)
	assign(sol, 5, march(10), 1)

	index := NewAssignmentIndex(sol)

	assert.True(t, index.IsAssigned(5, march(10), 1))
	assert.False(t, index.IsAssigned(5, march(10), 2))
	assert.False(t, index.IsAssigned(5, march(11), 1))
	assert.False(t, index.IsAssigned(6, march(10), 1))
}

func TestAssignmentIndexNormalizesDayPrecision(t *testing.T) {
	sol := newTestSolution([]models.Employee{testEmployee(5, "Erika")}, 1)
	assign(sol, 5, march(10), 1)

	index := NewAssignmentIndex(sol)

	// Lookups with sub-day precision or a non-UTC zone hit the same cell.
	afternoon := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)
	assert.True(t, index.IsAssigned(5, afternoon, 1))

	berlin := time.FixedZone("CET", 3600)
	assert.True(t, index.IsAssigned(5, time.Date(2024, 3, 10, 8, 0, 0, 0, berlin), 1))
}

func TestAssignedShiftsFollowsCatalogOrder(t *testing.T) {
	sol := newTestSolution([]models.Employee{testEmployee(5, "Erika")}, 1)
	// Insert in reverse catalog order; map iteration order must not matter.
	assign(sol, 5, march(10), 3)
	assign(sol, 5, march(10), 1)

	index := NewAssignmentIndex(sol)

	shifts := index.AssignedShifts(5, march(10))
	require.Len(t, shifts, 2)
	assert.Equal(t, "F", shifts[0].Abbreviation)
	assert.Equal(t, "N", shifts[1].Abbreviation)
}

func TestAssignedShiftsEmpty(t *testing.T) {
	sol := newTestSolution([]models.Employee{testEmployee(5, "Erika")}, 1)
	index := NewAssignmentIndex(sol)
	assert.Empty(t, index.AssignedShifts(5, march(10)))
}

func TestAssignedShiftsReportsSplitDays(t *testing.T) {
	sol := newTestSolution([]models.Employee{testEmployee(5, "Erika")}, 1)
	assign(sol, 5, march(10), 1)
	assign(sol, 5, march(10), 2)
	assign(sol, 5, march(10), 3)

	index := NewAssignmentIndex(sol)

	// Exclusivity is not enforced; all three assignments are reported.
	assert.Len(t, index.AssignedShifts(5, march(10)), 3)
}
