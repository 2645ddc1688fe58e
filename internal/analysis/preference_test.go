package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftsight/shiftsight-api/internal/models"
)

func annotated(sol *models.ScheduleSolution, policy ShiftWishPolicy) *models.ScheduleSolution {
	NewPreferenceAnalyzer(policy).Annotate(sol, NewAssignmentIndex(sol))
	return sol
}

func TestDayOffWishFulfilledWhenFree(t *testing.T) {
	emp := testEmployee(5, "Erika")
	emp.Wishes.DayOffWishes = []int{10}
	sol := newTestSolution([]models.Employee{emp}, 2)

	annotated(sol, ShiftWishAvoid)

	cell := models.NewCellKey(5, march(10))
	assert.Contains(t, sol.AllDayOffWishCells, cell)
	assert.Contains(t, sol.FulfilledDayOffCells, cell)
	assert.Equal(t, "5-2024-03-10", cell.String())
}

func TestDayOffWishViolatedWhenAssigned(t *testing.T) {
	emp := testEmployee(5, "Erika")
	emp.Wishes.DayOffWishes = []int{10}
	sol := newTestSolution([]models.Employee{emp}, 2)
	assign(sol, 5, march(10), 1)

	annotated(sol, ShiftWishAvoid)

	cell := models.NewCellKey(5, march(10))
	// Presence in the "all" set does not imply fulfillment.
	assert.Contains(t, sol.AllDayOffWishCells, cell)
	assert.NotContains(t, sol.FulfilledDayOffCells, cell)
}

func TestFulfilledDayOffNeverCoexistsWithAssignment(t *testing.T) {
	emp := testEmployee(5, "Erika")
	emp.Wishes.DayOffWishes = []int{10, 11}
	sol := newTestSolution([]models.Employee{emp}, 2)
	assign(sol, 5, march(10), 2)

	annotated(sol, ShiftWishAvoid)

	index := NewAssignmentIndex(sol)
	for cell := range sol.FulfilledDayOffCells {
		assert.Empty(t, index.AssignedShifts(cell.EmployeeID, cell.Day))
	}
	assert.Contains(t, sol.FulfilledDayOffCells, models.NewCellKey(5, march(11)))
}

func TestShiftWishColorsAccumulate(t *testing.T) {
	emp := testEmployee(5, "Erika")
	emp.Wishes.ShiftWishes = []models.ShiftRef{
		{Day: 10, Abbreviation: "F"},
		{Day: 10, Abbreviation: "N"},
	}
	sol := newTestSolution([]models.Employee{emp}, 1)

	annotated(sol, ShiftWishAvoid)

	cell := models.NewCellKey(5, march(10))
	require.Contains(t, sol.AllShiftWishColors, cell)
	assert.Equal(t, []string{"#2b6cb0", "#553c9a"}, sol.AllShiftWishColors[cell])
}

func TestShiftWishUnknownAbbreviationDropsColorOnly(t *testing.T) {
	emp := testEmployee(5, "Erika")
	emp.Wishes.ShiftWishes = []models.ShiftRef{{Day: 10, Abbreviation: "XX"}}
	sol := newTestSolution([]models.Employee{emp}, 1)

	annotated(sol, ShiftWishAvoid)

	cell := models.NewCellKey(5, march(10))
	assert.NotContains(t, sol.AllShiftWishColors, cell)
	// An unknown shift can never be assigned, so under avoid polarity the
	// wish still counts as fulfilled.
	assert.Contains(t, sol.FulfilledShiftWishCells, cell)
}

func TestShiftWishAvoidPolarity(t *testing.T) {
	emp := testEmployee(5, "Erika")
	emp.Wishes.ShiftWishes = []models.ShiftRef{{Day: 10, Abbreviation: "F"}}

	t.Run("fulfilled when not assigned", func(t *testing.T) {
		sol := newTestSolution([]models.Employee{emp}, 1)
		annotated(sol, ShiftWishAvoid)
		assert.Contains(t, sol.FulfilledShiftWishCells, models.NewCellKey(5, march(10)))
	})

	t.Run("violated when assigned", func(t *testing.T) {
		sol := newTestSolution([]models.Employee{emp}, 1)
		assign(sol, 5, march(10), 1)
		annotated(sol, ShiftWishAvoid)
		assert.NotContains(t, sol.FulfilledShiftWishCells, models.NewCellKey(5, march(10)))
	})
}

func TestShiftWishGrantPolarity(t *testing.T) {
	emp := testEmployee(5, "Erika")
	emp.Wishes.ShiftWishes = []models.ShiftRef{{Day: 10, Abbreviation: "F"}}

	t.Run("fulfilled when assigned", func(t *testing.T) {
		sol := newTestSolution([]models.Employee{emp}, 1)
		assign(sol, 5, march(10), 1)
		annotated(sol, ShiftWishGrant)
		assert.Contains(t, sol.FulfilledShiftWishCells, models.NewCellKey(5, march(10)))
	})

	t.Run("violated when not assigned", func(t *testing.T) {
		sol := newTestSolution([]models.Employee{emp}, 1)
		annotated(sol, ShiftWishGrant)
		assert.NotContains(t, sol.FulfilledShiftWishCells, models.NewCellKey(5, march(10)))
	})
}

func TestShiftWishNeverFulfilledOnDayOffWishDay(t *testing.T) {
	// A day can carry both wish categories; shift-wish fulfillment defers to
	// the day-off wish to avoid double counting, under either polarity.
	for _, policy := range []ShiftWishPolicy{ShiftWishAvoid, ShiftWishGrant} {
		emp := testEmployee(5, "Erika")
		emp.Wishes.DayOffWishes = []int{10}
		emp.Wishes.ShiftWishes = []models.ShiftRef{{Day: 10, Abbreviation: "F"}}
		sol := newTestSolution([]models.Employee{emp}, 1)
		if policy == ShiftWishGrant {
			assign(sol, 5, march(10), 1)
		}

		annotated(sol, policy)

		cell := models.NewCellKey(5, march(10))
		assert.NotContains(t, sol.FulfilledShiftWishCells, cell, "policy %s", policy)
		// The "all" presence sets ignore the no-double-count rule.
		assert.Contains(t, sol.AllDayOffWishCells, cell)
		assert.Contains(t, sol.AllShiftWishColors, cell)
	}
}

func TestWishDaysMatchCalendarDayNotIndex(t *testing.T) {
	// Day-of-month 11 is the second entry of the day catalog; a wish for 11
	// must match the calendar day, not index 11.
	emp := testEmployee(5, "Erika")
	emp.Wishes.DayOffWishes = []int{11}
	sol := newTestSolution([]models.Employee{emp}, 2)

	annotated(sol, ShiftWishAvoid)

	assert.NotContains(t, sol.AllDayOffWishCells, models.NewCellKey(5, march(10)))
	assert.Contains(t, sol.AllDayOffWishCells, models.NewCellKey(5, march(11)))
}

func TestParseShiftWishPolicy(t *testing.T) {
	assert.Equal(t, ShiftWishGrant, ParseShiftWishPolicy("grant"))
	assert.Equal(t, ShiftWishAvoid, ParseShiftWishPolicy("avoid"))
	assert.Equal(t, ShiftWishAvoid, ParseShiftWishPolicy(""))
	assert.Equal(t, ShiftWishAvoid, ParseShiftWishPolicy("bogus"))
}
