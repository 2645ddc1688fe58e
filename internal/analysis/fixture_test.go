package analysis

import (
	"time"

	"github.com/shiftsight/shiftsight-api/internal/models"
)

// march builds a day-precision UTC date in March 2024.
func march(day int) time.Time {
	return time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC)
}

var testShifts = []models.Shift{
	{ID: 1, Name: "Früh", Abbreviation: "F", Color: "#2b6cb0", Duration: 480},
	{ID: 2, Name: "Spät", Abbreviation: "S", Color: "#c05621", Duration: 480},
	{ID: 3, Name: "Nacht", Abbreviation: "N", Color: "#553c9a", Duration: 600},
}

// newTestSolution builds a decoded solution shell over the given employees,
// days 10..(10+numDays-1) of March 2024 and the shared shift catalog.
func newTestSolution(employees []models.Employee, numDays int) *models.ScheduleSolution {
	days := make([]time.Time, 0, numDays)
	for i := 0; i < numDays; i++ {
		days = append(days, march(10+i))
	}
	return &models.ScheduleSolution{
		Employees:   employees,
		Shifts:      testShifts,
		Days:        days,
		Assignments: make(map[models.AssignmentKey]bool),

		FulfilledDayOffCells:    make(map[models.CellKey]struct{}),
		FulfilledShiftWishCells: make(map[models.CellKey]struct{}),
		AllDayOffWishCells:      make(map[models.CellKey]struct{}),
		AllShiftWishColors:      make(map[models.CellKey][]string),
	}
}

func assign(sol *models.ScheduleSolution, employeeID int, day time.Time, shiftID int) {
	sol.Assignments[models.NewAssignmentKey(employeeID, day, shiftID)] = true
}

func emptyWishes() models.Wishes {
	return models.Wishes{DayOffWishes: []int{}, ShiftWishes: []models.ShiftRef{}}
}

func emptyAvailability() models.Availability {
	return models.Availability{
		VacationDays:    []int{},
		ForbiddenDays:   []int{},
		VacationShifts:  []models.ShiftRef{},
		ForbiddenShifts: []models.ShiftRef{},
	}
}

func testEmployee(id int, name string) models.Employee {
	return models.Employee{
		ID:                id,
		Name:              name,
		Level:             "examiniert",
		TargetWorkingTime: 9600,
		Wishes:            emptyWishes(),
		Availability:      emptyAvailability(),
	}
}
