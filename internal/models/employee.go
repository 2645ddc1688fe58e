package models

// Wishes holds the preferences an employee stated for the planning period.
// Day values are 1-based days of month, matched against the calendar day of
// each schedule date, never against an index into the day catalog.
type Wishes struct {
	DayOffWishes []int      `json:"day_off_wishes"`
	ShiftWishes  []ShiftRef `json:"shift_wishes"`
}

// Availability holds hard unavailability declared by an employee. The
// analysis layer only surfaces these for display; assignments that collide
// with them are reported as-is.
type Availability struct {
	VacationDays    []int      `json:"vacation_days"`
	ForbiddenDays   []int      `json:"forbidden_days"`
	VacationShifts  []ShiftRef `json:"vacation_shifts"`
	ForbiddenShifts []ShiftRef `json:"forbidden_shifts"`
}

// Employee is the schedule-view representation of an employee. All list
// fields are normalized to empty slices by the decoder, never nil.
type Employee struct {
	ID                int          `json:"id"`
	Name              string       `json:"name"`
	Level             string       `json:"level"`
	TargetWorkingTime int          `json:"target_working_time"` // minutes
	Wishes            Wishes       `json:"wishes"`
	Availability      Availability `json:"availability"`
}
