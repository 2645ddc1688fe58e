package models

// ComparisonEntry is one schedule's view of an employee inside a grouped
// comparison row.
type ComparisonEntry struct {
	ScheduleID string        `json:"schedule_id"`
	Seed       int64         `json:"seed"`
	Employee   Employee      `json:"employee"`
	Stats      SolutionStats `json:"stats"`
}

// ComparisonRow groups the per-schedule representations of one employee id.
// Entries keep the input order of the compared schedules; schedules that do
// not contain the employee contribute no entry.
type ComparisonRow struct {
	EmployeeID int               `json:"employee_id"`
	Entries    []ComparisonEntry `json:"entries"`
}
