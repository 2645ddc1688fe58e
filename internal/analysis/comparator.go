package analysis

import (
	"strconv"
	"strings"

	"github.com/shiftsight/shiftsight-api/internal/models"
)

// ScheduleRef tags a decoded solution with the identifiers distinguishing
// multiple solver runs for the same period.
type ScheduleRef struct {
	ScheduleID string
	Seed       int64
	Solution   *models.ScheduleSolution
}

// CompareSchedules groups corresponding employees across N solutions for
// side-by-side comparison. Rows keep first-encountered-employee order across
// the solutions scanned in sequence, and entries inside a row keep the input
// order of the solutions. Employees absent from a solution are omitted from
// that solution's slot, not padded.
//
// The optional filter is a case-insensitive substring matched against name,
// level and id. It is evaluated exactly once per employee id, against the
// employee's representation in the first solution that contains them: an
// employee missing from the first solution is still matched using the later
// occurrence's fields. An empty input yields an empty result, not an error.
func CompareSchedules(refs []ScheduleRef, filter string) []models.ComparisonRow {
	rows := []models.ComparisonRow{}
	byEmployee := make(map[int]int) // employee id -> index into rows
	rejected := make(map[int]struct{})

	needle := strings.ToLower(strings.TrimSpace(filter))

	for _, ref := range refs {
		if ref.Solution == nil {
			continue
		}
		for _, emp := range ref.Solution.Employees {
			if _, skip := rejected[emp.ID]; skip {
				continue
			}
			idx, seen := byEmployee[emp.ID]
			if !seen {
				if needle != "" && !matchesFilter(emp, needle) {
					rejected[emp.ID] = struct{}{}
					continue
				}
				rows = append(rows, models.ComparisonRow{EmployeeID: emp.ID})
				idx = len(rows) - 1
				byEmployee[emp.ID] = idx
			}
			rows[idx].Entries = append(rows[idx].Entries, models.ComparisonEntry{
				ScheduleID: ref.ScheduleID,
				Seed:       ref.Seed,
				Employee:   emp,
				Stats:      ref.Solution.Stats,
			})
		}
	}

	return rows
}

func matchesFilter(emp models.Employee, needle string) bool {
	if strings.Contains(strings.ToLower(emp.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(emp.Level), needle) {
		return true
	}
	return strings.Contains(strconv.Itoa(emp.ID), needle)
}
