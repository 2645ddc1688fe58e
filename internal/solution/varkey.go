package solution

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shiftsight/shiftsight-api/internal/models"
)

// The solver encodes decision variables as parenthesized tuple literals with
// a single-quoted ISO date, e.g. "(5, '2024-03-10', 2)". This textual form is
// a wire contract with the solver and with externally authored upload files;
// it must survive round trips bit-exact.

// ParseVariableKey decodes a solver variable key. Malformed keys report
// ok=false and are treated as unassigned by the caller, never as an error.
func ParseVariableKey(raw string) (models.AssignmentKey, bool) {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) < 2 || trimmed[0] != '(' || trimmed[len(trimmed)-1] != ')' {
		return models.AssignmentKey{}, false
	}

	parts := strings.Split(trimmed[1:len(trimmed)-1], ",")
	if len(parts) != 3 {
		return models.AssignmentKey{}, false
	}

	employeeID, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return models.AssignmentKey{}, false
	}

	quoted := strings.TrimSpace(parts[1])
	if len(quoted) < 2 || quoted[0] != '\'' || quoted[len(quoted)-1] != '\'' {
		return models.AssignmentKey{}, false
	}
	day, err := time.ParseInLocation(models.DayFormat, quoted[1:len(quoted)-1], time.UTC)
	if err != nil {
		return models.AssignmentKey{}, false
	}

	shiftID, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return models.AssignmentKey{}, false
	}

	return models.NewAssignmentKey(employeeID, day, shiftID), true
}

// FormatVariableKey reproduces the solver's textual key form.
func FormatVariableKey(key models.AssignmentKey) string {
	return fmt.Sprintf("(%d, '%s', %d)", key.EmployeeID, key.Day.Format(models.DayFormat), key.ShiftID)
}
