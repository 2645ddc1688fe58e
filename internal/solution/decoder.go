package solution

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shiftsight/shiftsight-api/internal/models"
	appErrors "github.com/shiftsight/shiftsight-api/pkg/errors"
)

// rawPair decodes the wire form [day, "abbrev"] used by shift wishes and
// per-shift availability entries.
type rawPair struct {
	Day          int
	Abbreviation string
}

func (p *rawPair) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return fmt.Errorf("shift pair must be an array: %w", err)
	}
	if len(tuple) != 2 {
		return fmt.Errorf("shift pair must have exactly two elements, got %d", len(tuple))
	}
	if err := json.Unmarshal(tuple[0], &p.Day); err != nil {
		return fmt.Errorf("shift pair day: %w", err)
	}
	if err := json.Unmarshal(tuple[1], &p.Abbreviation); err != nil {
		return fmt.Errorf("shift pair abbreviation: %w", err)
	}
	return nil
}

type rawWishes struct {
	ShiftWishes  []rawPair `json:"shift_wishes"`
	DayOffWishes []int     `json:"day_off_wishes"`
}

type rawEmployee struct {
	ID                int        `json:"id"`
	Name              string     `json:"name"`
	Level             string     `json:"level"`
	TargetWorkingTime int        `json:"target_working_time"`
	Wishes            *rawWishes `json:"wishes"`
	VacationDays      []int      `json:"vacation_days"`
	ForbiddenDays     []int      `json:"forbidden_days"`
	VacationShifts    []rawPair  `json:"vacation_shifts"`
	ForbiddenShifts   []rawPair  `json:"forbidden_shifts"`
}

// rawDocument mirrors the solver's solution document. Pointer fields
// distinguish "absent" from "empty": only a fully absent top-level field is
// a schema error.
type rawDocument struct {
	Variables *map[string]int       `json:"variables"`
	Employees *[]rawEmployee        `json:"employees"`
	Shifts    *[]models.Shift       `json:"shifts"`
	Days      *[]string             `json:"days"`
	Stats     *models.SolutionStats `json:"stats"`
}

// Decode normalizes a raw solver document into a fully populated
// ScheduleSolution shell. Derived preference sets are left empty for the
// analysis passes. Missing per-employee sub-arrays default to empty slices;
// absent stats decode to zeroes. Only a missing top-level field (or a
// document that is not valid JSON) is rejected.
func Decode(raw []byte) (*models.ScheduleSolution, error) {
	var doc rawDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrMalformedSolution.Code, http.StatusBadRequest, "invalid solution file format")
	}

	for field, present := range map[string]bool{
		"variables": doc.Variables != nil,
		"employees": doc.Employees != nil,
		"shifts":    doc.Shifts != nil,
		"days":      doc.Days != nil,
	} {
		if !present {
			return nil, appErrors.Clone(appErrors.ErrMalformedSolution, fmt.Sprintf("invalid solution file format: missing %q", field))
		}
	}

	days := make([]time.Time, 0, len(*doc.Days))
	for _, rawDay := range *doc.Days {
		day, err := time.ParseInLocation(models.DayFormat, rawDay, time.UTC)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrMalformedSolution.Code, http.StatusBadRequest,
				fmt.Sprintf("invalid solution file format: day %q", rawDay))
		}
		days = append(days, day)
	}

	assignments := make(map[models.AssignmentKey]bool, len(*doc.Variables))
	for rawKey, value := range *doc.Variables {
		key, ok := ParseVariableKey(rawKey)
		if !ok {
			// Unrecognized keys count as unassigned rather than failing the
			// whole document.
			continue
		}
		assignments[key] = value != 0
	}

	employees := make([]models.Employee, 0, len(*doc.Employees))
	for _, raw := range *doc.Employees {
		employees = append(employees, normalizeEmployee(raw))
	}

	var stats models.SolutionStats
	if doc.Stats != nil {
		stats = *doc.Stats
	}

	return &models.ScheduleSolution{
		Employees:   employees,
		Shifts:      *doc.Shifts,
		Days:        days,
		Assignments: assignments,
		Stats:       stats,

		FulfilledDayOffCells:    make(map[models.CellKey]struct{}),
		FulfilledShiftWishCells: make(map[models.CellKey]struct{}),
		AllDayOffWishCells:      make(map[models.CellKey]struct{}),
		AllShiftWishColors:      make(map[models.CellKey][]string),
	}, nil
}

// normalizeEmployee converts the wire employee into the fully populated
// schedule view. Downstream passes never branch on optionality.
func normalizeEmployee(raw rawEmployee) models.Employee {
	emp := models.Employee{
		ID:                raw.ID,
		Name:              raw.Name,
		Level:             raw.Level,
		TargetWorkingTime: raw.TargetWorkingTime,
		Wishes: models.Wishes{
			DayOffWishes: []int{},
			ShiftWishes:  []models.ShiftRef{},
		},
		Availability: models.Availability{
			VacationDays:    normalizeDays(raw.VacationDays),
			ForbiddenDays:   normalizeDays(raw.ForbiddenDays),
			VacationShifts:  normalizePairs(raw.VacationShifts),
			ForbiddenShifts: normalizePairs(raw.ForbiddenShifts),
		},
	}

	if raw.Wishes != nil {
		emp.Wishes.DayOffWishes = normalizeDays(raw.Wishes.DayOffWishes)
		emp.Wishes.ShiftWishes = normalizePairs(raw.Wishes.ShiftWishes)
	}

	return emp
}

func normalizeDays(days []int) []int {
	if days == nil {
		return []int{}
	}
	return days
}

func normalizePairs(pairs []rawPair) []models.ShiftRef {
	refs := make([]models.ShiftRef, 0, len(pairs))
	for _, pair := range pairs {
		refs = append(refs, models.ShiftRef{Day: pair.Day, Abbreviation: pair.Abbreviation})
	}
	return refs
}
