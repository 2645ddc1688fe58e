package analysis

import (
	"github.com/shiftsight/shiftsight-api/internal/models"
)

// ShiftWishPolicy selects the fulfillment polarity of shift wishes. The
// business intent behind shift wishes is ambiguous in the source material,
// so both readings stay swappable behind this flag.
type ShiftWishPolicy string

const (
	// ShiftWishAvoid treats a shift wish as "wish to avoid": fulfilled when
	// none of the wished shifts is assigned on that day.
	ShiftWishAvoid ShiftWishPolicy = "avoid"
	// ShiftWishGrant treats a shift wish as "wish to work": fulfilled when
	// at least one wished shift is assigned on that day.
	ShiftWishGrant ShiftWishPolicy = "grant"
)

// ParseShiftWishPolicy maps a config string onto a policy, defaulting to
// ShiftWishAvoid for unknown values.
func ParseShiftWishPolicy(raw string) ShiftWishPolicy {
	if ShiftWishPolicy(raw) == ShiftWishGrant {
		return ShiftWishGrant
	}
	return ShiftWishAvoid
}

// PreferenceAnalyzer derives, for every employee/day cell, whether a
// day-off or shift wish exists and whether it was honored.
type PreferenceAnalyzer struct {
	policy ShiftWishPolicy
}

// NewPreferenceAnalyzer constructs an analyzer with the given policy.
func NewPreferenceAnalyzer(policy ShiftWishPolicy) *PreferenceAnalyzer {
	if policy == "" {
		policy = ShiftWishAvoid
	}
	return &PreferenceAnalyzer{policy: policy}
}

// Policy exposes the active fulfillment polarity.
func (a *PreferenceAnalyzer) Policy() ShiftWishPolicy {
	return a.policy
}

// Annotate fills the solution's derived preference sets. Wish days are
// 1-based days of month matched against the calendar day of each schedule
// date. Day-off and shift-wish fulfillment are computed independently; the
// only coupling is that a cell never counts as a fulfilled shift wish when
// the day is also a day-off wish, to avoid double counting across the two
// wish categories.
func (a *PreferenceAnalyzer) Annotate(sol *models.ScheduleSolution, index *AssignmentIndex) {
	for _, emp := range sol.Employees {
		dayOffWishes := make(map[int]struct{}, len(emp.Wishes.DayOffWishes))
		for _, dom := range emp.Wishes.DayOffWishes {
			dayOffWishes[dom] = struct{}{}
		}

		for _, day := range sol.Days {
			dom := day.Day()
			cell := models.NewCellKey(emp.ID, day)

			_, isDayOffWish := dayOffWishes[dom]
			if isDayOffWish {
				sol.AllDayOffWishCells[cell] = struct{}{}
				if len(index.AssignedShifts(emp.ID, day)) == 0 {
					sol.FulfilledDayOffCells[cell] = struct{}{}
				}
			}

			wishedToday := false
			anyWishedAssigned := false
			for _, wish := range emp.Wishes.ShiftWishes {
				if wish.Day != dom {
					continue
				}
				wishedToday = true
				shift, found := sol.ShiftByAbbreviation(wish.Abbreviation)
				if !found {
					// Unknown abbreviations get no color annotation but still
					// participate in fulfillment: a shift that does not exist
					// can never be assigned.
					continue
				}
				sol.AllShiftWishColors[cell] = append(sol.AllShiftWishColors[cell], shift.Color)
				if index.IsAssigned(emp.ID, day, shift.ID) {
					anyWishedAssigned = true
				}
			}

			if !wishedToday || isDayOffWish {
				continue
			}
			switch a.policy {
			case ShiftWishGrant:
				if anyWishedAssigned {
					sol.FulfilledShiftWishCells[cell] = struct{}{}
				}
			default:
				if !anyWishedAssigned {
					sol.FulfilledShiftWishCells[cell] = struct{}{}
				}
			}
		}
	}
}
