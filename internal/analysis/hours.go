package analysis

import (
	"math"
	"time"

	"github.com/shiftsight/shiftsight-api/internal/models"
)

// DefaultOvertimeTolerance is the accepted deviation, in hours, between an
// employee's target and actual working time before the schedule flags
// overtime. Roughly one working day of slack.
const DefaultOvertimeTolerance = 7.67

// EmployeeHours summarises one employee's workload in a schedule.
type EmployeeHours struct {
	EmployeeID  int     `json:"employee_id"`
	ActualHours float64 `json:"actual_hours"`
	TargetHours float64 `json:"target_hours"`
	TotalShifts int     `json:"total_shifts"`
	HasOvertime bool    `json:"has_overtime"`
}

// HoursAggregator computes per-employee workload against the stated target
// working time.
type HoursAggregator struct {
	tolerance float64
}

// NewHoursAggregator constructs an aggregator. A non-positive tolerance
// falls back to DefaultOvertimeTolerance.
func NewHoursAggregator(tolerance float64) *HoursAggregator {
	if tolerance <= 0 {
		tolerance = DefaultOvertimeTolerance
	}
	return &HoursAggregator{tolerance: tolerance}
}

// Tolerance exposes the configured overtime tolerance in hours.
func (h *HoursAggregator) Tolerance() float64 {
	return h.tolerance
}

// ComputeStats sums the durations of every shift assigned to the employee
// across all schedule days. Overtime is a strict comparison: a deviation of
// exactly the tolerance is not overtime.
func (h *HoursAggregator) ComputeStats(emp models.Employee, days []time.Time, index *AssignmentIndex) EmployeeHours {
	actualMinutes := 0
	totalShifts := 0
	for _, day := range days {
		for _, shift := range index.AssignedShifts(emp.ID, day) {
			actualMinutes += shift.Duration
			totalShifts++
		}
	}

	actualHours := float64(actualMinutes) / 60
	targetHours := float64(emp.TargetWorkingTime) / 60

	return EmployeeHours{
		EmployeeID:  emp.ID,
		ActualHours: actualHours,
		TargetHours: targetHours,
		TotalShifts: totalShifts,
		HasOvertime: math.Abs(actualHours-targetHours) > h.tolerance,
	}
}
