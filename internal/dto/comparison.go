package dto

import "github.com/shiftsight/shiftsight-api/internal/models"

// ComparisonScheduleRef names one schedule to include in a comparison.
type ComparisonScheduleRef struct {
	ScheduleID string `json:"schedule_id" validate:"required"`
	Seed       int64  `json:"seed"`
}

// ComparisonRequest asks for a side-by-side comparison of N schedules
// fetched from the solver gateway. Filter is an optional case-insensitive
// substring matched against employee name, level and id.
type ComparisonRequest struct {
	Schedules []ComparisonScheduleRef `json:"schedules" validate:"dive"`
	Filter    string                  `json:"filter"`
}

// ComparisonResponse carries the grouped comparison rows.
type ComparisonResponse struct {
	Schedules int                    `json:"schedules"`
	Filter    string                 `json:"filter,omitempty"`
	Rows      []models.ComparisonRow `json:"rows"`
}
