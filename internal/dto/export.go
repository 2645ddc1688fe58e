package dto

import "time"

// ExportResponse points at a rendered schedule export.
type ExportResponse struct {
	SolutionID string    `json:"solution_id"`
	Format     string    `json:"format"`
	Filename   string    `json:"filename"`
	Token      string    `json:"token"`
	URL        string    `json:"url"`
	ExpiresAt  time.Time `json:"expires_at"`
}
