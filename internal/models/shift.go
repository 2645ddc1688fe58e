package models

// Shift is an immutable catalog entry describing a plannable shift type.
// Exclusivity is carried for display; this service never enforces it.
type Shift struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Color        string `json:"color"`
	Duration     int    `json:"duration"` // minutes
	IsExclusive  bool   `json:"is_exclusive"`
}

// ShiftRef pairs a 1-based day of month with a shift abbreviation. It is used
// both for shift wishes and for per-shift availability blocks.
type ShiftRef struct {
	Day          int    `json:"day"`
	Abbreviation string `json:"abbreviation"`
}
