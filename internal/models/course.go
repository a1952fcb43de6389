package models

import "time"

// Course is the stored course document, keyed by its code.
type Course struct {
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	Credits       int       `json:"credits"`
	Semester      string    `json:"semester"`
	AssignmentIDs []string  `json:"assignment_ids"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
