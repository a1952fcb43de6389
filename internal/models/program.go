package models

import "time"

// Program is the stored study program document, keyed by its name.
type Program struct {
	Name         string    `json:"name"`
	TotalCredits int       `json:"total_credits"`
	CourseCodes  []string  `json:"course_codes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
