package models

import "time"

// CourseRecord is one student's grade for one course. Physically keyed by an
// opaque id; logically keyed by (StudentID, CourseCode), of which at most one
// record is authoritative. Retakes mutate the existing record and increment
// Attempts instead of creating a duplicate.
type CourseRecord struct {
	ID         string    `json:"id"`
	StudentID  string    `json:"student_id"`
	CourseCode string    `json:"course_code"`
	Grade      float64   `json:"grade"`
	Semester   string    `json:"semester"`
	Year       int       `json:"year"`
	Attempts   int       `json:"attempts"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
