package models

import "time"

// Semester values a course can be offered in or a student can be enrolled in.
const (
	SemesterA = "A"
	SemesterB = "B"
	SemesterC = "C"
)

// ValidSemester reports whether value is one of the known semesters.
func ValidSemester(value string) bool {
	switch value {
	case SemesterA, SemesterB, SemesterC:
		return true
	default:
		return false
	}
}

// Student is the stored student document. The grade sheet is a denormalized
// cache of course code to grade, owned exclusively by the record service; any
// other writer is a contract violation.
type Student struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Email            string             `json:"email"`
	EnrolledCourses  []string           `json:"enrolled_courses"`
	AssignmentIDs    []string           `json:"assignment_ids"`
	GradeSheet       map[string]float64 `json:"grade_sheet"`
	Program          string             `json:"program"`
	Semester         string             `json:"semester"`
	CompletedCredits int                `json:"completed_credits"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}
