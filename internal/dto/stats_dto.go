package dto

// SemesterAverage is the mean grade within one (year, semester) group. Groups
// keep the insertion order of their first occurrence; no chronological sort is
// guaranteed.
type SemesterAverage struct {
	Label   string  `json:"label"`
	Average float64 `json:"average"`
}

// StudentStatsResponse aggregates a student's course records.
type StudentStatsResponse struct {
	StudentID          string            `json:"student_id"`
	TotalCourses       int               `json:"total_courses"`
	AverageGrade       float64           `json:"average_grade"`
	HighestGrade       float64           `json:"highest_grade"`
	PassingCount       int               `json:"passing_count"`
	PerSemesterAverage []SemesterAverage `json:"per_semester_average"`
}

// ProgressResponse reports program completion for the progress dashboard. The
// percentage is deliberately unclamped; total credits may be a placeholder
// default, so values above 100 pass through unmodified.
type ProgressResponse struct {
	StudentID         string  `json:"student_id"`
	Program           string  `json:"program"`
	CompletedCredits  int     `json:"completed_credits"`
	TotalCredits      int     `json:"total_credits"`
	CompletionPercent float64 `json:"completion_percent"`
	CurrentSemester   string  `json:"current_semester"`
}

// GradeReportEntry is one row of the grade report dashboard.
type GradeReportEntry struct {
	CourseCode string  `json:"course_code"`
	CourseName string  `json:"course_name"`
	Credits    int     `json:"credits"`
	Grade      float64 `json:"grade"`
	Semester   string  `json:"semester"`
	Year       int     `json:"year"`
	Attempts   int     `json:"attempts"`
	Passed     bool    `json:"passed"`
}

// GradeReportResponse lists every course record for a student with course
// details joined in.
type GradeReportResponse struct {
	StudentID string             `json:"student_id"`
	Entries   []GradeReportEntry `json:"entries"`
}

// EnrolledCourse is one entry of the my-courses dashboard, joining the
// student's enrolled course codes with course documents and the grade sheet.
type EnrolledCourse struct {
	Code     string   `json:"code"`
	Name     string   `json:"name"`
	Credits  int      `json:"credits"`
	Semester string   `json:"semester"`
	Grade    *float64 `json:"grade"`
}

// MyCoursesResponse lists the authenticated student's enrolled courses.
type MyCoursesResponse struct {
	StudentID string           `json:"student_id"`
	Program   string           `json:"program"`
	Courses   []EnrolledCourse `json:"courses"`
}
