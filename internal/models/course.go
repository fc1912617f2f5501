package models

// Course is a read-only catalog entry. Courses are never created, edited or
// deleted by this system; MaxStudents is descriptive and never enforced
// against enrollment actions.
type Course struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Instructor       string `json:"instructor"`
	Description      string `json:"description"`
	Duration         string `json:"duration"`
	Category         string `json:"category"`
	EnrolledStudents int    `json:"enrolled_students"`
	MaxStudents      int    `json:"max_students"`
}
