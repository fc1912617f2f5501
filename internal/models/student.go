package models

import "time"

// Student status values. A record carries exactly one of them.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Student represents one enrollee managed by the dashboard.
//
// ID and EnrollmentDate are assigned at creation and never change;
// LastActive is refreshed on every edit.
type Student struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	ProfileImage   string    `json:"profile_image"`
	CourseIDs      []string  `json:"course_ids"`
	Status         string    `json:"status"`
	EnrollmentDate time.Time `json:"enrollment_date"`
	LastActive     time.Time `json:"last_active"`
}

// StudentInput carries the editable fields of a student record.
type StudentInput struct {
	Name         string   `json:"name" validate:"required"`
	Email        string   `json:"email" validate:"required"`
	ProfileImage string   `json:"profile_image" validate:"omitempty,url"`
	CourseIDs    []string `json:"course_ids"`
	Status       string   `json:"status" validate:"omitempty,oneof=active inactive"`
}

// Filter status selector values.
const (
	FilterStatusAll      = "all"
	FilterStatusActive   = "active"
	FilterStatusInactive = "inactive"
)

// FilterOptions describes which students should be visible. Every field is
// independently optional; the zero value (normalised) matches everything.
type FilterOptions struct {
	Status string `json:"status"`
	Course string `json:"course"`
	Search string `json:"search"`
}

// Sort directions.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// SortSpec designates the student field and direction used to order the view.
type SortSpec struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
}
