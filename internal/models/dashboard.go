package models

// StatusBreakdown summarises the active/inactive split of the collection.
type StatusBreakdown struct {
	Active             int     `json:"active"`
	Inactive           int     `json:"inactive"`
	ActivePercentage   float64 `json:"active_percentage"`
	InactivePercentage float64 `json:"inactive_percentage"`
}

// RecentActivityItem is one row of the dashboard activity feed.
type RecentActivityItem struct {
	StudentID   string `json:"student_id"`
	Name        string `json:"name"`
	CourseCount int    `json:"course_count"`
}

// DashboardStats aggregates the collection and catalog for the overview page.
type DashboardStats struct {
	TotalStudents  int                  `json:"total_students"`
	ActiveCourses  int                  `json:"active_courses"`
	CompletionRate int                  `json:"completion_rate"`
	NewEnrollments int                  `json:"new_enrollments"`
	Breakdown      StatusBreakdown      `json:"breakdown"`
	RecentActivity []RecentActivityItem `json:"recent_activity"`
}
