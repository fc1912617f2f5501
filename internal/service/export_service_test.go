package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nayan1809/SMD/internal/models"
)

type staticRows struct {
	students []models.Student
}

func (r *staticRows) FilteredSorted() []models.Student {
	return r.students
}

func exportFixture() *staticRows {
	enrolled := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	return &staticRows{students: []models.Student{
		{Name: "Ada", Email: "ada@calc.io", Status: models.StatusActive, CourseIDs: []string{"1"}, EnrollmentDate: enrolled, LastActive: enrolled},
	}}
}

func TestExportRenderCSV(t *testing.T) {
	svc := NewExportService(exportFixture(), testCatalog(), "Student Roster")

	filename, contentType, data, err := svc.Render("csv")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".csv"))
	assert.Equal(t, "text/csv", contentType)

	body := string(data)
	assert.Contains(t, body, "Name,Email,Status,Courses,Enrolled,Last Active")
	assert.Contains(t, body, "Ada,ada@calc.io,active,Introduction to React,2024-05-10,2024-05-10")
}

func TestExportRenderPDF(t *testing.T) {
	svc := NewExportService(exportFixture(), testCatalog(), "Student Roster")

	filename, contentType, data, err := svc.Render("pdf")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".pdf"))
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestExportDefaultsToCSV(t *testing.T) {
	svc := NewExportService(exportFixture(), testCatalog(), "")

	filename, _, _, err := svc.Render("")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".csv"))
}

func TestExportUnsupportedFormat(t *testing.T) {
	svc := NewExportService(exportFixture(), testCatalog(), "")

	_, _, _, err := svc.Render("xlsx")
	require.Error(t, err)
}
