package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nayan1809/SMD/internal/models"
	"github.com/Nayan1809/SMD/pkg/config"
)

type staticLister struct {
	students []models.Student
}

func (l *staticLister) List() []models.Student {
	return append([]models.Student(nil), l.students...)
}

func testCatalog() *CatalogService {
	return NewCatalogService(config.CatalogConfig{FetchDelay: 0, FailureRate: 0}, nil, nil)
}

func TestViewFilterComposition(t *testing.T) {
	lister := &staticLister{students: []models.Student{
		{ID: "a", Name: "A", Status: models.StatusActive, CourseIDs: []string{"1"}},
		{ID: "b", Name: "B", Status: models.StatusInactive, CourseIDs: []string{"1"}},
		{ID: "c", Name: "C", Status: models.StatusActive, CourseIDs: []string{"2"}},
	}}
	view := NewViewService(lister, testCatalog(), 10)

	view.SetFilter(models.FilterOptions{Status: models.FilterStatusActive, Course: "1"})
	page, pagination := view.Slice()

	require.Len(t, page, 1)
	assert.Equal(t, "a", page[0].ID)
	assert.Equal(t, 1, pagination.TotalCount)
}

func TestViewSearchMatchesNameEmailAndCourseNames(t *testing.T) {
	lister := &staticLister{students: []models.Student{
		{ID: "a", Name: "Ada Lovelace", Email: "ada@calc.io", Status: models.StatusActive, CourseIDs: []string{"2"}},
		{ID: "b", Name: "Brendan", Email: "b@js.dev", Status: models.StatusActive, CourseIDs: []string{"1"}},
		{ID: "c", Name: "Carol", Email: "carol@mail.com", Status: models.StatusActive, CourseIDs: []string{"5"}},
	}}
	view := NewViewService(lister, testCatalog(), 10)

	view.SetFilter(models.FilterOptions{Search: "ADA"})
	page, _ := view.Slice()
	require.Len(t, page, 1)
	assert.Equal(t, "a", page[0].ID)

	view.SetFilter(models.FilterOptions{Search: "js.dev"})
	page, _ = view.Slice()
	require.Len(t, page, 1)
	assert.Equal(t, "b", page[0].ID)

	// "Database Design & SQL" is course 5 in the catalog.
	view.SetFilter(models.FilterOptions{Search: "database design"})
	page, _ = view.Slice()
	require.Len(t, page, 1)
	assert.Equal(t, "c", page[0].ID)
}

func TestViewPaginationBoundary(t *testing.T) {
	students := make([]models.Student, 25)
	for i := range students {
		students[i] = models.Student{
			ID:     fmt.Sprintf("s%02d", i),
			Name:   fmt.Sprintf("Student %02d", i),
			Status: models.StatusActive,
		}
	}
	view := NewViewService(&staticLister{students: students}, testCatalog(), 10)

	page, pagination := view.Slice()
	assert.Len(t, page, 10)
	assert.Equal(t, 25, pagination.TotalCount)
	assert.Equal(t, 3, pagination.TotalPages)

	view.SetPage(2)
	page, _ = view.Slice()
	assert.Len(t, page, 10)

	view.SetPage(3)
	page, pagination = view.Slice()
	assert.Len(t, page, 5)
	assert.Equal(t, 3, pagination.Page)
}

func TestViewSetPageClamps(t *testing.T) {
	students := make([]models.Student, 12)
	for i := range students {
		students[i] = models.Student{ID: fmt.Sprintf("s%d", i), Name: fmt.Sprintf("S%d", i), Status: models.StatusActive}
	}
	view := NewViewService(&staticLister{students: students}, testCatalog(), 10)

	view.SetPage(99)
	_, pagination := view.Slice()
	assert.Equal(t, 2, pagination.Page)

	view.SetPage(-3)
	_, pagination = view.Slice()
	assert.Equal(t, 1, pagination.Page)
}

func TestViewEmptyCollectionYieldsEmptyPage(t *testing.T) {
	view := NewViewService(&staticLister{}, testCatalog(), 10)

	page, pagination := view.Slice()
	assert.Empty(t, page)
	assert.Equal(t, 0, pagination.TotalCount)
	assert.Equal(t, 1, pagination.TotalPages, "minimum one page even when empty")
}

func TestViewSortDirectionReverses(t *testing.T) {
	lister := &staticLister{students: []models.Student{
		{ID: "c", Name: "Carol", Status: models.StatusActive},
		{ID: "a", Name: "Ada", Status: models.StatusActive},
		{ID: "b", Name: "Bob", Status: models.StatusActive},
	}}
	view := NewViewService(lister, testCatalog(), 10)

	view.SetSort("name", models.SortAsc)
	asc, _ := view.Slice()
	require.Len(t, asc, 3)

	view.SetSort("name", models.SortDesc)
	desc, _ := view.Slice()
	require.Len(t, desc, 3)

	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
}

func TestViewSortToggleOnSameField(t *testing.T) {
	view := NewViewService(&staticLister{}, testCatalog(), 10)

	view.SetSort("email", "")
	_, spec, _ := view.State()
	assert.Equal(t, models.SortSpec{Field: "email", Direction: models.SortAsc}, spec)

	view.SetSort("email", "")
	_, spec, _ = view.State()
	assert.Equal(t, models.SortDesc, spec.Direction)

	view.SetSort("name", "")
	_, spec, _ = view.State()
	assert.Equal(t, models.SortSpec{Field: "name", Direction: models.SortAsc}, spec)
}

func TestViewSortByTimestamps(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	lister := &staticLister{students: []models.Student{
		{ID: "new", Name: "New", Status: models.StatusActive, EnrollmentDate: base.AddDate(0, 0, 2)},
		{ID: "old", Name: "Old", Status: models.StatusActive, EnrollmentDate: base},
	}}
	view := NewViewService(lister, testCatalog(), 10)

	view.SetSort("enrollment_date", models.SortAsc)
	page, _ := view.Slice()
	require.Len(t, page, 2)
	assert.Equal(t, "old", page[0].ID)

	view.SetSort("enrollment_date", models.SortDesc)
	page, _ = view.Slice()
	assert.Equal(t, "new", page[0].ID)
}

func TestViewFilterResetsPage(t *testing.T) {
	students := make([]models.Student, 15)
	for i := range students {
		students[i] = models.Student{ID: fmt.Sprintf("s%d", i), Name: fmt.Sprintf("S%d", i), Status: models.StatusActive}
	}
	view := NewViewService(&staticLister{students: students}, testCatalog(), 10)

	view.SetPage(2)
	view.SetFilter(models.FilterOptions{Status: models.FilterStatusActive})
	_, pagination := view.Slice()
	assert.Equal(t, 1, pagination.Page)
}
