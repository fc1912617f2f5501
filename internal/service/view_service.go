package service

import (
	"sort"
	"strings"
	"sync"

	"github.com/Nayan1809/SMD/internal/models"
)

type studentLister interface {
	List() []models.Student
}

type courseNamer interface {
	CourseNames(ids []string) string
}

// Sortable student fields. Unknown designators fall back to the default.
var allowedSortFields = map[string]struct{}{
	"name":            {},
	"email":           {},
	"status":          {},
	"enrollment_date": {},
	"last_active":     {},
}

const defaultSortField = "name"

// ViewService holds the transient view state (filter, sort, page) and
// derives the visible page of students from the persisted collection. The
// pipeline is recomputed from scratch on every read; it never mutates the
// collection and never fails.
type ViewService struct {
	repo     studentLister
	catalog  courseNamer
	pageSize int

	mu     sync.Mutex
	filter models.FilterOptions
	sort   models.SortSpec
	page   int
}

// NewViewService constructs the view with the all-encompassing default
// filter, name-ascending sort and page 1.
func NewViewService(repo studentLister, catalog courseNamer, pageSize int) *ViewService {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &ViewService{
		repo:     repo,
		catalog:  catalog,
		pageSize: pageSize,
		filter:   models.FilterOptions{Status: models.FilterStatusAll},
		sort:     models.SortSpec{Field: defaultSortField, Direction: models.SortAsc},
		page:     1,
	}
}

// SetFilter replaces the filter specification and rewinds to page 1.
func (s *ViewService) SetFilter(filter models.FilterOptions) {
	switch filter.Status {
	case models.FilterStatusActive, models.FilterStatusInactive:
	default:
		filter.Status = models.FilterStatusAll
	}
	s.mu.Lock()
	s.filter = filter
	s.page = 1
	s.mu.Unlock()
}

// SetSort designates the sort field. Selecting the already-active field with
// no explicit direction toggles the direction, matching the table header
// behaviour.
func (s *ViewService) SetSort(field, direction string) {
	if _, ok := allowedSortFields[field]; !ok {
		field = defaultSortField
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	switch direction {
	case models.SortAsc, models.SortDesc:
	default:
		if s.sort.Field == field && s.sort.Direction == models.SortAsc {
			direction = models.SortDesc
		} else {
			direction = models.SortAsc
		}
	}
	s.sort = models.SortSpec{Field: field, Direction: direction}
}

// SetPage moves to the requested page, clamped to [1, totalPages]. Clamping
// is a presentation-boundary duty; the pipeline itself treats out-of-range
// pages as empty slices.
func (s *ViewService) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := totalPages(len(s.applyLocked(s.repo.List())), s.pageSize)
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}
	s.page = page
}

// State returns the current filter, sort and page.
func (s *ViewService) State() (models.FilterOptions, models.SortSpec, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter, s.sort, s.page
}

// Slice computes the visible page plus pagination metadata sufficient to
// render navigation without recomputation.
func (s *ViewService) Slice() ([]models.Student, models.Pagination) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.applyLocked(s.repo.List())
	pages := totalPages(len(rows), s.pageSize)

	page := s.page
	start := (page - 1) * s.pageSize
	end := start + s.pageSize
	if start > len(rows) {
		start = len(rows)
	}
	if end > len(rows) {
		end = len(rows)
	}

	return rows[start:end], models.Pagination{
		Page:       page,
		PageSize:   s.pageSize,
		TotalCount: len(rows),
		TotalPages: pages,
	}
}

// FilteredSorted returns every filtered row in sorted order, ignoring
// pagination. Used by the roster export.
func (s *ViewService) FilteredSorted() []models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyLocked(s.repo.List())
}

func (s *ViewService) applyLocked(students []models.Student) []models.Student {
	filtered := filterStudents(students, s.filter, s.catalog)
	sortStudents(filtered, s.sort)
	return filtered
}

// filterStudents keeps records matching every active predicate; the three
// predicates are conjunctive, so evaluation order does not affect the result.
func filterStudents(students []models.Student, filter models.FilterOptions, catalog courseNamer) []models.Student {
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	result := make([]models.Student, 0, len(students))
	for _, student := range students {
		if filter.Status != models.FilterStatusAll && student.Status != filter.Status {
			continue
		}
		if filter.Course != "" && !contains(student.CourseIDs, filter.Course) {
			continue
		}
		if search != "" {
			courseNames := ""
			if catalog != nil {
				courseNames = catalog.CourseNames(student.CourseIDs)
			}
			if !strings.Contains(strings.ToLower(student.Name), search) &&
				!strings.Contains(strings.ToLower(student.Email), search) &&
				!strings.Contains(strings.ToLower(courseNames), search) {
				continue
			}
		}
		result = append(result, student)
	}
	return result
}

// sortStudents orders records in place by the designated field's natural
// ordering; descending reverses the comparison.
func sortStudents(students []models.Student, spec models.SortSpec) {
	desc := spec.Direction == models.SortDesc
	sort.SliceStable(students, func(i, j int) bool {
		a, b := students[i], students[j]
		var less bool
		switch spec.Field {
		case "email":
			less = a.Email < b.Email
		case "status":
			less = a.Status < b.Status
		case "enrollment_date":
			less = a.EnrollmentDate.Before(b.EnrollmentDate)
		case "last_active":
			less = a.LastActive.Before(b.LastActive)
		default:
			less = a.Name < b.Name
		}
		if desc {
			return !less && !equalByField(a, b, spec.Field)
		}
		return less
	})
}

func equalByField(a, b models.Student, field string) bool {
	switch field {
	case "email":
		return a.Email == b.Email
	case "status":
		return a.Status == b.Status
	case "enrollment_date":
		return a.EnrollmentDate.Equal(b.EnrollmentDate)
	case "last_active":
		return a.LastActive.Equal(b.LastActive)
	default:
		return a.Name == b.Name
	}
}

// totalPages is ceil(count/size) with a minimum of one page even when empty.
func totalPages(count, size int) int {
	pages := (count + size - 1) / size
	if pages < 1 {
		pages = 1
	}
	return pages
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
