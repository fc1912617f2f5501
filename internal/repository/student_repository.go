package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/Nayan1809/SMD/internal/models"
	appErrors "github.com/Nayan1809/SMD/pkg/errors"
	"github.com/Nayan1809/SMD/pkg/storage"
)

// StudentsKey names the durable entry holding the student collection.
const StudentsKey = "students"

// StudentRepository persists the student collection as a single durable
// value. Every mutation reads the current collection, computes the next one
// functionally and writes it back whole; there is no partial update.
type StudentRepository struct {
	store *storage.FileStore
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(store *storage.FileStore) *StudentRepository {
	return &StudentRepository{store: store}
}

// List returns the current collection. Missing or malformed durable state
// yields the empty collection, never an error.
func (r *StudentRepository) List() []models.Student {
	students := []models.Student{}
	r.store.Get(StudentsKey, &students)
	if students == nil {
		students = []models.Student{}
	}
	return students
}

// FindByID returns the record with the given id.
func (r *StudentRepository) FindByID(id string) (*models.Student, error) {
	for _, s := range r.List() {
		if s.ID == id {
			found := s
			return &found, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
}

// Create appends a new record with a freshly generated id. Enrollment and
// last-active timestamps are both set to now.
func (r *StudentRepository) Create(input models.StudentInput) models.Student {
	now := time.Now().UTC()
	student := models.Student{
		ID:             uuid.NewString(),
		Name:           input.Name,
		Email:          input.Email,
		ProfileImage:   input.ProfileImage,
		CourseIDs:      dedupe(input.CourseIDs),
		Status:         normalizeStatus(input.Status),
		EnrollmentDate: now,
		LastActive:     now,
	}
	r.store.Set(StudentsKey, append(r.List(), student))
	return student
}

// Update replaces the record with the matching id. The id and enrollment
// timestamp are copied forward unchanged; last-active is refreshed.
func (r *StudentRepository) Update(id string, input models.StudentInput) (*models.Student, error) {
	students := r.List()
	for i, s := range students {
		if s.ID != id {
			continue
		}
		updated := models.Student{
			ID:             s.ID,
			Name:           input.Name,
			Email:          input.Email,
			ProfileImage:   input.ProfileImage,
			CourseIDs:      dedupe(input.CourseIDs),
			Status:         normalizeStatus(input.Status),
			EnrollmentDate: s.EnrollmentDate,
			LastActive:     time.Now().UTC(),
		}
		students[i] = updated
		r.store.Set(StudentsKey, students)
		return &updated, nil
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
}

// Delete removes exactly the record with the given id and returns it.
func (r *StudentRepository) Delete(id string) (*models.Student, error) {
	students := r.List()
	for i, s := range students {
		if s.ID != id {
			continue
		}
		removed := s
		next := make([]models.Student, 0, len(students)-1)
		next = append(next, students[:i]...)
		next = append(next, students[i+1:]...)
		r.store.Set(StudentsKey, next)
		return &removed, nil
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
}

func normalizeStatus(status string) string {
	if status == models.StatusInactive {
		return models.StatusInactive
	}
	return models.StatusActive
}

// dedupe keeps the first occurrence of each course id so duplicates never
// accumulate on a record.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
