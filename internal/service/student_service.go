package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Nayan1809/SMD/internal/models"
	"github.com/Nayan1809/SMD/internal/validation"
	appErrors "github.com/Nayan1809/SMD/pkg/errors"
)

type studentRepository interface {
	List() []models.Student
	FindByID(id string) (*models.Student, error)
	Create(input models.StudentInput) models.Student
	Update(id string, input models.StudentInput) (*models.Student, error)
	Delete(id string) (*models.Student, error)
}

type toastNotifier interface {
	Add(message, severity string) models.Toast
}

// StudentService handles student use-cases: validated create/update and
// confirmation-gated delete, with toasts emitted on every applied mutation.
type StudentService struct {
	repo      studentRepository
	toasts    toastNotifier
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, toasts toastNotifier, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, toasts: toasts, validator: validate, logger: logger}
}

// List returns the whole collection unfiltered.
func (s *StudentService) List() []models.Student {
	return s.repo.List()
}

// Create registers a new student.
func (s *StudentService) Create(req models.StudentInput) (*models.Student, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	student := s.repo.Create(req)
	if s.toasts != nil {
		s.toasts.Add(fmt.Sprintf("%s has been added", student.Name), models.ToastSuccess)
	}
	s.logger.Info("student created", zap.String("id", student.ID))
	return &student, nil
}

// Update modifies an existing student record. Identity and enrollment
// timestamp survive the edit; last-active is refreshed by the repository.
func (s *StudentService) Update(id string, req models.StudentInput) (*models.Student, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	student, err := s.repo.Update(id, req)
	if err != nil {
		return nil, err
	}
	if s.toasts != nil {
		s.toasts.Add(fmt.Sprintf("%s has been updated", student.Name), models.ToastSuccess)
	}
	s.logger.Info("student updated", zap.String("id", student.ID))
	return student, nil
}

// Delete removes a student. The mutation only applies once the caller has
// confirmed; an unconfirmed request returns the confirmation prompt and
// leaves the collection untouched.
func (s *StudentService) Delete(id string, confirmed bool) (*models.Student, error) {
	student, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !confirmed {
		return nil, appErrors.Clone(appErrors.ErrConfirmationNeeded,
			fmt.Sprintf("Are you sure you want to delete %s?", student.Name))
	}
	removed, err := s.repo.Delete(id)
	if err != nil {
		return nil, err
	}
	if s.toasts != nil {
		s.toasts.Add(fmt.Sprintf("%s has been deleted", removed.Name), models.ToastSuccess)
	}
	s.logger.Info("student deleted", zap.String("id", removed.ID))
	return removed, nil
}

// validate combines the per-field checks surfaced inline on the form with
// the struct-level payload validation.
func (s *StudentService) validate(req models.StudentInput) error {
	fields := map[string]string{}
	if msg := validation.Name(req.Name); msg != "" {
		fields["name"] = msg
	}
	if msg := validation.Email(req.Email); msg != "" {
		fields["email"] = msg
	}
	if msg := validation.Courses(req.CourseIDs); msg != "" {
		fields["courses"] = msg
	}
	if len(fields) > 0 {
		return appErrors.WithFields(appErrors.Clone(appErrors.ErrValidation, "invalid student payload"), fields)
	}
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	return nil
}
