package service

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Nayan1809/SMD/internal/models"
	"github.com/Nayan1809/SMD/pkg/config"
	appErrors "github.com/Nayan1809/SMD/pkg/errors"
)

// catalogCourses is the fixed course catalog. There is no upstream service;
// the catalog is never created, edited or deleted at runtime.
var catalogCourses = []models.Course{
	{
		ID:               "1",
		Name:             "Introduction to React",
		Instructor:       "Sarah Johnson",
		Description:      "Learn the fundamentals of React including components, state, and props.",
		Duration:         "8 weeks",
		Category:         "Frontend Development",
		EnrolledStudents: 24,
		MaxStudents:      30,
	},
	{
		ID:               "2",
		Name:             "Advanced JavaScript",
		Instructor:       "Michael Chen",
		Description:      "Deep dive into ES6+, async programming, and modern JavaScript patterns.",
		Duration:         "10 weeks",
		Category:         "Programming",
		EnrolledStudents: 18,
		MaxStudents:      25,
	},
	{
		ID:               "3",
		Name:             "UI/UX Design Principles",
		Instructor:       "Emily Rodriguez",
		Description:      "Master the principles of user interface and user experience design.",
		Duration:         "6 weeks",
		Category:         "Design",
		EnrolledStudents: 15,
		MaxStudents:      20,
	},
	{
		ID:               "4",
		Name:             "Node.js Backend Development",
		Instructor:       "David Kim",
		Description:      "Build scalable backend applications with Node.js and Express.",
		Duration:         "12 weeks",
		Category:         "Backend Development",
		EnrolledStudents: 22,
		MaxStudents:      28,
	},
	{
		ID:               "5",
		Name:             "Database Design & SQL",
		Instructor:       "Lisa Thompson",
		Description:      "Learn database design principles and master SQL queries.",
		Duration:         "8 weeks",
		Category:         "Database",
		EnrolledStudents: 19,
		MaxStudents:      25,
	},
}

// CatalogService serves the course catalog behind a simulated network: a
// fixed latency before every response and a small random failure rate.
// Failures are transient; callers retry by calling Fetch again.
type CatalogService struct {
	delay       time.Duration
	failureRate float64
	metrics     *MetricsService
	logger      *zap.Logger

	mu   sync.Mutex
	roll func() float64
}

// NewCatalogService constructs the catalog service.
func NewCatalogService(cfg config.CatalogConfig, metrics *MetricsService, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &CatalogService{
		delay:       cfg.FetchDelay,
		failureRate: cfg.FailureRate,
		metrics:     metrics,
		logger:      logger,
		roll:        rng.Float64,
	}
}

// Fetch returns the catalog after the simulated delay. Each call fails
// independently with the configured probability. Repeated successful calls
// return the same catalog; there is no caching and no mutation.
func (s *CatalogService) Fetch(ctx context.Context) ([]models.Course, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, appErrors.Wrap(ctx.Err(), appErrors.ErrCatalogUnavailable.Code,
				appErrors.ErrCatalogUnavailable.Status, "catalog fetch cancelled")
		case <-timer.C:
		}
	}

	s.mu.Lock()
	failed := s.roll() < s.failureRate
	s.mu.Unlock()
	if failed {
		s.metrics.RecordCatalogFailure()
		s.logger.Warn("simulated catalog fetch failure")
		return nil, appErrors.Clone(appErrors.ErrCatalogUnavailable, "Failed to fetch courses. Please try again.")
	}

	return s.Courses(), nil
}

// Courses returns a copy of the fixed catalog without the simulated network.
func (s *CatalogService) Courses() []models.Course {
	courses := make([]models.Course, len(catalogCourses))
	copy(courses, catalogCourses)
	return courses
}

// CourseByID looks up a catalog entry.
func (s *CatalogService) CourseByID(id string) (models.Course, bool) {
	for _, course := range catalogCourses {
		if course.ID == id {
			return course, true
		}
	}
	return models.Course{}, false
}

// CourseNames joins the names of the given course ids with ", ", skipping
// ids not present in the catalog.
func (s *CatalogService) CourseNames(ids []string) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if course, ok := s.CourseByID(id); ok {
			names = append(names, course.Name)
		}
	}
	return strings.Join(names, ", ")
}
