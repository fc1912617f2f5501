package service

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/Nayan1809/SMD/internal/models"
)

const dashboardCacheKey = "dashboard:stats"

const recentActivityLimit = 5

type catalogReader interface {
	Courses() []models.Course
}

// DashboardService computes overview aggregates from the collection and the
// catalog. Aggregates are cheap enough to recompute per request; the cache
// is an optional layer and a miss (or a disabled cache) is never an error.
type DashboardService struct {
	repo    studentLister
	catalog catalogReader
	cache   *CacheService
	ttl     time.Duration
	logger  *zap.Logger
}

// NewDashboardService constructs the dashboard service.
func NewDashboardService(repo studentLister, catalog catalogReader, cache *CacheService, ttl time.Duration, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{repo: repo, catalog: catalog, cache: cache, ttl: ttl, logger: logger}
}

// Stats returns the dashboard aggregates and whether they came from cache.
func (s *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, bool, error) {
	if s.cache.Enabled() {
		var cached models.DashboardStats
		if hit, err := s.cache.Get(ctx, dashboardCacheKey, &cached); err == nil && hit {
			return &cached, true, nil
		}
	}

	stats := s.compute()

	if s.cache.Enabled() {
		if err := s.cache.Set(ctx, dashboardCacheKey, stats, s.ttl); err != nil {
			s.logger.Warn("dashboard cache set failed", zap.Error(err))
		}
	}
	return stats, false, nil
}

// InvalidateCache drops the cached aggregates; it is subscribed to student
// collection writes so stale stats never outlive a mutation.
func (s *DashboardService) InvalidateCache(ctx context.Context) {
	if !s.cache.Enabled() {
		return
	}
	if err := s.cache.Invalidate(ctx, dashboardCacheKey); err != nil {
		s.logger.Warn("dashboard cache invalidate failed", zap.Error(err))
	}
}

func (s *DashboardService) compute() *models.DashboardStats {
	students := s.repo.List()
	total := len(students)

	active := 0
	newEnrollments := 0
	weekAgo := time.Now().UTC().AddDate(0, 0, -7)
	for _, student := range students {
		if student.Status == models.StatusActive {
			active++
		}
		if !student.EnrollmentDate.Before(weekAgo) {
			newEnrollments++
		}
	}
	inactive := total - active

	completionRate := 0
	breakdown := models.StatusBreakdown{Active: active, Inactive: inactive}
	if total > 0 {
		completionRate = int(math.Round(float64(active) / float64(total) * 100))
		breakdown.ActivePercentage = roundOneDecimal(float64(active) / float64(total) * 100)
		breakdown.InactivePercentage = roundOneDecimal(float64(inactive) / float64(total) * 100)
	}

	recent := make([]models.RecentActivityItem, 0, recentActivityLimit)
	for i, student := range students {
		if i == recentActivityLimit {
			break
		}
		recent = append(recent, models.RecentActivityItem{
			StudentID:   student.ID,
			Name:        student.Name,
			CourseCount: len(student.CourseIDs),
		})
	}

	return &models.DashboardStats{
		TotalStudents:  total,
		ActiveCourses:  len(s.catalog.Courses()),
		CompletionRate: completionRate,
		NewEnrollments: newEnrollments,
		Breakdown:      breakdown,
		RecentActivity: recent,
	}
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
