package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Nayan1809/SMD/internal/models"
)

// ToastService queues ephemeral user-facing notifications. Each toast
// self-removes after its duration unless it is sticky (duration zero) or
// removed earlier; explicit removal cancels the pending expiry so a fired
// timer never acts on a reused slot.
type ToastService struct {
	defaultDuration time.Duration
	metrics         *MetricsService
	logger          *zap.Logger

	mu     sync.Mutex
	toasts []models.Toast
	timers map[string]*time.Timer
}

// NewToastService constructs the notifier.
func NewToastService(defaultDuration time.Duration, metrics *MetricsService, logger *zap.Logger) *ToastService {
	if defaultDuration <= 0 {
		defaultDuration = 4 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ToastService{
		defaultDuration: defaultDuration,
		metrics:         metrics,
		logger:          logger,
		timers:          make(map[string]*time.Timer),
	}
}

// Add queues a toast with the default duration.
func (s *ToastService) Add(message, severity string) models.Toast {
	return s.AddWithDuration(message, severity, s.defaultDuration)
}

// AddWithDuration queues a toast; duration zero means it persists until
// explicitly removed.
func (s *ToastService) AddWithDuration(message, severity string, duration time.Duration) models.Toast {
	switch severity {
	case models.ToastSuccess, models.ToastError, models.ToastWarning, models.ToastInfo:
	default:
		severity = models.ToastInfo
	}

	toast := models.Toast{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  severity,
		Duration:  duration,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.toasts = append(s.toasts, toast)
	if duration > 0 {
		id := toast.ID
		s.timers[id] = time.AfterFunc(duration, func() {
			s.Remove(id)
		})
	}
	s.mu.Unlock()

	s.metrics.RecordToast()
	s.logger.Debug("toast queued",
		zap.String("id", toast.ID), zap.String("severity", severity))
	return toast
}

// List returns the queued toasts in insertion order.
func (s *ToastService) List() []models.Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Toast, len(s.toasts))
	copy(out, s.toasts)
	return out
}

// Remove dismisses a toast and cancels its expiry timer. Removing an
// already-removed id is a no-op.
func (s *ToastService) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}
	for i, toast := range s.toasts {
		if toast.ID == id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			return
		}
	}
}
