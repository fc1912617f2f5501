package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

type preferenceRepository interface {
	DarkMode() bool
	SetDarkMode(enabled bool)
}

// PreferenceService manages the dark/light display preference.
type PreferenceService struct {
	repo   preferenceRepository
	toasts *ToastService
	logger *zap.Logger
}

// NewPreferenceService constructs the preference service.
func NewPreferenceService(repo preferenceRepository, toasts *ToastService, logger *zap.Logger) *PreferenceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PreferenceService{repo: repo, toasts: toasts, logger: logger}
}

// DarkMode returns the stored preference.
func (s *PreferenceService) DarkMode() bool {
	return s.repo.DarkMode()
}

// SetDarkMode persists the preference and announces the switch when the
// value actually changes.
func (s *PreferenceService) SetDarkMode(enabled bool) bool {
	if s.repo.DarkMode() == enabled {
		return enabled
	}
	s.repo.SetDarkMode(enabled)

	mode := "light"
	if enabled {
		mode = "dark"
	}
	if s.toasts != nil {
		s.toasts.AddWithDuration(fmt.Sprintf("Switched to %s mode", mode), "info", 2*time.Second)
	}
	s.logger.Debug("display preference changed", zap.Bool("dark_mode", enabled))
	return enabled
}
