package repository

import "github.com/Nayan1809/SMD/pkg/storage"

// DarkModeKey names the durable entry holding the display preference.
const DarkModeKey = "darkMode"

// PreferenceRepository persists the dark/light display preference.
type PreferenceRepository struct {
	store *storage.FileStore
}

// NewPreferenceRepository constructs a PreferenceRepository.
func NewPreferenceRepository(store *storage.FileStore) *PreferenceRepository {
	return &PreferenceRepository{store: store}
}

// DarkMode returns the stored preference, defaulting to light.
func (r *PreferenceRepository) DarkMode() bool {
	enabled := false
	r.store.Get(DarkModeKey, &enabled)
	return enabled
}

// SetDarkMode persists the preference.
func (r *PreferenceRepository) SetDarkMode(enabled bool) {
	r.store.Set(DarkModeKey, enabled)
}
