package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Nayan1809/SMD/internal/models"
	"github.com/Nayan1809/SMD/pkg/storage"
)

func newTestStore(t *testing.T) *storage.FileStore {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir(), "dashboard.json", zap.NewNop())
	require.NoError(t, err)
	return store
}

func TestStudentRepositoryCreateThenRead(t *testing.T) {
	repo := NewStudentRepository(newTestStore(t))

	before := repo.List()
	created := repo.Create(models.StudentInput{
		Name:      "John Doe",
		Email:     "john@example.com",
		CourseIDs: []string{"1", "2", "1"},
		Status:    models.StatusActive,
	})

	after := repo.List()
	require.Len(t, after, len(before)+1)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "John Doe", after[0].Name)
	assert.Equal(t, "john@example.com", after[0].Email)
	assert.Equal(t, []string{"1", "2"}, after[0].CourseIDs, "duplicate course ids must not accumulate")
	assert.False(t, created.EnrollmentDate.IsZero())
	assert.Equal(t, created.EnrollmentDate, created.LastActive)
}

func TestStudentRepositoryCreateUniqueIDs(t *testing.T) {
	repo := NewStudentRepository(newTestStore(t))

	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		s := repo.Create(models.StudentInput{Name: "S", Email: "s@x.y", CourseIDs: []string{"1"}})
		_, dup := seen[s.ID]
		require.False(t, dup)
		seen[s.ID] = struct{}{}
	}
}

func TestStudentRepositoryUpdatePreservesIdentity(t *testing.T) {
	repo := NewStudentRepository(newTestStore(t))
	created := repo.Create(models.StudentInput{Name: "Jane", Email: "jane@example.com", CourseIDs: []string{"1"}})

	updated, err := repo.Update(created.ID, models.StudentInput{
		Name:      "Jane",
		Email:     "jane.doe@example.com",
		CourseIDs: []string{"1", "3"},
		Status:    models.StatusInactive,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.EnrollmentDate, updated.EnrollmentDate)
	assert.Equal(t, "jane.doe@example.com", updated.Email)
	assert.Equal(t, models.StatusInactive, updated.Status)
	assert.False(t, updated.LastActive.Before(created.LastActive))
}

func TestStudentRepositoryUpdateMissing(t *testing.T) {
	repo := NewStudentRepository(newTestStore(t))
	_, err := repo.Update("nope", models.StudentInput{Name: "X", Email: "x@y.z"})
	require.Error(t, err)
}

func TestStudentRepositoryDeleteExact(t *testing.T) {
	repo := NewStudentRepository(newTestStore(t))
	a := repo.Create(models.StudentInput{Name: "Alpha", Email: "a@x.y", CourseIDs: []string{"1"}})
	b := repo.Create(models.StudentInput{Name: "Beta", Email: "b@x.y", CourseIDs: []string{"2"}})
	c := repo.Create(models.StudentInput{Name: "Gamma", Email: "c@x.y", CourseIDs: []string{"3"}})

	removed, err := repo.Delete(b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, removed.ID)

	rest := repo.List()
	require.Len(t, rest, 2)
	assert.Equal(t, a.ID, rest[0].ID)
	assert.Equal(t, "Alpha", rest[0].Name)
	assert.Equal(t, c.ID, rest[1].ID)
	assert.Equal(t, "Gamma", rest[1].Name)

	_, err = repo.Delete(b.ID)
	require.Error(t, err)
}

func TestStudentRepositoryMalformedDurableState(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dashboard.json"), []byte("{not json"), 0o644))

	store, err := storage.NewFileStore(dir, "dashboard.json", zap.NewNop())
	require.NoError(t, err)
	repo := NewStudentRepository(store)

	assert.Empty(t, repo.List())
}

func TestPreferenceRepositoryRoundTrip(t *testing.T) {
	store := newTestStore(t)
	repo := NewPreferenceRepository(store)

	assert.False(t, repo.DarkMode())
	repo.SetDarkMode(true)
	assert.True(t, repo.DarkMode())
	repo.SetDarkMode(false)
	assert.False(t, repo.DarkMode())
}
