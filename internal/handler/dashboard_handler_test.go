package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nayan1809/SMD/internal/models"
	appErrors "github.com/Nayan1809/SMD/pkg/errors"
)

type stubDashboard struct {
	stats    *models.DashboardStats
	cacheHit bool
	err      error
}

func (s *stubDashboard) Stats(ctx context.Context) (*models.DashboardStats, bool, error) {
	return s.stats, s.cacheHit, s.err
}

func TestDashboardHandlerStats(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewDashboardHandler(&stubDashboard{
		stats: &models.DashboardStats{
			TotalStudents:  3,
			CompletionRate: 67,
			Breakdown:      models.StatusBreakdown{Active: 2, Inactive: 1},
		},
		cacheHit: true,
	})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/dashboard", nil)

	h.Stats(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data models.DashboardStats  `json:"data"`
		Meta map[string]interface{} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, 3, envelope.Data.TotalStudents)
	assert.Equal(t, 67, envelope.Data.CompletionRate)
	assert.Equal(t, true, envelope.Meta["cache_hit"])
}

func TestDashboardHandlerStatsError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewDashboardHandler(&stubDashboard{err: appErrors.ErrInternal})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/dashboard", nil)

	h.Stats(c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
