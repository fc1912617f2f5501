package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nayan1809/SMD/internal/models"
)

type viewEnvelope struct {
	Data       []models.Student   `json:"data"`
	Pagination *models.Pagination `json:"pagination"`
	Meta       struct {
		Filter models.FilterOptions `json:"filter"`
		Sort   models.SortSpec      `json:"sort"`
	} `json:"meta"`
}

func decodeView(t *testing.T, rec *httptest.ResponseRecorder) viewEnvelope {
	t.Helper()
	var envelope viewEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func seedStudents(t *testing.T, env *testEnv, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		status := models.StatusActive
		if i%2 == 1 {
			status = models.StatusInactive
		}
		_, err := env.students.Create(models.StudentInput{
			Name:      fmt.Sprintf("Student %02d", i),
			Email:     fmt.Sprintf("student%02d@example.com", i),
			CourseIDs: []string{"1"},
			Status:    status,
		})
		require.NoError(t, err)
	}
}

func TestViewHandlerListPaginates(t *testing.T) {
	env := newTestEnv(t)
	h := NewViewHandler(env.view)
	seedStudents(t, env, 12)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/students", nil)

	h.List(c)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeView(t, rec)
	assert.Len(t, envelope.Data, 10)
	require.NotNil(t, envelope.Pagination)
	assert.Equal(t, 12, envelope.Pagination.TotalCount)
	assert.Equal(t, 2, envelope.Pagination.TotalPages)
}

func TestViewHandlerSetFilter(t *testing.T) {
	env := newTestEnv(t)
	h := NewViewHandler(env.view)
	seedStudents(t, env, 6)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = jsonRequest(t, http.MethodPut, "/students/view/filter", models.FilterOptions{Status: models.FilterStatusActive})

	h.SetFilter(c)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeView(t, rec)
	assert.Equal(t, models.FilterStatusActive, envelope.Meta.Filter.Status)
	for _, s := range envelope.Data {
		assert.Equal(t, models.StatusActive, s.Status)
	}
}

func TestViewHandlerSetSortToggles(t *testing.T) {
	env := newTestEnv(t)
	h := NewViewHandler(env.view)
	seedStudents(t, env, 3)

	send := func() viewEnvelope {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		c.Request = jsonRequest(t, http.MethodPut, "/students/view/sort", sortRequest{Field: "email"})
		h.SetSort(c)
		require.Equal(t, http.StatusOK, rec.Code)
		return decodeView(t, rec)
	}

	first := send()
	assert.Equal(t, models.SortAsc, first.Meta.Sort.Direction)

	second := send()
	assert.Equal(t, models.SortDesc, second.Meta.Sort.Direction)
	assert.Equal(t, "Student 02", second.Data[0].Name)
}

func TestViewHandlerSetPageClamps(t *testing.T) {
	env := newTestEnv(t)
	h := NewViewHandler(env.view)
	seedStudents(t, env, 12)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = jsonRequest(t, http.MethodPut, "/students/view/page", pageRequest{Page: 99})

	h.SetPage(c)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeView(t, rec)
	require.NotNil(t, envelope.Pagination)
	assert.Equal(t, 2, envelope.Pagination.Page)
	assert.Len(t, envelope.Data, 2)
}

func TestViewHandlerSetFilterRejectsBadPayload(t *testing.T) {
	env := newTestEnv(t)
	h := NewViewHandler(env.view)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	req := httptest.NewRequest(http.MethodPut, "/students/view/filter", nil)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	h.SetFilter(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
