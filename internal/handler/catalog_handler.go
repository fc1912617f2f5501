package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nayan1809/SMD/internal/models"
	"github.com/Nayan1809/SMD/pkg/response"
)

type catalogFetcher interface {
	Fetch(ctx context.Context) ([]models.Course, error)
}

// CatalogHandler exposes the read-only course catalog.
type CatalogHandler struct {
	catalog catalogFetcher
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(catalog catalogFetcher) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// List godoc
// @Summary Fetch the course catalog
// @Description Subject to a simulated delay and a small transient failure
// @Description rate; a 503 is retriable by repeating the request.
// @Tags Courses
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Router /courses [get]
func (h *CatalogHandler) List(c *gin.Context) {
	courses, err := h.catalog.Fetch(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses, nil)
}
