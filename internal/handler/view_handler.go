package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Nayan1809/SMD/internal/models"
	"github.com/Nayan1809/SMD/internal/service"
	appErrors "github.com/Nayan1809/SMD/pkg/errors"
	"github.com/Nayan1809/SMD/pkg/response"
)

// ViewHandler exposes the student table view: the current page slice plus
// the filter/sort/page mutations that drive it.
type ViewHandler struct {
	view *service.ViewService
}

// NewViewHandler constructs ViewHandler.
func NewViewHandler(view *service.ViewService) *ViewHandler {
	return &ViewHandler{view: view}
}

type sortRequest struct {
	Field     string `json:"field" binding:"required"`
	Direction string `json:"direction"`
}

type pageRequest struct {
	Page int `json:"page" binding:"required"`
}

// List godoc
// @Summary Current page of the student table
// @Tags Students
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /students [get]
func (h *ViewHandler) List(c *gin.Context) {
	h.respond(c)
}

// SetFilter godoc
// @Summary Replace the view filter
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body models.FilterOptions true "Filter specification"
// @Success 200 {object} response.Envelope
// @Router /students/view/filter [put]
func (h *ViewHandler) SetFilter(c *gin.Context) {
	var req models.FilterOptions
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	h.view.SetFilter(req)
	h.respond(c)
}

// SetSort godoc
// @Summary Designate the view sort field and direction
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body sortRequest true "Sort specification"
// @Success 200 {object} response.Envelope
// @Router /students/view/sort [put]
func (h *ViewHandler) SetSort(c *gin.Context) {
	var req sortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	h.view.SetSort(req.Field, req.Direction)
	h.respond(c)
}

// SetPage godoc
// @Summary Move to a page of the view
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body pageRequest true "Page number (1-based)"
// @Success 200 {object} response.Envelope
// @Router /students/view/page [put]
func (h *ViewHandler) SetPage(c *gin.Context) {
	var req pageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// also accept ?page=N for convenience
		if page, convErr := strconv.Atoi(c.Query("page")); convErr == nil {
			req.Page = page
		} else {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
			return
		}
	}
	h.view.SetPage(req.Page)
	h.respond(c)
}

func (h *ViewHandler) respond(c *gin.Context) {
	page, pagination := h.view.Slice()
	filter, sortSpec, _ := h.view.State()
	meta := map[string]interface{}{
		"filter": filter,
		"sort":   sortSpec,
	}
	response.JSON(c, http.StatusOK, page, &pagination, meta)
}
