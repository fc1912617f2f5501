package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nayan1809/SMD/internal/service"
	"github.com/Nayan1809/SMD/pkg/response"
)

// ToastHandler exposes the notification queue.
type ToastHandler struct {
	toasts *service.ToastService
}

// NewToastHandler constructs ToastHandler.
func NewToastHandler(toasts *service.ToastService) *ToastHandler {
	return &ToastHandler{toasts: toasts}
}

// List godoc
// @Summary Pending notifications in insertion order
// @Tags Toasts
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /toasts [get]
func (h *ToastHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.toasts.List(), nil)
}

// Remove godoc
// @Summary Dismiss a notification
// @Description Idempotent: dismissing an unknown id is a no-op.
// @Tags Toasts
// @Param id path string true "Toast ID"
// @Success 204
// @Router /toasts/{id} [delete]
func (h *ToastHandler) Remove(c *gin.Context) {
	h.toasts.Remove(c.Param("id"))
	response.NoContent(c)
}
