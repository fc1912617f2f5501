package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nayan1809/SMD/internal/service"
	appErrors "github.com/Nayan1809/SMD/pkg/errors"
	"github.com/Nayan1809/SMD/pkg/response"
)

// PreferenceHandler exposes the display preference.
type PreferenceHandler struct {
	preferences *service.PreferenceService
}

// NewPreferenceHandler constructs PreferenceHandler.
func NewPreferenceHandler(preferences *service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferences: preferences}
}

type darkModeRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

type darkModeResponse struct {
	Enabled bool `json:"enabled"`
}

// Get godoc
// @Summary Current dark-mode preference
// @Tags Preferences
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /preferences/dark-mode [get]
func (h *PreferenceHandler) Get(c *gin.Context) {
	response.JSON(c, http.StatusOK, darkModeResponse{Enabled: h.preferences.DarkMode()}, nil)
}

// Set godoc
// @Summary Update the dark-mode preference
// @Tags Preferences
// @Accept json
// @Produce json
// @Param payload body darkModeRequest true "Preference"
// @Success 200 {object} response.Envelope
// @Router /preferences/dark-mode [put]
func (h *PreferenceHandler) Set(c *gin.Context) {
	var req darkModeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Enabled == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "enabled is required"))
		return
	}
	enabled := h.preferences.SetDarkMode(*req.Enabled)
	response.JSON(c, http.StatusOK, darkModeResponse{Enabled: enabled}, nil)
}
