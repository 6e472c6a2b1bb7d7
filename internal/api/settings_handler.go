package api

import (
	"errors"

	"quanngon-be/internal/settings"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	svc settings.Service
}

func NewSettingsHandler(svc settings.Service) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// Get returns the public view. Bot credentials never leave the server.
func (h *SettingsHandler) Get(c *gin.Context) {
	current, err := h.svc.Get(c.Request.Context())
	if err != nil {
		respServerError(c, err)
		return
	}
	if current == nil {
		respNotFound(c, "settings not configured")
		return
	}
	respOK(c, settings.ToPublic(current))
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var input settings.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, settings.ErrValidation) {
			respBadRequest(c, err.Error())
			return
		}
		respServerError(c, err)
		return
	}
	respOK(c, settings.ToPublic(updated))
}
