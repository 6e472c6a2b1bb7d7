package api

import (
	"errors"
	"strconv"

	"quanngon-be/internal/menu"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	svc menu.Service
}

func NewMenuHandler(svc menu.Service) *MenuHandler {
	return &MenuHandler{svc: svc}
}

func (h *MenuHandler) ListCategories(c *gin.Context) {
	categories, err := h.svc.ListCategories(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	respOK(c, categories)
}

func (h *MenuHandler) CreateCategory(c *gin.Context) {
	var input menu.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	created, err := h.svc.CreateCategory(c.Request.Context(), input)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respCreated(c, created)
}

func (h *MenuHandler) UpdateCategory(c *gin.Context) {
	var input menu.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	updated, err := h.svc.UpdateCategory(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respOK(c, updated)
}

func (h *MenuHandler) DeleteCategory(c *gin.Context) {
	if err := h.svc.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	respOK(c, gin.H{"deleted": true})
}

func (h *MenuHandler) ListItems(c *gin.Context) {
	var filter menu.ItemFilter
	if raw := c.Query("category"); raw != "" {
		filter.Category = &raw
	}
	if raw := c.Query("available"); raw != "" {
		avail, err := strconv.ParseBool(raw)
		if err != nil {
			respBadRequest(c, "invalid available filter")
			return
		}
		filter.AvailableOnly = avail
	}

	items, err := h.svc.ListItems(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respOK(c, items)
}

func (h *MenuHandler) GetItem(c *gin.Context) {
	item, err := h.svc.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	if item == nil {
		respNotFound(c, "menu item not found")
		return
	}
	respOK(c, item)
}

func (h *MenuHandler) CreateItem(c *gin.Context) {
	var input menu.ItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	created, err := h.svc.CreateItem(c.Request.Context(), input)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respCreated(c, created)
}

func (h *MenuHandler) UpdateItem(c *gin.Context) {
	var input menu.ItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	updated, err := h.svc.UpdateItem(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respOK(c, updated)
}

func (h *MenuHandler) DeleteItem(c *gin.Context) {
	if err := h.svc.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	respOK(c, gin.H{"deleted": true})
}

func (h *MenuHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, menu.ErrValidation):
		respBadRequest(c, err.Error())
	case errors.Is(err, menu.ErrCategoryNotFound), errors.Is(err, menu.ErrItemNotFound):
		respNotFound(c, err.Error())
	default:
		respServerError(c, err)
	}
}
