package api

import (
	"errors"
	"time"

	"quanngon-be/internal/logger"
	"quanngon-be/internal/order"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	svc order.Service
}

func NewOrderHandler(svc order.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var input order.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	created, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respCreated(c, order.ToAPIOrder(created))
}

func (h *OrderHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		respBadRequest(c, err.Error())
		return
	}

	orders, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respOK(c, order.ToAPIOrders(orders))
}

func (h *OrderHandler) GetByID(c *gin.Context) {
	o, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	if o == nil {
		respNotFound(c, "order not found")
		return
	}
	respOK(c, order.ToAPIOrder(o))
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var body struct {
		Status order.Status `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	updated, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), body.Status)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respOK(c, order.ToAPIOrder(updated))
}

func (h *OrderHandler) Delete(c *gin.Context) {
	deleted, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	respOK(c, order.ToAPIOrder(deleted))
}

func (h *OrderHandler) Stats(c *gin.Context) {
	from, err := parseDateParam(c.Query("fromDate"), false)
	if err != nil {
		respBadRequest(c, "invalid fromDate")
		return
	}
	to, err := parseDateParam(c.Query("toDate"), true)
	if err != nil {
		respBadRequest(c, "invalid toDate")
		return
	}

	stats, err := h.svc.Stats(c.Request.Context(), from, to)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respOK(c, stats)
}

func (h *OrderHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, order.ErrValidation):
		respBadRequest(c, err.Error())
	case errors.Is(err, order.ErrOrderNotFound):
		respNotFound(c, err.Error())
	case errors.Is(err, order.ErrInvalidTransition), errors.Is(err, order.ErrOrderNotDeletable):
		respConflict(c, err.Error())
	default:
		logger.FromCtx(c.Request.Context()).Error("order request failed", zap.Error(err))
		respServerError(c, err)
	}
}

func parseFilter(c *gin.Context) (order.Filter, error) {
	var filter order.Filter

	if raw := c.Query("status"); raw != "" {
		status := order.Status(raw)
		if !order.ValidStatus(status) {
			return filter, errors.New("unknown status filter")
		}
		filter.Status = &status
	}
	if raw := c.Query("typeOrder"); raw != "" {
		typ := order.Type(raw)
		if !order.ValidType(typ) {
			return filter, errors.New("unknown typeOrder filter")
		}
		filter.TypeOrder = &typ
	}

	from, err := parseDateParam(c.Query("fromDate"), false)
	if err != nil {
		return filter, errors.New("invalid fromDate")
	}
	to, err := parseDateParam(c.Query("toDate"), true)
	if err != nil {
		return filter, errors.New("invalid toDate")
	}
	filter.FromDate = from
	filter.ToDate = to

	return filter, nil
}

// parseDateParam accepts RFC 3339 or a bare calendar date. A bare date used
// as an upper bound covers the whole day.
func parseDateParam(raw string, endOfDay bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return &ts, nil
	}

	ts, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		ts = ts.Add(24*time.Hour - time.Nanosecond)
	}
	return &ts, nil
}
