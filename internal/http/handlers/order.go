package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/brewery-backend/internal/http/response"
	"github.com/yungbote/brewery-backend/internal/platform/logger"
	"github.com/yungbote/brewery-backend/internal/services"
)

type OrderHandler struct {
	log    *logger.Logger
	orders services.OrderService
}

func NewOrderHandler(log *logger.Logger, orders services.OrderService) *OrderHandler {
	return &OrderHandler{log: log.With("handler", "OrderHandler"), orders: orders}
}

// POST /api/v1/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := bindJSON(c, &req); err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	out, err := h.orders.Create(c.Request.Context(), req)
	if err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	response.RespondCreated(c, apiBase+"/orders/"+out.ID.String(), out)
}

// GET /api/v1/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	out, err := h.orders.GetByID(c.Request.Context(), id)
	if err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /api/v1/orders
func (h *OrderHandler) List(c *gin.Context) {
	page, err := pageFromQuery(c)
	if err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	out, err := h.orders.List(c.Request.Context(), page)
	if err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	response.RespondOK(c, out)
}
