package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/brewery-backend/internal/http/response"
	"github.com/yungbote/brewery-backend/internal/platform/logger"
	"github.com/yungbote/brewery-backend/internal/services"
)

type CustomerHandler struct {
	log       *logger.Logger
	customers services.CustomerService
}

func NewCustomerHandler(log *logger.Logger, customers services.CustomerService) *CustomerHandler {
	return &CustomerHandler{log: log.With("handler", "CustomerHandler"), customers: customers}
}

// POST /api/v1/customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var req services.CustomerRequest
	if err := bindJSON(c, &req); err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	out, err := h.customers.Create(c.Request.Context(), req)
	if err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	response.RespondCreated(c, apiBase+"/customers/"+out.ID.String(), out)
}

// GET /api/v1/customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	out, err := h.customers.GetByID(c.Request.Context(), id)
	if err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /api/v1/customers
func (h *CustomerHandler) List(c *gin.Context) {
	page, err := pageFromQuery(c)
	if err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	out, err := h.customers.List(c.Request.Context(), page)
	if err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	response.RespondOK(c, out)
}

// PUT /api/v1/customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	var req services.CustomerRequest
	if err := bindJSON(c, &req); err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	out, err := h.customers.Update(c.Request.Context(), id, req)
	if err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	response.RespondOK(c, out)
}

// DELETE /api/v1/customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	if err := h.customers.Delete(c.Request.Context(), id); err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	response.RespondNoContent(c)
}
