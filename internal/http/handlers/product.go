package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/brewery-backend/internal/http/response"
	"github.com/yungbote/brewery-backend/internal/platform/logger"
	"github.com/yungbote/brewery-backend/internal/services"
)

type ProductHandler struct {
	log      *logger.Logger
	products services.ProductService
}

func NewProductHandler(log *logger.Logger, products services.ProductService) *ProductHandler {
	return &ProductHandler{log: log.With("handler", "ProductHandler"), products: products}
}

// POST /api/v1/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req services.ProductRequest
	if err := bindJSON(c, &req); err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	out, err := h.products.Create(c.Request.Context(), req)
	if err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	response.RespondCreated(c, apiBase+"/products/"+out.ID.String(), out)
}

// GET /api/v1/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	out, err := h.products.GetByID(c.Request.Context(), id)
	if err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /api/v1/products?name=&style=&page=&size=
func (h *ProductHandler) List(c *gin.Context) {
	page, err := pageFromQuery(c)
	if err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	filter := services.ProductFilter{Name: c.Query("name"), Style: c.Query("style")}
	out, err := h.products.List(c.Request.Context(), filter, page)
	if err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	response.RespondOK(c, out)
}

// PUT /api/v1/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	var req services.ProductRequest
	if err := bindJSON(c, &req); err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	out, err := h.products.Update(c.Request.Context(), id, req)
	if err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	response.RespondOK(c, out)
}

// PATCH /api/v1/products/:id
func (h *ProductHandler) Patch(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	var patch services.ProductPatch
	if err := bindJSON(c, &patch); err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	out, err := h.products.Patch(c.Request.Context(), id, patch)
	if err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	response.RespondOK(c, out)
}

// DELETE /api/v1/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	response.RespondNoContent(c)
}
