package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/brewery-backend/internal/http/response"
	"github.com/yungbote/brewery-backend/internal/platform/logger"
	"github.com/yungbote/brewery-backend/internal/services"
)

// Shipment routes nest under /orders/:id, so the order id is the "id" param.
type ShipmentHandler struct {
	log       *logger.Logger
	shipments services.ShipmentService
}

func NewShipmentHandler(log *logger.Logger, shipments services.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{log: log.With("handler", "ShipmentHandler"), shipments: shipments}
}

func shipmentLocation(orderID, shipmentID uuid.UUID) string {
	return apiBase + "/orders/" + orderID.String() + "/shipments/" + shipmentID.String()
}

func parseShipmentPath(c *gin.Context) (uuid.UUID, uuid.UUID, error) {
	orderID, err := parseID(c, "id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	shipmentID, err := parseID(c, "shipmentId")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return orderID, shipmentID, nil
}

// POST /api/v1/orders/:id/shipments
func (h *ShipmentHandler) Create(c *gin.Context) {
	orderID, err := parseID(c, "id")
	if err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	var req services.ShipmentRequest
	if err := bindJSON(c, &req); err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	out, err := h.shipments.Create(c.Request.Context(), orderID, req)
	if err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	response.RespondCreated(c, shipmentLocation(orderID, out.ID), out)
}

// GET /api/v1/orders/:id/shipments/:shipmentId
func (h *ShipmentHandler) Get(c *gin.Context) {
	orderID, shipmentID, err := parseShipmentPath(c)
	if err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	out, err := h.shipments.GetByID(c.Request.Context(), orderID, shipmentID)
	if err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /api/v1/orders/:id/shipments
func (h *ShipmentHandler) List(c *gin.Context) {
	orderID, err := parseID(c, "id")
	if err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	page, err := pageFromQuery(c)
	if err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	out, err := h.shipments.List(c.Request.Context(), orderID, page)
	if err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	response.RespondOK(c, out)
}

// PUT /api/v1/orders/:id/shipments/:shipmentId
func (h *ShipmentHandler) Update(c *gin.Context) {
	orderID, shipmentID, err := parseShipmentPath(c)
	if err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	var req services.ShipmentRequest
	if err := bindJSON(c, &req); err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	out, err := h.shipments.Update(c.Request.Context(), orderID, shipmentID, req)
	if err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	response.RespondOK(c, out)
}

// DELETE /api/v1/orders/:id/shipments/:shipmentId
func (h *ShipmentHandler) Delete(c *gin.Context) {
	orderID, shipmentID, err := parseShipmentPath(c)
	if err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	if err := h.shipments.Delete(c.Request.Context(), orderID, shipmentID); err != nil {
		response.RespondProblem(c, h.log, err)
		return
	}
	response.RespondNoContent(c)
}
