package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	types "github.com/yungbote/brewery-backend/internal/domain"
)

const dateLayout = "2006-01-02"

type ProductResponse struct {
	ID             uuid.UUID `json:"id"`
	Version        int       `json:"version"`
	Name           string    `json:"name"`
	Style          string    `json:"style"`
	Code           string    `json:"code"`
	QuantityOnHand *int      `json:"quantityOnHand"`
	Price          *string   `json:"price"`
	Description    *string   `json:"description"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type CustomerResponse struct {
	ID           uuid.UUID `json:"id"`
	Version      int       `json:"version"`
	Name         string    `json:"name"`
	Email        *string   `json:"email"`
	PhoneNumber  *string   `json:"phoneNumber"`
	AddressLine1 string    `json:"addressLine1"`
	AddressLine2 *string   `json:"addressLine2"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	PostalCode   string    `json:"postalCode"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type OrderResponse struct {
	ID            uuid.UUID      `json:"id"`
	Version       int            `json:"version"`
	CustomerRef   *string        `json:"customerRef"`
	CustomerID    *uuid.UUID     `json:"customerId"`
	PaymentAmount *string        `json:"paymentAmount"`
	Status        string         `json:"status"`
	Lines         []LineResponse `json:"lines"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

type LineResponse struct {
	ProductID         uuid.UUID `json:"productId"`
	Quantity          int       `json:"quantity"`
	AllocatedQuantity int       `json:"allocatedQuantity"`
	Status            string    `json:"status"`
}

type ShipmentResponse struct {
	ID             uuid.UUID `json:"id"`
	Version        int       `json:"version"`
	OrderID        uuid.UUID `json:"orderId"`
	ShipmentDate   string    `json:"shipmentDate"`
	Carrier        *string   `json:"carrier"`
	TrackingNumber *string   `json:"trackingNumber"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func money(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.StringFixed(2)
	return &s
}

func ProductResponseFrom(p *types.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		Version:        p.Version,
		Name:           p.Name,
		Style:          p.Style,
		Code:           p.Code,
		QuantityOnHand: p.QuantityOnHand,
		Price:          money(p.Price),
		Description:    p.Description,
		CreatedAt:      p.CreatedAt.UTC(),
		UpdatedAt:      p.UpdatedAt.UTC(),
	}
}

func CustomerResponseFrom(c *types.Customer) CustomerResponse {
	return CustomerResponse{
		ID:           c.ID,
		Version:      c.Version,
		Name:         c.Name,
		Email:        c.Email,
		PhoneNumber:  c.PhoneNumber,
		AddressLine1: c.AddressLine1,
		AddressLine2: c.AddressLine2,
		City:         c.City,
		State:        c.State,
		PostalCode:   c.PostalCode,
		CreatedAt:    c.CreatedAt.UTC(),
		UpdatedAt:    c.UpdatedAt.UTC(),
	}
}

// OrderResponseFrom always materializes the line slice, empty or not.
func OrderResponseFrom(o *types.Order) OrderResponse {
	lines := make([]LineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, LineResponse{
			ProductID:         l.ProductID,
			Quantity:          l.Quantity,
			AllocatedQuantity: l.QuantityAllocated,
			Status:            string(l.Status),
		})
	}
	var amount *string
	if o.PaymentAmount.Valid {
		amount = money(&o.PaymentAmount.Decimal)
	}
	return OrderResponse{
		ID:            o.ID,
		Version:       o.Version,
		CustomerRef:   o.CustomerRef,
		CustomerID:    o.CustomerID,
		PaymentAmount: amount,
		Status:        string(o.Status),
		Lines:         lines,
		CreatedAt:     o.CreatedAt.UTC(),
		UpdatedAt:     o.UpdatedAt.UTC(),
	}
}

func ShipmentResponseFrom(s *types.Shipment) ShipmentResponse {
	return ShipmentResponse{
		ID:             s.ID,
		Version:        s.Version,
		OrderID:        s.OrderID,
		ShipmentDate:   time.Time(s.ShipmentDate).Format(dateLayout),
		Carrier:        s.Carrier,
		TrackingNumber: s.TrackingNumber,
		CreatedAt:      s.CreatedAt.UTC(),
		UpdatedAt:      s.UpdatedAt.UTC(),
	}
}
