package services

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductRequest is the full create/update payload. Version, when set on
// update, must match the stored version.
type ProductRequest struct {
	Version        *int             `json:"version,omitempty" validate:"omitnil,gte=0"`
	Name           string           `json:"name" validate:"notblank,max=255"`
	Style          string           `json:"style" validate:"notblank,max=255"`
	Code           string           `json:"code" validate:"notblank,max=255"`
	QuantityOnHand *int             `json:"quantityOnHand" validate:"omitnil,gte=0"`
	Price          *decimal.Decimal `json:"price" validate:"-"`
	Description    *string          `json:"description"`
}

// ProductPatch carries only the fields to change; nil means keep.
type ProductPatch struct {
	Version        *int             `json:"version,omitempty" validate:"omitnil,gte=0"`
	Name           *string          `json:"name" validate:"omitnil,notblank,max=255"`
	Style          *string          `json:"style" validate:"omitnil,notblank,max=255"`
	Code           *string          `json:"code" validate:"omitnil,notblank,max=255"`
	QuantityOnHand *int             `json:"quantityOnHand" validate:"omitnil,gte=0"`
	Price          *decimal.Decimal `json:"price" validate:"-"`
	Description    *string          `json:"description"`
}

func (r ProductRequest) asPatch() ProductPatch {
	return ProductPatch{
		Version:        r.Version,
		Name:           &r.Name,
		Style:          &r.Style,
		Code:           &r.Code,
		QuantityOnHand: r.QuantityOnHand,
		Price:          r.Price,
		Description:    r.Description,
	}
}

type CustomerRequest struct {
	Version      *int    `json:"version,omitempty" validate:"omitnil,gte=0"`
	Name         string  `json:"name" validate:"notblank,max=255"`
	Email        *string `json:"email" validate:"omitempty,max=255,email"`
	PhoneNumber  *string `json:"phoneNumber" validate:"omitempty,max=40"`
	AddressLine1 string  `json:"addressLine1" validate:"notblank,max=255"`
	AddressLine2 *string `json:"addressLine2" validate:"omitempty,max=255"`
	City         string  `json:"city" validate:"notblank,max=100"`
	State        string  `json:"state" validate:"notblank,max=100"`
	PostalCode   string  `json:"postalCode" validate:"notblank,max=20"`
}

type CreateOrderRequest struct {
	CustomerRef   *string              `json:"customerRef" validate:"omitempty,max=64"`
	CustomerID    *uuid.UUID           `json:"customerId"`
	PaymentAmount *decimal.Decimal     `json:"paymentAmount" validate:"-"`
	Lines         []CreateOrderLineReq `json:"lines" validate:"dive"`
}

type CreateOrderLineReq struct {
	ProductID *uuid.UUID `json:"productId" validate:"required"`
	Quantity  *int       `json:"quantity" validate:"required,gt=0"`
}

// ShipmentRequest is used for create and full update. ShipmentDate is YYYY-MM-DD.
type ShipmentRequest struct {
	Version        *int    `json:"version,omitempty" validate:"omitnil,gte=0"`
	ShipmentDate   string  `json:"shipmentDate" validate:"required,datetime=2006-01-02"`
	Carrier        *string `json:"carrier" validate:"omitempty,max=100"`
	TrackingNumber *string `json:"trackingNumber" validate:"omitempty,max=120"`
}
