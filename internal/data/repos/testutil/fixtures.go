package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/yungbote/brewery-backend/internal/domain"
)

func SeedProduct(tb testing.TB, ctx context.Context, tx *gorm.DB, name, style, code string) *types.Product {
	tb.Helper()
	qty := 12
	price := decimal.RequireFromString("5.99")
	p := &types.Product{
		Name:           name,
		Style:          style,
		Code:           code,
		QuantityOnHand: &qty,
		Price:          &price,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed product: %v", err)
	}
	return p
}

func SeedCustomer(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Customer {
	tb.Helper()
	email := "buyer@example.com"
	c := &types.Customer{
		Name:         name,
		Email:        &email,
		AddressLine1: "1 Main St",
		City:         "Austin",
		State:        "TX",
		PostalCode:   "78701",
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed customer: %v", err)
	}
	return c
}

// SeedOrder writes an order with one line per product, quantity 1 each.
func SeedOrder(tb testing.TB, ctx context.Context, tx *gorm.DB, productIDs ...uuid.UUID) *types.Order {
	tb.Helper()
	o := &types.Order{ID: uuid.New(), Status: types.OrderStatusNew}
	for _, pid := range productIDs {
		o.AddLine(types.Line{ProductID: pid, Quantity: 1, Status: types.LineStatusNew})
	}
	if err := tx.WithContext(ctx).Create(o).Error; err != nil {
		tb.Fatalf("seed order: %v", err)
	}
	return o
}

func SeedShipment(tb testing.TB, ctx context.Context, tx *gorm.DB, orderID uuid.UUID, tracking string) *types.Shipment {
	tb.Helper()
	carrier := "UPS"
	s := &types.Shipment{
		OrderID:        orderID,
		ShipmentDate:   datatypes.Date(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
		Carrier:        &carrier,
		TrackingNumber: &tracking,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed shipment: %v", err)
	}
	return s
}

func PtrUUID(v uuid.UUID) *uuid.UUID { return &v }
