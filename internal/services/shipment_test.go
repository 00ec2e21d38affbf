package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	domainagg "github.com/yungbote/brewery-backend/internal/domain/aggregates"
	"github.com/yungbote/brewery-backend/internal/platform/paging"
	"github.com/yungbote/brewery-backend/internal/platform/pointers"
)

func newOrder(t *testing.T, f fixture, code string) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	p, err := f.products.Create(ctx, ipaRequest(code))
	require.NoError(t, err)
	o, err := f.orders.Create(ctx, CreateOrderRequest{Lines: []CreateOrderLineReq{orderLine(p.ID, 1)}})
	require.NoError(t, err)
	return o.ID
}

func TestShipmentUpdateTrackingNumber(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	orderID := newOrder(t, f, "UPC-1")

	created, err := f.shipments.Create(ctx, orderID, ShipmentRequest{
		ShipmentDate:   "2024-05-01",
		Carrier:        pointers.String("UPS"),
		TrackingNumber: pointers.String("TN"),
	})
	require.NoError(t, err)
	require.Equal(t, "2024-05-01", created.ShipmentDate)

	_, err = f.shipments.Update(ctx, orderID, created.ID, ShipmentRequest{
		ShipmentDate:   "2024-05-01",
		Carrier:        pointers.String("UPS"),
		TrackingNumber: pointers.String("UPDATED-TN"),
	})
	require.NoError(t, err)

	got, err := f.shipments.GetByID(ctx, orderID, created.ID)
	require.NoError(t, err)
	require.Equal(t, "UPDATED-TN", *got.TrackingNumber)
	require.Equal(t, "UPS", *got.Carrier)
	require.Equal(t, "2024-05-01", got.ShipmentDate)
	require.Equal(t, orderID, got.OrderID)
	require.Equal(t, created.Version+1, got.Version)
}

func TestShipmentScopedToOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	orderA := newOrder(t, f, "UPC-A")
	orderB := newOrder(t, f, "UPC-B")

	shipB, err := f.shipments.Create(ctx, orderB, ShipmentRequest{ShipmentDate: "2024-06-01"})
	require.NoError(t, err)

	_, err = f.shipments.GetByID(ctx, orderA, shipB.ID)
	require.True(t, domainagg.IsCode(err, domainagg.CodeNotFound), "got %v", err)
	_, err = f.shipments.Update(ctx, orderA, shipB.ID, ShipmentRequest{ShipmentDate: "2024-06-02"})
	require.True(t, domainagg.IsCode(err, domainagg.CodeNotFound), "got %v", err)
	err = f.shipments.Delete(ctx, orderA, shipB.ID)
	require.True(t, domainagg.IsCode(err, domainagg.CodeNotFound), "got %v", err)

	page, err := f.shipments.List(ctx, orderA, paging.Request{})
	require.NoError(t, err)
	require.Empty(t, page.Content)

	page, err = f.shipments.List(ctx, orderB, paging.Request{})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)

	require.NoError(t, f.shipments.Delete(ctx, orderB, shipB.ID))
	_, err = f.shipments.GetByID(ctx, orderB, shipB.ID)
	require.True(t, domainagg.IsCode(err, domainagg.CodeNotFound))
}

func TestShipmentUnknownOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	missing := uuid.New()

	_, err := f.shipments.Create(ctx, missing, ShipmentRequest{ShipmentDate: "2024-05-01"})
	agg, ok := domainagg.As(err)
	require.True(t, ok)
	require.Equal(t, domainagg.CodeNotFound, agg.Code)
	require.Equal(t, "Order", agg.Resource)

	_, err = f.shipments.List(ctx, missing, paging.Request{})
	require.True(t, domainagg.IsCode(err, domainagg.CodeNotFound))
}

func TestShipmentValidation(t *testing.T) {
	f := newFixture(t)
	orderID := newOrder(t, f, "UPC-1")
	_, err := f.shipments.Create(context.Background(), orderID, ShipmentRequest{ShipmentDate: "2024-13-40"})
	require.Contains(t, fieldsOf(t, err), "shipmentDate")
}
