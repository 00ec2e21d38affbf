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

func acmeRequest() CustomerRequest {
	return CustomerRequest{
		Name:         "Acme Taproom",
		Email:        pointers.String("buyer@acme.test"),
		PhoneNumber:  pointers.String("555-0100"),
		AddressLine1: "1 Main St",
		AddressLine2: pointers.String("Suite 4"),
		City:         "Austin",
		State:        "TX",
		PostalCode:   "78701",
	}
}

func TestCustomerCRUD(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.customers.Create(ctx, acmeRequest())
	require.NoError(t, err)
	got, err := f.customers.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Acme Taproom", got.Name)
	require.Equal(t, "Suite 4", *got.AddressLine2)

	page, err := f.customers.List(ctx, paging.Request{})
	require.NoError(t, err)
	require.Equal(t, int64(1), page.TotalElements)

	require.NoError(t, f.customers.Delete(ctx, created.ID))
	_, err = f.customers.GetByID(ctx, created.ID)
	agg, ok := domainagg.As(err)
	require.True(t, ok)
	require.Equal(t, "Customer", agg.Resource)
	require.True(t, domainagg.IsCode(f.customers.Delete(ctx, created.ID), domainagg.CodeNotFound))
}

// Customer update clears omitted optional fields; product update keeps them.
func TestCustomerUpdateClearsNullFieldsUnlikeProduct(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, err := f.customers.Create(ctx, acmeRequest())
	require.NoError(t, err)
	req := acmeRequest()
	req.Email = nil
	req.AddressLine2 = nil
	req.PhoneNumber = pointers.String("")
	updatedCustomer, err := f.customers.Update(ctx, c.ID, req)
	require.NoError(t, err)
	require.Nil(t, updatedCustomer.Email)
	require.Nil(t, updatedCustomer.AddressLine2)
	require.Nil(t, updatedCustomer.PhoneNumber)
	require.Equal(t, 1, updatedCustomer.Version)

	p, err := f.products.Create(ctx, ipaRequest("UPC-1"))
	require.NoError(t, err)
	preq := ipaRequest("UPC-1")
	preq.Description = nil
	preq.QuantityOnHand = nil
	updatedProduct, err := f.products.Update(ctx, p.ID, preq)
	require.NoError(t, err)
	require.NotNil(t, updatedProduct.Description)
	require.Equal(t, "hoppy", *updatedProduct.Description)
	require.NotNil(t, updatedProduct.QuantityOnHand)
}

func TestCustomerUpdateFailures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.customers.Update(ctx, uuid.New(), acmeRequest())
	require.True(t, domainagg.IsCode(err, domainagg.CodeNotFound), "got %v", err)

	c, err := f.customers.Create(ctx, acmeRequest())
	require.NoError(t, err)
	bad := acmeRequest()
	bad.City = ""
	_, err = f.customers.Update(ctx, c.ID, bad)
	require.Equal(t, "must not be blank", fieldsOf(t, err)["city"])

	stale := acmeRequest()
	stale.Version = pointers.Int(7)
	_, err = f.customers.Update(ctx, c.ID, stale)
	require.True(t, domainagg.IsCode(err, domainagg.CodeConflict), "got %v", err)
}
