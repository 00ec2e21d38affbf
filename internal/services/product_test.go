package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	domainagg "github.com/yungbote/brewery-backend/internal/domain/aggregates"
	"github.com/yungbote/brewery-backend/internal/platform/paging"
	"github.com/yungbote/brewery-backend/internal/platform/pointers"
)

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func ipaRequest(code string) ProductRequest {
	return ProductRequest{
		Name:           "IPA",
		Style:          "IPA",
		Code:           code,
		QuantityOnHand: pointers.Int(24),
		Price:          decimalPtr("5.99"),
		Description:    pointers.String("hoppy"),
	}
}

func TestProductCreateAndGet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.products.Create(ctx, ipaRequest("UPC-1"))
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)
	require.Equal(t, 0, created.Version)
	require.Equal(t, "5.99", *created.Price)
	require.False(t, created.CreatedAt.IsZero())

	got, err := f.products.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Code, got.Code)
	require.Equal(t, 1, f.store.Len(), "first read should populate the cache")

	_, err = f.products.GetByID(ctx, uuid.New())
	agg, ok := domainagg.As(err)
	require.True(t, ok)
	require.Equal(t, domainagg.CodeNotFound, agg.Code)
	require.Equal(t, "Product", agg.Resource)
}

func TestProductCreateDuplicateCode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.products.Create(ctx, ipaRequest("UPC-DUP"))
	require.NoError(t, err)
	_, err = f.products.Create(ctx, ipaRequest("UPC-DUP"))
	agg, ok := domainagg.As(err)
	require.True(t, ok, "expected classified error, got %v", err)
	require.Equal(t, domainagg.CodeDuplicateKey, agg.Code)
	require.Contains(t, agg.Message, "UPC-DUP")
}

func TestProductCreateValidation(t *testing.T) {
	f := newFixture(t)
	req := ipaRequest("")
	req.Price = decimalPtr("0")
	_, err := f.products.Create(context.Background(), req)
	fields := fieldsOf(t, err)
	require.Equal(t, "must not be blank", fields["code"])
	require.Equal(t, "must be greater than 0", fields["price"])
}

func TestProductUpdateSkipsNullFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.products.Create(ctx, ipaRequest("UPC-1"))
	require.NoError(t, err)

	updated, err := f.products.Update(ctx, created.ID, ProductRequest{
		Name:  "Hazy IPA",
		Style: "NEIPA",
		Code:  "UPC-1",
	})
	require.NoError(t, err)
	require.Equal(t, "Hazy IPA", updated.Name)
	require.Equal(t, "NEIPA", updated.Style)
	require.Equal(t, 24, *updated.QuantityOnHand, "omitted quantity keeps stored value")
	require.Equal(t, "5.99", *updated.Price)
	require.Equal(t, "hoppy", *updated.Description)
	require.Equal(t, 1, updated.Version)
	require.Equal(t, 0, f.store.Len(), "update should invalidate the cache entry")
}

func TestProductUpdateVersionConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.products.Create(ctx, ipaRequest("UPC-1"))
	require.NoError(t, err)

	req := ipaRequest("UPC-1")
	req.Version = pointers.Int(0)
	_, err = f.products.Update(ctx, created.ID, req)
	require.NoError(t, err)

	req.Name = "Stale write"
	_, err = f.products.Update(ctx, created.ID, req)
	require.True(t, domainagg.IsCode(err, domainagg.CodeConflict), "got %v", err)
	require.Len(t, f.hooks.Conflicts, 1)

	_, err = f.products.Update(ctx, uuid.New(), ipaRequest("UPC-X"))
	require.True(t, domainagg.IsCode(err, domainagg.CodeNotFound), "got %v", err)
	require.Equal(t, []string{"success", "conflict", "not_found"}, f.hooks.Statuses("Catalog.Product.Update"))
}

func TestProductUpdateDuplicateCode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.products.Create(ctx, ipaRequest("UPC-1"))
	require.NoError(t, err)
	second, err := f.products.Create(ctx, ipaRequest("UPC-2"))
	require.NoError(t, err)

	_, err = f.products.Update(ctx, second.ID, ipaRequest("UPC-1"))
	require.True(t, domainagg.IsCode(err, domainagg.CodeDuplicateKey), "got %v", err)
}

func TestProductPatchIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.products.Create(ctx, ipaRequest("UPC-1"))
	require.NoError(t, err)

	patch := ProductPatch{Price: decimalPtr("6.49"), Description: pointers.String("citrus")}
	once, err := f.products.Patch(ctx, created.ID, patch)
	require.NoError(t, err)
	twice, err := f.products.Patch(ctx, created.ID, patch)
	require.NoError(t, err)

	require.Equal(t, "6.49", *twice.Price)
	require.Equal(t, "citrus", *twice.Description)
	require.Equal(t, "IPA", twice.Name)
	require.Equal(t, 24, *twice.QuantityOnHand)
	require.Equal(t, once.Version, twice.Version, "repeated patch leaves the row untouched")

	_, err = f.products.Patch(ctx, created.ID, ProductPatch{QuantityOnHand: pointers.Int(-3)})
	fields := fieldsOf(t, err)
	require.Contains(t, fields, "quantityOnHand")
}

func TestProductDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.products.Create(ctx, ipaRequest("UPC-1"))
	require.NoError(t, err)
	_, err = f.products.GetByID(ctx, created.ID)
	require.NoError(t, err)

	require.NoError(t, f.products.Delete(ctx, created.ID))
	require.Equal(t, 0, f.store.Len())
	_, err = f.products.GetByID(ctx, created.ID)
	require.True(t, domainagg.IsCode(err, domainagg.CodeNotFound))

	err = f.products.Delete(ctx, created.ID)
	require.True(t, domainagg.IsCode(err, domainagg.CodeNotFound))
}

func TestProductList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for i, row := range []struct{ name, style string }{
		{"Galaxy IPA", "IPA"},
		{"Mosaic Session", "IPA"},
		{"Dry Stout", "STOUT"},
	} {
		req := ipaRequest("UPC-" + string(rune('A'+i)))
		req.Name, req.Style = row.name, row.style
		_, err := f.products.Create(ctx, req)
		require.NoError(t, err)
	}

	page, err := f.products.List(ctx, ProductFilter{Style: "ipa"}, paging.Request{Size: 1})
	require.NoError(t, err)
	require.Equal(t, int64(2), page.TotalElements)
	require.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Content, 1)

	page, err = f.products.List(ctx, ProductFilter{Name: "STOUT"}, paging.Request{})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	require.Equal(t, "Dry Stout", page.Content[0].Name)

	_, err = f.products.List(ctx, ProductFilter{}, paging.Request{Page: -1})
	require.True(t, domainagg.IsCode(err, domainagg.CodeValidation))
}

func TestMergeProduct(t *testing.T) {
	p := productFrom(ipaRequest("UPC-1"))
	mergeProduct(p, ProductPatch{Name: pointers.String("Renamed")})
	require.Equal(t, "Renamed", p.Name)
	require.Equal(t, "IPA", p.Style)
	require.Equal(t, "hoppy", *p.Description)
	require.True(t, p.Price.Equal(decimal.RequireFromString("5.99")))

	mergeProduct(p, ProductPatch{QuantityOnHand: pointers.Int(0), Description: pointers.String("")})
	require.Equal(t, 0, *p.QuantityOnHand)
	require.Equal(t, "", *p.Description)
	require.Equal(t, "Renamed", p.Name)
}
