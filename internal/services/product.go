package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/brewery-backend/internal/data/aggregates"
	"github.com/yungbote/brewery-backend/internal/data/cache"
	"github.com/yungbote/brewery-backend/internal/data/repos"
	types "github.com/yungbote/brewery-backend/internal/domain"
	domainagg "github.com/yungbote/brewery-backend/internal/domain/aggregates"
	"github.com/yungbote/brewery-backend/internal/platform/dbctx"
	"github.com/yungbote/brewery-backend/internal/platform/logger"
	"github.com/yungbote/brewery-backend/internal/platform/paging"
)

type ProductFilter = repos.ProductFilter

type ProductService interface {
	Create(ctx context.Context, req ProductRequest) (*ProductResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error)
	List(ctx context.Context, filter ProductFilter, page paging.Request) (*paging.Page[ProductResponse], error)
	// Update applies a full request but keeps stored values for nil optional fields.
	Update(ctx context.Context, id uuid.UUID, req ProductRequest) (*ProductResponse, error)
	Patch(ctx context.Context, id uuid.UUID, patch ProductPatch) (*ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	db    *gorm.DB
	log   *logger.Logger
	base  aggregates.BaseDeps
	repo  repos.ProductRepo
	cache *cache.ProductCache
}

func NewProductService(db *gorm.DB, log *logger.Logger, base aggregates.BaseDeps, repo repos.ProductRepo, productCache *cache.ProductCache) ProductService {
	serviceLog := log.With("service", "ProductService")
	if base.DB == nil {
		base.DB = db
	}
	if base.Log == nil {
		base.Log = serviceLog
	}
	return &productService{
		db:    db,
		log:   serviceLog,
		base:  base,
		repo:  repo,
		cache: productCache,
	}
}

func (s *productService) Create(ctx context.Context, req ProductRequest) (*ProductResponse, error) {
	const op = "Catalog.Product.Create"
	extra := map[string]string{}
	checkMoney(extra, "price", req.Price, true)
	if err := validateRequest(op, req, extra); err != nil {
		return nil, err
	}

	p := productFrom(req)
	err := s.base.Write(ctx, op, func(dbc dbctx.Context) error {
		return s.repo.Create(dbc, p)
	})
	if err != nil {
		return nil, duplicateCode(op, p.Code, err)
	}
	s.log.Info("product created", "product_id", p.ID, "code", p.Code)
	out := ProductResponseFrom(p)
	return &out, nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	const op = "Catalog.Product.Get"
	if p, ok := s.cache.Get(ctx, id); ok {
		out := ProductResponseFrom(p)
		return &out, nil
	}
	p, err := s.repo.GetByID(dbctx.New(ctx), id)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	if p == nil {
		return nil, domainagg.NotFound(op, "Product", id)
	}
	s.cache.Put(ctx, p)
	out := ProductResponseFrom(p)
	return &out, nil
}

func (s *productService) List(ctx context.Context, filter ProductFilter, page paging.Request) (*paging.Page[ProductResponse], error) {
	const op = "Catalog.Product.List"
	page, err := pageRequest(op, page)
	if err != nil {
		return nil, err
	}
	rows, total, err := s.repo.List(dbctx.New(ctx), filter, page)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	out := make([]ProductResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, ProductResponseFrom(p))
	}
	res := paging.NewPage(out, page, total)
	return &res, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req ProductRequest) (*ProductResponse, error) {
	const op = "Catalog.Product.Update"
	extra := map[string]string{}
	checkMoney(extra, "price", req.Price, true)
	if err := validateRequest(op, req, extra); err != nil {
		return nil, err
	}
	return s.apply(ctx, op, id, req.asPatch())
}

func (s *productService) Patch(ctx context.Context, id uuid.UUID, patch ProductPatch) (*ProductResponse, error) {
	const op = "Catalog.Product.Patch"
	extra := map[string]string{}
	checkMoney(extra, "price", patch.Price, true)
	if err := validateRequest(op, patch, extra); err != nil {
		return nil, err
	}
	return s.apply(ctx, op, id, patch)
}

func (s *productService) apply(ctx context.Context, op string, id uuid.UUID, patch ProductPatch) (*ProductResponse, error) {
	var updated *types.Product
	err := s.base.Write(ctx, op, func(dbc dbctx.Context) error {
		p, err := s.repo.GetByID(dbc, id)
		if err != nil {
			return err
		}
		if p == nil {
			return domainagg.NotFound(op, "Product", id)
		}
		if patch.Version != nil {
			if err := aggregates.RequireVersionMatch(p.Version, *patch.Version); err != nil {
				return err
			}
		}
		before := *p
		expected := p.Version
		mergeProduct(p, patch)
		if sameProductFields(&before, p) {
			updated = p
			return nil
		}
		ok, err := s.base.Guard().UpdateByVersion(dbc, p.TableName(), p.ID, expected, productColumns(p))
		if err != nil {
			return err
		}
		if err := aggregates.RequireCASSuccess(ok, "product was modified concurrently"); err != nil {
			return err
		}
		updated, err = s.repo.GetByID(dbc, id)
		return err
	})
	if err != nil {
		code := ""
		if patch.Code != nil {
			code = *patch.Code
		}
		return nil, duplicateCode(op, code, err)
	}
	s.cache.Invalidate(ctx, id)
	out := ProductResponseFrom(updated)
	return &out, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "Catalog.Product.Delete"
	err := s.base.Write(ctx, op, func(dbc dbctx.Context) error {
		ok, err := s.repo.Delete(dbc, id)
		if err != nil {
			return err
		}
		if !ok {
			return domainagg.NotFound(op, "Product", id)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.cache.Invalidate(ctx, id)
	return nil
}

func productFrom(req ProductRequest) *types.Product {
	return &types.Product{
		Name:           req.Name,
		Style:          req.Style,
		Code:           req.Code,
		QuantityOnHand: req.QuantityOnHand,
		Price:          req.Price,
		Description:    req.Description,
	}
}

// mergeProduct overwrites each mutable field whose patch value is non-nil.
// Identity, version and timestamps are never taken from input.
func mergeProduct(dst *types.Product, patch ProductPatch) {
	if patch.Name != nil {
		dst.Name = *patch.Name
	}
	if patch.Style != nil {
		dst.Style = *patch.Style
	}
	if patch.Code != nil {
		dst.Code = *patch.Code
	}
	if patch.QuantityOnHand != nil {
		q := *patch.QuantityOnHand
		dst.QuantityOnHand = &q
	}
	if patch.Price != nil {
		p := *patch.Price
		dst.Price = &p
	}
	if patch.Description != nil {
		d := *patch.Description
		dst.Description = &d
	}
}

func sameProductFields(a, b *types.Product) bool {
	return a.Name == b.Name &&
		a.Style == b.Style &&
		a.Code == b.Code &&
		equalPtr(a.QuantityOnHand, b.QuantityOnHand) &&
		equalPtr(a.Description, b.Description) &&
		((a.Price == nil && b.Price == nil) || (a.Price != nil && b.Price != nil && a.Price.Equal(*b.Price)))
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func productColumns(p *types.Product) map[string]any {
	return map[string]any{
		"name":             p.Name,
		"style":            p.Style,
		"code":             p.Code,
		"quantity_on_hand": p.QuantityOnHand,
		"price":            p.Price,
		"description":      p.Description,
	}
}

func duplicateCode(op, code string, err error) error {
	if !domainagg.IsCode(err, domainagg.CodeDuplicateKey) {
		return err
	}
	return domainagg.NewError(domainagg.CodeDuplicateKey, op, fmt.Sprintf("product code already exists: %s", code), err)
}
