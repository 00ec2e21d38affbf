package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/brewery-backend/internal/data/aggregates"
	"github.com/yungbote/brewery-backend/internal/data/repos"
	types "github.com/yungbote/brewery-backend/internal/domain"
	domainagg "github.com/yungbote/brewery-backend/internal/domain/aggregates"
	"github.com/yungbote/brewery-backend/internal/platform/dbctx"
	"github.com/yungbote/brewery-backend/internal/platform/logger"
	"github.com/yungbote/brewery-backend/internal/platform/paging"
)

type CustomerService interface {
	Create(ctx context.Context, req CustomerRequest) (*CustomerResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CustomerResponse, error)
	List(ctx context.Context, page paging.Request) (*paging.Page[CustomerResponse], error)
	// Update replaces every field; nil or blank optional fields clear the stored value.
	Update(ctx context.Context, id uuid.UUID, req CustomerRequest) (*CustomerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerService struct {
	db   *gorm.DB
	log  *logger.Logger
	base aggregates.BaseDeps
	repo repos.CustomerRepo
}

func NewCustomerService(db *gorm.DB, log *logger.Logger, base aggregates.BaseDeps, repo repos.CustomerRepo) CustomerService {
	serviceLog := log.With("service", "CustomerService")
	if base.DB == nil {
		base.DB = db
	}
	if base.Log == nil {
		base.Log = serviceLog
	}
	return &customerService{db: db, log: serviceLog, base: base, repo: repo}
}

func (s *customerService) Create(ctx context.Context, req CustomerRequest) (*CustomerResponse, error) {
	const op = "Directory.Customer.Create"
	if err := validateRequest(op, req, nil); err != nil {
		return nil, err
	}
	c := &types.Customer{}
	applyCustomer(c, req)
	err := s.base.Write(ctx, op, func(dbc dbctx.Context) error {
		return s.repo.Create(dbc, c)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("customer created", "customer_id", c.ID)
	out := CustomerResponseFrom(c)
	return &out, nil
}

func (s *customerService) GetByID(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	const op = "Directory.Customer.Get"
	c, err := s.repo.GetByID(dbctx.New(ctx), id)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	if c == nil {
		return nil, domainagg.NotFound(op, "Customer", id)
	}
	out := CustomerResponseFrom(c)
	return &out, nil
}

func (s *customerService) List(ctx context.Context, page paging.Request) (*paging.Page[CustomerResponse], error) {
	const op = "Directory.Customer.List"
	page, err := pageRequest(op, page)
	if err != nil {
		return nil, err
	}
	rows, total, err := s.repo.List(dbctx.New(ctx), page)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	out := make([]CustomerResponse, 0, len(rows))
	for _, c := range rows {
		out = append(out, CustomerResponseFrom(c))
	}
	res := paging.NewPage(out, page, total)
	return &res, nil
}

func (s *customerService) Update(ctx context.Context, id uuid.UUID, req CustomerRequest) (*CustomerResponse, error) {
	const op = "Directory.Customer.Update"
	if err := validateRequest(op, req, nil); err != nil {
		return nil, err
	}
	var updated *types.Customer
	err := s.base.Write(ctx, op, func(dbc dbctx.Context) error {
		c, err := s.repo.GetByID(dbc, id)
		if err != nil {
			return err
		}
		if c == nil {
			return domainagg.NotFound(op, "Customer", id)
		}
		if req.Version != nil {
			if err := aggregates.RequireVersionMatch(c.Version, *req.Version); err != nil {
				return err
			}
		}
		expected := c.Version
		applyCustomer(c, req)
		ok, err := s.base.Guard().UpdateByVersion(dbc, c.TableName(), c.ID, expected, customerColumns(c))
		if err != nil {
			return err
		}
		if err := aggregates.RequireCASSuccess(ok, "customer was modified concurrently"); err != nil {
			return err
		}
		updated, err = s.repo.GetByID(dbc, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	out := CustomerResponseFrom(updated)
	return &out, nil
}

func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "Directory.Customer.Delete"
	return s.base.Write(ctx, op, func(dbc dbctx.Context) error {
		ok, err := s.repo.Delete(dbc, id)
		if err != nil {
			return err
		}
		if !ok {
			return domainagg.NotFound(op, "Customer", id)
		}
		return nil
	})
}

// applyCustomer copies every request field onto dst, clearing optional
// fields the request leaves nil or blank.
func applyCustomer(dst *types.Customer, req CustomerRequest) {
	dst.Name = req.Name
	dst.Email = blankToNil(req.Email)
	dst.PhoneNumber = blankToNil(req.PhoneNumber)
	dst.AddressLine1 = req.AddressLine1
	dst.AddressLine2 = blankToNil(req.AddressLine2)
	dst.City = req.City
	dst.State = req.State
	dst.PostalCode = req.PostalCode
}

func customerColumns(c *types.Customer) map[string]any {
	return map[string]any{
		"name":          c.Name,
		"email":         c.Email,
		"phone_number":  c.PhoneNumber,
		"address_line1": c.AddressLine1,
		"address_line2": c.AddressLine2,
		"city":          c.City,
		"state":         c.State,
		"postal_code":   c.PostalCode,
	}
}
