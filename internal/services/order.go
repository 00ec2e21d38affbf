package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yungbote/brewery-backend/internal/data/aggregates"
	"github.com/yungbote/brewery-backend/internal/data/repos"
	domainagg "github.com/yungbote/brewery-backend/internal/domain/aggregates"
	"github.com/yungbote/brewery-backend/internal/platform/dbctx"
	"github.com/yungbote/brewery-backend/internal/platform/logger"
	"github.com/yungbote/brewery-backend/internal/platform/paging"
	"github.com/yungbote/brewery-backend/internal/platform/pointers"
)

type OrderService interface {
	Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error)
	List(ctx context.Context, page paging.Request) (*paging.Page[OrderResponse], error)
}

type orderService struct {
	db   *gorm.DB
	log  *logger.Logger
	agg  domainagg.OrderAggregate
	repo repos.OrderRepo
}

func NewOrderService(db *gorm.DB, log *logger.Logger, agg domainagg.OrderAggregate, repo repos.OrderRepo) OrderService {
	return &orderService{
		db:   db,
		log:  log.With("service", "OrderService"),
		agg:  agg,
		repo: repo,
	}
}

func (s *orderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	const op = "Orders.Order.Create"
	extra := map[string]string{}
	checkMoney(extra, "paymentAmount", req.PaymentAmount, false)
	if err := validateRequest(op, req, extra); err != nil {
		return nil, err
	}

	in := domainagg.CreateOrderInput{
		CustomerRef: blankToNil(req.CustomerRef),
		CustomerID:  req.CustomerID,
		Lines:       make([]domainagg.CreateOrderLine, 0, len(req.Lines)),
	}
	if req.PaymentAmount != nil {
		in.PaymentAmount = decimal.NewNullDecimal(*req.PaymentAmount)
	}
	for _, l := range req.Lines {
		in.Lines = append(in.Lines, domainagg.CreateOrderLine{
			ProductID: pointers.Deref(l.ProductID),
			Quantity:  pointers.Deref(l.Quantity),
		})
	}

	o, err := s.agg.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.log.Info("order created", "order_id", o.ID, "lines", len(o.Lines))
	out := OrderResponseFrom(o)
	return &out, nil
}

func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	o, err := s.agg.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := OrderResponseFrom(o)
	return &out, nil
}

func (s *orderService) List(ctx context.Context, page paging.Request) (*paging.Page[OrderResponse], error) {
	const op = "Orders.Order.List"
	page, err := pageRequest(op, page)
	if err != nil {
		return nil, err
	}
	rows, total, err := s.repo.List(dbctx.New(ctx), page)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	out := make([]OrderResponse, 0, len(rows))
	for _, o := range rows {
		out = append(out, OrderResponseFrom(o))
	}
	res := paging.NewPage(out, page, total)
	return &res, nil
}
