package aggregates

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/yungbote/brewery-backend/internal/data/repos"
	domainagg "github.com/yungbote/brewery-backend/internal/domain/aggregates"
	"github.com/yungbote/brewery-backend/internal/domain/orders"
	"github.com/yungbote/brewery-backend/internal/platform/dbctx"
)

type OrderAggregateDeps struct {
	Base BaseDeps

	Orders    repos.OrderRepo
	Products  repos.ProductRepo
	Customers repos.CustomerRepo
}

type orderAggregate struct {
	deps OrderAggregateDeps
}

func NewOrderAggregate(deps OrderAggregateDeps) domainagg.OrderAggregate {
	deps.Base = deps.Base.withDefaults()
	return &orderAggregate{deps: deps}
}

func (a *orderAggregate) Contract() domainagg.Contract {
	return domainagg.OrderAggregateContract
}

func (a *orderAggregate) Create(ctx context.Context, in domainagg.CreateOrderInput) (*orders.Order, error) {
	const op = "Orders.Order.Create"
	if len(in.Lines) == 0 {
		return nil, domainagg.NewError(domainagg.CodeInvalidOrder, op, "order must contain at least one line", nil)
	}
	fields := map[string]string{}
	for i, l := range in.Lines {
		if l.ProductID == uuid.Nil {
			fields[fmt.Sprintf("lines[%d].productId", i)] = "must not be null"
		}
		if l.Quantity <= 0 {
			fields[fmt.Sprintf("lines[%d].quantity", i)] = "must be greater than 0"
		}
	}
	if err := domainagg.Validation(op, fields); err != nil {
		return nil, err
	}
	if a.deps.Orders == nil || a.deps.Products == nil {
		return nil, domainagg.NewError(domainagg.CodeInternal, op, "order aggregate repos not configured", nil)
	}

	var out *orders.Order
	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		if err := a.requireProducts(dbc, op, in.Lines); err != nil {
			return err
		}
		if in.CustomerID != nil && *in.CustomerID != uuid.Nil {
			if a.deps.Customers == nil {
				return domainagg.NewError(domainagg.CodeInternal, op, "customer repo not configured", nil)
			}
			c, err := a.deps.Customers.GetByID(dbc, *in.CustomerID)
			if err != nil {
				return err
			}
			if c == nil {
				return domainagg.NotFound(op, "Customer", *in.CustomerID)
			}
		}

		o := &orders.Order{
			ID:            uuid.New(),
			CustomerRef:   in.CustomerRef,
			CustomerID:    in.CustomerID,
			PaymentAmount: in.PaymentAmount,
			Status:        orders.OrderStatusNew,
		}
		for _, l := range in.Lines {
			o.AddLine(orders.Line{
				ID:                uuid.New(),
				ProductID:         l.ProductID,
				Quantity:          l.Quantity,
				QuantityAllocated: 0,
				Status:            orders.LineStatusNew,
			})
		}
		if err := a.deps.Orders.Create(dbc, o); err != nil {
			return err
		}
		out = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// requireProducts resolves all referenced products with one query and
// reports the first unknown id in request order.
func (a *orderAggregate) requireProducts(dbc dbctx.Context, op string, lines []domainagg.CreateOrderLine) error {
	ids := make([]uuid.UUID, 0, len(lines))
	seen := make(map[uuid.UUID]struct{}, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.ProductID]; ok {
			continue
		}
		seen[l.ProductID] = struct{}{}
		ids = append(ids, l.ProductID)
	}
	found, err := a.deps.Products.GetByIDs(dbc, ids)
	if err != nil {
		return err
	}
	known := make(map[uuid.UUID]struct{}, len(found))
	for _, p := range found {
		if p != nil {
			known[p.ID] = struct{}{}
		}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return domainagg.NotFound(op, "Product", id)
		}
	}
	return nil
}

func (a *orderAggregate) Get(ctx context.Context, id uuid.UUID) (*orders.Order, error) {
	const op = "Orders.Order.Get"
	var out *orders.Order
	err := a.deps.Base.Read(ctx, op, func(dbc dbctx.Context) error {
		o, err := a.deps.Orders.GetByID(dbc, id)
		if err != nil {
			return err
		}
		if o == nil {
			return domainagg.NotFound(op, "Order", id)
		}
		out = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *orderAggregate) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	const op = "Orders.Order.Exists"
	ok, err := a.deps.Orders.Exists(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return false, MapError(op, err)
	}
	return ok, nil
}
