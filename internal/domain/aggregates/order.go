package aggregates

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yungbote/brewery-backend/internal/domain/orders"
)

var OrderAggregateContract = Contract{
	Name:            "Orders.OrderAggregate",
	Root:            orders.Order{}.TableName(),
	Owned:           []string{orders.Line{}.TableName()},
	OwnsWriteTx:     true,
	ConsistentReads: true,
}

// OrderAggregate owns the order + lines lifecycle.
//
// Write failures are *Error with codes:
// CodeValidation, CodeInvalidOrder, CodeNotFound, CodeConflict, CodeRetryable, CodeInternal.
type OrderAggregate interface {
	Aggregate

	// Create resolves every line's product and persists the order and its
	// lines in one transaction. Nothing is written when any product is unknown.
	Create(ctx context.Context, in CreateOrderInput) (*orders.Order, error)

	// Get loads the order with its full line collection.
	Get(ctx context.Context, id uuid.UUID) (*orders.Order, error)

	// Exists reports whether an order with the id is stored.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type CreateOrderInput struct {
	CustomerRef   *string
	CustomerID    *uuid.UUID
	PaymentAmount decimal.NullDecimal
	Lines         []CreateOrderLine
}

type CreateOrderLine struct {
	ProductID uuid.UUID
	Quantity  int
}
