package domain

import (
	"github.com/yungbote/brewery-backend/internal/domain/catalog"
	"github.com/yungbote/brewery-backend/internal/domain/orders"
)

type Product = catalog.Product
type Customer = catalog.Customer

type Order = orders.Order
type Line = orders.Line
type Shipment = orders.Shipment

type OrderStatus = orders.OrderStatus
type LineStatus = orders.LineStatus

const (
	OrderStatusNew = orders.OrderStatusNew
	LineStatusNew  = orders.LineStatusNew
)

// Models lists every persisted model in migration order.
func Models() []any {
	return []any{
		&catalog.Product{},
		&catalog.Customer{},
		&orders.Order{},
		&orders.Line{},
		&orders.Shipment{},
	}
}
