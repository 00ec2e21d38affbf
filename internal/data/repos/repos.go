package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/brewery-backend/internal/data/repos/catalog"
	"github.com/yungbote/brewery-backend/internal/data/repos/orders"
	"github.com/yungbote/brewery-backend/internal/platform/logger"
)

type ProductRepo = catalog.ProductRepo
type ProductFilter = catalog.ProductFilter
type CustomerRepo = catalog.CustomerRepo

type OrderRepo = orders.OrderRepo
type ShipmentRepo = orders.ShipmentRepo

// Set is every table repo the service layer depends on.
type Set struct {
	Product  ProductRepo
	Customer CustomerRepo
	Order    OrderRepo
	Shipment ShipmentRepo
}

func NewSet(db *gorm.DB, log *logger.Logger) Set {
	return Set{
		Product:  catalog.NewProductRepo(db, log),
		Customer: catalog.NewCustomerRepo(db, log),
		Order:    orders.NewOrderRepo(db, log),
		Shipment: orders.NewShipmentRepo(db, log),
	}
}
