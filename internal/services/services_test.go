package services

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/brewery-backend/internal/data/aggregates"
	aggtest "github.com/yungbote/brewery-backend/internal/data/aggregates/testutil"
	"github.com/yungbote/brewery-backend/internal/data/cache"
	"github.com/yungbote/brewery-backend/internal/data/repos"
	"github.com/yungbote/brewery-backend/internal/data/repos/testutil"
)

type fixture struct {
	db        *gorm.DB
	repos     repos.Set
	hooks     *aggtest.HooksRecorder
	store     *cache.MemoryStore
	products  ProductService
	customers CustomerService
	orders    OrderService
	shipments ShipmentService
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	set := repos.NewSet(db, log)
	hooks := &aggtest.HooksRecorder{}
	base := aggregates.BaseDeps{DB: db, Log: log, Hooks: hooks}
	store := cache.NewMemoryStore()

	orderAgg := aggregates.NewOrderAggregate(aggregates.OrderAggregateDeps{
		Base:      base,
		Orders:    set.Order,
		Products:  set.Product,
		Customers: set.Customer,
	})
	return fixture{
		db:        db,
		repos:     set,
		hooks:     hooks,
		store:     store,
		products:  NewProductService(db, log, base, set.Product, cache.NewProductCache(store, time.Minute, log)),
		customers: NewCustomerService(db, log, base, set.Customer),
		orders:    NewOrderService(db, log, orderAgg, set.Order),
		shipments: NewShipmentService(db, log, base, set.Order, set.Shipment),
	}
}
