package orders

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/brewery-backend/internal/domain"
	"github.com/yungbote/brewery-backend/internal/platform/dbctx"
	"github.com/yungbote/brewery-backend/internal/platform/logger"
	"github.com/yungbote/brewery-backend/internal/platform/paging"
)

// ShipmentRepo scopes every read and delete by the parent order id, so a
// shipment id under another order behaves exactly like a missing one.
type ShipmentRepo interface {
	Create(dbc dbctx.Context, s *types.Shipment) error
	GetByOrderAndID(dbc dbctx.Context, orderID, id uuid.UUID) (*types.Shipment, error)
	ListByOrder(dbc dbctx.Context, orderID uuid.UUID, page paging.Request) ([]*types.Shipment, int64, error)
	DeleteByOrderAndID(dbc dbctx.Context, orderID, id uuid.UUID) (bool, error)
}

type shipmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewShipmentRepo(db *gorm.DB, baseLog *logger.Logger) ShipmentRepo {
	return &shipmentRepo{db: db, log: baseLog.With("repo", "ShipmentRepo")}
}

func (r *shipmentRepo) Create(dbc dbctx.Context, s *types.Shipment) error {
	if s == nil {
		return nil
	}
	return dbc.DB(r.db).Create(s).Error
}

func (r *shipmentRepo) GetByOrderAndID(dbc dbctx.Context, orderID, id uuid.UUID) (*types.Shipment, error) {
	if orderID == uuid.Nil || id == uuid.Nil {
		return nil, nil
	}
	var row types.Shipment
	err := dbc.DB(r.db).
		Where("id = ? AND order_id = ?", id, orderID).
		Limit(1).
		Find(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *shipmentRepo) ListByOrder(dbc dbctx.Context, orderID uuid.UUID, page paging.Request) ([]*types.Shipment, int64, error) {
	var out []*types.Shipment
	if orderID == uuid.Nil {
		return out, 0, nil
	}
	var total int64
	if err := dbc.DB(r.db).Model(&types.Shipment{}).Where("order_id = ?", orderID).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return out, 0, nil
	}
	err := dbc.DB(r.db).
		Where("order_id = ?", orderID).
		Order("shipment_date ASC, created_at ASC, id ASC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *shipmentRepo) DeleteByOrderAndID(dbc dbctx.Context, orderID, id uuid.UUID) (bool, error) {
	if orderID == uuid.Nil || id == uuid.Nil {
		return false, nil
	}
	res := dbc.DB(r.db).Where("id = ? AND order_id = ?", id, orderID).Delete(&types.Shipment{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
