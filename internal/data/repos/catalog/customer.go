package catalog

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/brewery-backend/internal/domain"
	"github.com/yungbote/brewery-backend/internal/platform/dbctx"
	"github.com/yungbote/brewery-backend/internal/platform/logger"
	"github.com/yungbote/brewery-backend/internal/platform/paging"
)

type CustomerRepo interface {
	Create(dbc dbctx.Context, c *types.Customer) error
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Customer, error)
	List(dbc dbctx.Context, page paging.Request) ([]*types.Customer, int64, error)
	Delete(dbc dbctx.Context, id uuid.UUID) (bool, error)
}

type customerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCustomerRepo(db *gorm.DB, baseLog *logger.Logger) CustomerRepo {
	return &customerRepo{db: db, log: baseLog.With("repo", "CustomerRepo")}
}

func (r *customerRepo) Create(dbc dbctx.Context, c *types.Customer) error {
	if c == nil {
		return nil
	}
	return dbc.DB(r.db).Create(c).Error
}

func (r *customerRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Customer, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var row types.Customer
	if err := dbc.DB(r.db).Where("id = ?", id).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *customerRepo) List(dbc dbctx.Context, page paging.Request) ([]*types.Customer, int64, error) {
	var total int64
	if err := dbc.DB(r.db).Model(&types.Customer{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []*types.Customer
	if total == 0 {
		return out, 0, nil
	}
	err := dbc.DB(r.db).
		Order("created_at ASC, id ASC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *customerRepo) Delete(dbc dbctx.Context, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, nil
	}
	res := dbc.DB(r.db).Where("id = ?", id).Delete(&types.Customer{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
