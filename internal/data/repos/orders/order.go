package orders

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/brewery-backend/internal/domain"
	"github.com/yungbote/brewery-backend/internal/platform/dbctx"
	"github.com/yungbote/brewery-backend/internal/platform/logger"
	"github.com/yungbote/brewery-backend/internal/platform/paging"
)

// OrderRepo is the table-level access for orders. Lines are only written as
// part of Create; there is no standalone line write path.
type OrderRepo interface {
	Create(dbc dbctx.Context, o *types.Order) error
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Order, error)
	Exists(dbc dbctx.Context, id uuid.UUID) (bool, error)
	List(dbc dbctx.Context, page paging.Request) ([]*types.Order, int64, error)
	Count(dbc dbctx.Context) (int64, error)
}

type orderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrderRepo(db *gorm.DB, baseLog *logger.Logger) OrderRepo {
	return &orderRepo{db: db, log: baseLog.With("repo", "OrderRepo")}
}

func orderedLines(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// Create inserts the order row and then every line in o.Lines. Callers that
// need atomicity must pass a transaction in dbc.
func (r *orderRepo) Create(dbc dbctx.Context, o *types.Order) error {
	if o == nil {
		return nil
	}
	t := dbc.DB(r.db)
	if err := t.Omit(clause.Associations).Create(o).Error; err != nil {
		return err
	}
	if len(o.Lines) == 0 {
		return nil
	}
	for i := range o.Lines {
		o.Lines[i].OrderID = o.ID
	}
	return t.Create(&o.Lines).Error
}

func (r *orderRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Order, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var row types.Order
	err := dbc.DB(r.db).
		Preload("Lines", orderedLines).
		Where("id = ?", id).
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

func (r *orderRepo) Exists(dbc dbctx.Context, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, nil
	}
	var n int64
	if err := dbc.DB(r.db).Model(&types.Order{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *orderRepo) List(dbc dbctx.Context, page paging.Request) ([]*types.Order, int64, error) {
	total, err := r.Count(dbc)
	if err != nil {
		return nil, 0, err
	}
	var out []*types.Order
	if total == 0 {
		return out, 0, nil
	}
	err = dbc.DB(r.db).
		Preload("Lines", orderedLines).
		Order("created_at ASC, id ASC").
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *orderRepo) Count(dbc dbctx.Context) (int64, error) {
	var n int64
	if err := dbc.DB(r.db).Model(&types.Order{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
