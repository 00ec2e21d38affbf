package orders

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Line is one product request within an Order. ProductID is fixed at creation.
type Line struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Version int       `gorm:"not null;default:0" json:"version"`

	OrderID           uuid.UUID  `gorm:"type:uuid;column:order_id;not null;index:idx_line_order_position,priority:1" json:"order_id"`
	Position          int        `gorm:"column:position;not null;index:idx_line_order_position,priority:2" json:"position"`
	ProductID         uuid.UUID  `gorm:"type:uuid;column:product_id;not null;index" json:"product_id"`
	Quantity          int        `gorm:"column:quantity;not null" json:"quantity"`
	QuantityAllocated int        `gorm:"column:quantity_allocated;not null;default:0" json:"quantity_allocated"`
	Status            LineStatus `gorm:"column:status;size:30;not null" json:"status"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Line) TableName() string { return "beer_order_line" }

func (l *Line) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
