package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is the aggregate root. It exclusively owns its Lines; lines are only
// created through the order aggregate and are ordered by Position.
type Order struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Version int       `gorm:"not null;default:0" json:"version"`

	CustomerRef   *string             `gorm:"column:customer_ref;size:64" json:"customer_ref,omitempty"`
	CustomerID    *uuid.UUID          `gorm:"type:uuid;column:customer_id;index" json:"customer_id,omitempty"`
	PaymentAmount decimal.NullDecimal `gorm:"column:payment_amount;type:numeric(19,2)" json:"payment_amount"`
	Status        OrderStatus         `gorm:"column:status;size:30;not null;index" json:"status"`

	Lines []Line `gorm:"foreignKey:OrderID" json:"lines"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Order) TableName() string { return "beer_order" }

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// AddLine appends a line and points it back at this order.
func (o *Order) AddLine(l Line) {
	l.OrderID = o.ID
	l.Position = len(o.Lines)
	o.Lines = append(o.Lines, l)
}
