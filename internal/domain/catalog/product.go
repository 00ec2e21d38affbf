package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a beer in the distributor's catalog. Code is the UPC and is
// unique across all products.
type Product struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Version int       `gorm:"not null;default:0" json:"version"`

	Name           string           `gorm:"column:name;size:255;not null;index" json:"name"`
	Style          string           `gorm:"column:style;size:255;not null;index" json:"style"`
	Code           string           `gorm:"column:code;size:255;not null;uniqueIndex:idx_product_code" json:"code"`
	QuantityOnHand *int             `gorm:"column:quantity_on_hand" json:"quantity_on_hand,omitempty"`
	Price          *decimal.Decimal `gorm:"column:price;type:numeric(19,2)" json:"price,omitempty"`
	Description    *string          `gorm:"column:description;type:text" json:"description,omitempty"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Product) TableName() string { return "product" }

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
