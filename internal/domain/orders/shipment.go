package orders

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Shipment fulfils an Order. Every access is scoped by (OrderID, ID).
type Shipment struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Version int       `gorm:"not null;default:0" json:"version"`

	OrderID        uuid.UUID      `gorm:"type:uuid;column:order_id;not null;index" json:"order_id"`
	ShipmentDate   datatypes.Date `gorm:"column:shipment_date;type:date;not null" json:"shipment_date"`
	Carrier        *string        `gorm:"column:carrier;size:100" json:"carrier,omitempty"`
	TrackingNumber *string        `gorm:"column:tracking_number;size:120" json:"tracking_number,omitempty"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Shipment) TableName() string { return "beer_order_shipment" }

func (s *Shipment) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
