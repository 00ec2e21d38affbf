package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is a buyer's contact and delivery address record.
type Customer struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Version int       `gorm:"not null;default:0" json:"version"`

	Name         string  `gorm:"column:name;size:255;not null;index" json:"name"`
	Email        *string `gorm:"column:email;size:255" json:"email,omitempty"`
	PhoneNumber  *string `gorm:"column:phone_number;size:40" json:"phone_number,omitempty"`
	AddressLine1 string  `gorm:"column:address_line1;size:255;not null" json:"address_line1"`
	AddressLine2 *string `gorm:"column:address_line2;size:255" json:"address_line2,omitempty"`
	City         string  `gorm:"column:city;size:100;not null" json:"city"`
	State        string  `gorm:"column:state;size:100;not null" json:"state"`
	PostalCode   string  `gorm:"column:postal_code;size:20;not null" json:"postal_code"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Customer) TableName() string { return "customer" }

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
