package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Order is a submitted kiosk order. Lifecycle flags are independent booleans;
// nothing here forbids combinations such as canceled and delivered together.
type Order struct {
	ID     string `gorm:"primaryKey;size:36" json:"_id"`
	Number int    `gorm:"uniqueIndex;not null" json:"number"`

	OrderType   string `json:"orderType"`
	PaymentType string `json:"paymentType"`

	IsPaid      bool `json:"isPaid"`
	IsReady     bool `json:"isReady"`
	InProgress  bool `json:"inProgress"`
	IsCanceled  bool `gorm:"index" json:"isCanceled"`
	IsDelivered bool `gorm:"index" json:"isDelivered"`

	ItemsPrice float64 `json:"itemsPrice"`
	TaxPrice   float64 `json:"taxPrice"`
	TotalPrice float64 `json:"totalPrice"`

	// stored as a JSON document column
	OrderItems datatypes.JSONSlice[OrderItem] `json:"orderItems"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// Active reports whether the order still belongs on the order board.
func (o *Order) Active() bool {
	return !o.IsDelivered && !o.IsCanceled
}
