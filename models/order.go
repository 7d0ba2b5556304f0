package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusPendingOrder       = "Pending order"
	StatusPendingApproval    = "Pending approval"
	StatusInTransit          = "In Transit"
	StatusShipping           = "Shipping"
	StatusPendingPayment     = "Pending payment"
	StatusWaitingToBeShipped = "Waiting to be shipped"
	StatusShippedToBranch    = "Shipped to branch"
	StatusDelivered          = "Delivered"
	StatusCancelled          = "Cancelled"
	StatusReturned           = "Returned"
)

// KnownStatuses lists the statuses the storefront itself produces. Status
// stays free text; other values are accepted.
var KnownStatuses = []string{
	StatusPendingOrder,
	StatusPendingApproval,
	StatusInTransit,
	StatusShipping,
	StatusPendingPayment,
	StatusWaitingToBeShipped,
	StatusShippedToBranch,
	StatusDelivered,
	StatusCancelled,
	StatusReturned,
}

type Order struct {
	gorm.Model
	Amount uint   `gorm:"not null"`
	Status string `gorm:"size:64;not null"`
	UserID *uint  `gorm:"index"`
	User   *User  `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
}

type OrderResponse struct {
	ID        uint           `json:"id"`
	Amount    uint           `json:"amount"`
	Status    string         `json:"status"`
	UserID    *uint          `json:"user_id,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	Items     []CartResponse `json:"items,omitempty"`
}

func (o *Order) ToResponse(items []Cart) OrderResponse {
	resp := OrderResponse{
		ID:        o.ID,
		Amount:    o.Amount,
		Status:    o.Status,
		UserID:    o.UserID,
		CreatedAt: o.CreatedAt,
	}
	for i := range items {
		resp.Items = append(resp.Items, items[i].ToResponse())
	}
	return resp
}
