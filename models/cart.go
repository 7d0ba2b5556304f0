package models

import (
	"errors"

	"gorm.io/gorm"
)

var ErrInvalidQuantity = errors.New("cart quantity must be positive")

// Cart is one line item. Lines with a nil OrderID form the user's active
// cart; checkout sets OrderID.
type Cart struct {
	gorm.Model
	ProductID uint     `gorm:"not null;index"`
	Product   *Product `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	UserID    uint     `gorm:"not null;index"`
	User      *User    `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Quantity  uint     `gorm:"not null"`
	OrderID   *uint    `gorm:"index"`
	Order     *Order   `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
}

func (c *Cart) BeforeSave(tx *gorm.DB) error {
	if c.Quantity == 0 {
		return ErrInvalidQuantity
	}
	return nil
}

type CartResponse struct {
	ID        uint   `json:"id"`
	ProductID uint   `json:"product_id"`
	Name      string `json:"name,omitempty"`
	Price     uint   `json:"price"`
	Image     string `json:"image,omitempty"`
	Quantity  uint   `json:"quantity"`
	Subtotal  uint   `json:"subtotal"`
}

func (c *Cart) ToResponse() CartResponse {
	resp := CartResponse{
		ID:        c.ID,
		ProductID: c.ProductID,
		Quantity:  c.Quantity,
	}
	if c.Product != nil {
		resp.Name = c.Product.Name
		resp.Price = c.Product.Price
		resp.Image = c.Product.Image
		resp.Subtotal = c.Product.Price * c.Quantity
	}
	return resp
}

// Total sums price times quantity over lines whose Product is loaded.
func Total(lines []Cart) uint {
	var total uint
	for _, line := range lines {
		if line.Product != nil {
			total += line.Product.Price * line.Quantity
		}
	}
	return total
}
