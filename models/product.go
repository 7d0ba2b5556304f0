package models

import "gorm.io/gorm"

type Product struct {
	gorm.Model
	Name        string `gorm:"not null"`
	Description string `gorm:"not null"`
	Price       uint   `gorm:"not null"`
	Category    string `gorm:"size:100;index;not null"`
	Image       string `gorm:"not null"`
	UserID      *uint  `gorm:"index"`
	Seller      *User  `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
}

type ProductResponse struct {
	ID          uint         `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       uint         `json:"price"`
	Category    string       `json:"category"`
	Image       string       `json:"image"`
	SellerID    *uint        `json:"seller_id,omitempty"`
	Seller      *UserSummary `json:"seller,omitempty"`
}

// ToResponse reduces a preloaded seller to its summary so the seller's
// own product list is never walked.
func (p *Product) ToResponse() ProductResponse {
	resp := ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Image:       p.Image,
		SellerID:    p.UserID,
	}
	if p.Seller != nil {
		summary := p.Seller.ToSummary()
		resp.Seller = &summary
	}
	return resp
}
