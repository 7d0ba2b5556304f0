package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// User holds no Products/Orders slices; a seller's products and a user's
// orders are always loaded by query.
type User struct {
	gorm.Model
	Name     string `gorm:"not null"`
	Email    string `gorm:"size:191;uniqueIndex;not null"`
	Password string `gorm:"not null" json:"-"`
	Address  string `gorm:"not null"`
	Role     string `gorm:"size:50;not null;default:member"`
}

type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// UserSummary is the seller shape embedded in product responses.
type UserSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Address:   u.Address,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func (u *User) ToSummary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name}
}
