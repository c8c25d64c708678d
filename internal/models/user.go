package models

import "time"

const (
	RoleClient  = "client"
	RoleManager = "manager"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;default:'client'" json:"role"`

	// Clients must be approved by a manager before they can book.
	Approved            bool       `gorm:"default:false" json:"approved"`
	SubscriptionExpires *time.Time `json:"subscription_expires"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
