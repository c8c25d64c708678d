package models

import "time"

// Reservation is a self-service booking against a weekly slot. A user can
// hold at most one reservation per (day, time).
type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;uniqueIndex:idx_reservations_user_day_time" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Day  string `gorm:"size:16;not null;uniqueIndex:idx_reservations_user_day_time" json:"day"`
	Time string `gorm:"size:16;not null;uniqueIndex:idx_reservations_user_day_time" json:"time"`

	// Concrete calendar occurrence the booking is for.
	Date time.Time `gorm:"not null" json:"date"`

	CreatedAt time.Time `json:"created_at"`
}
