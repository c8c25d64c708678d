package models

import "time"

// ManagerAttendee is an attendance record created by a manager on behalf of
// a user. It is independent of self-service reservations and wins over a
// same-user reservation when both exist for the same occurrence.
type ManagerAttendee struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;uniqueIndex:idx_attendees_user_day_time_date" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Day  string `gorm:"size:16;not null;uniqueIndex:idx_attendees_user_day_time_date" json:"day"`
	Time string `gorm:"size:16;not null;uniqueIndex:idx_attendees_user_day_time_date" json:"time"`

	Date time.Time `gorm:"not null;uniqueIndex:idx_attendees_user_day_time_date" json:"date"`

	AddedBy       uint  `gorm:"not null" json:"added_by"`
	ReservationID *uint `json:"reservation_id"`

	CreatedAt time.Time `json:"created_at"`
}
