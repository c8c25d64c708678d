package models

import "time"

// Workout is the workout-of-the-day content, one per calendar date.
type Workout struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date    time.Time `gorm:"uniqueIndex;not null" json:"date"`
	Title   string    `gorm:"size:100;not null" json:"title"`
	Content string    `gorm:"type:text" json:"content"`

	CreatedBy uint `json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
