package models

import "time"

type PersonalRecord struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;index" json:"user_id"`

	Movement string  `gorm:"size:100;not null" json:"movement"`
	WeightKg float64 `json:"weight_kg"`
	Reps     int     `json:"reps"`

	AchievedAt time.Time `json:"achieved_at"`
	Notes      string    `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}
