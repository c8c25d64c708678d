package models

import "time"

const DefaultSlotCapacity = 14

// Slot is one (day, time) cell of the fixed weekly class grid.
type Slot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Day  string `gorm:"size:16;not null;uniqueIndex:idx_slots_day_time" json:"day"`
	Time string `gorm:"size:16;not null;uniqueIndex:idx_slots_day_time" json:"time"`

	Capacity  int  `gorm:"default:14" json:"capacity"`
	Available bool `gorm:"default:true" json:"available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
