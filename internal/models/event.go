package models

import "time"

type Event struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:120;not null" json:"name"`
	Description *string    `gorm:"size:500" json:"description"`
	Address     string     `gorm:"not null" json:"address"`
	StartsAt    time.Time  `gorm:"not null" json:"startsAt"`
	EndsAt      *time.Time `json:"endsAt"`
}

func (Event) TableName() string {
	return "event"
}
