package models

import "github.com/shopspring/decimal"

// EntryType is a ticket tier of an Event. The owning event is referenced by
// EventID only; load the Event explicitly when it is needed.
type EntryType struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:30;not null" json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null;check:chk_entry_type_price,price >= 0" json:"price"`
	Stock       int             `gorm:"not null;check:chk_entry_type_stock,stock >= 0" json:"stock"`
	IsBox       bool            `gorm:"not null" json:"isBox"`
	Capacity    *int            `json:"capacity"`
	EventID     uint            `gorm:"not null;index" json:"eventId"`
}

func (EntryType) TableName() string {
	return "entry_type"
}
