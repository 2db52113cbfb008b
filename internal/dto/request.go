package dto

import (
	"time"

	"github.com/Eursukkul/event-catalog/internal/models"
	"github.com/shopspring/decimal"
)

// EventSyncMessage is the body of an event.upserted message from the
// upstream catalog.
type EventSyncMessage struct {
	ID          uint       `json:"id" validate:"required"`
	Name        string     `json:"name" validate:"required,max=120"`
	Description *string    `json:"description" validate:"omitempty,max=500"`
	Address     string     `json:"address" validate:"required"`
	StartsAt    time.Time  `json:"startsAt" validate:"required"`
	EndsAt      *time.Time `json:"endsAt"`
}

// EntryTypeSyncMessage is the body of an entry_type.upserted message.
type EntryTypeSyncMessage struct {
	ID          uint            `json:"id" validate:"required"`
	Name        string          `json:"name" validate:"required,max=30"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" validate:"gte=0"`
	IsBox       bool            `json:"isBox"`
	Capacity    *int            `json:"capacity" validate:"omitempty,gte=0"`
	EventID     uint            `json:"eventId" validate:"required"`
}

func (m EventSyncMessage) ToModel() *models.Event {
	return &models.Event{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Address:     m.Address,
		StartsAt:    m.StartsAt,
		EndsAt:      m.EndsAt,
	}
}

func (m EntryTypeSyncMessage) ToModel() *models.EntryType {
	return &models.EntryType{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Stock:       m.Stock,
		IsBox:       m.IsBox,
		Capacity:    m.Capacity,
		EventID:     m.EventID,
	}
}
