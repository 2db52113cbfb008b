package dto

import (
	"encoding/json"
	"time"

	"github.com/Eursukkul/event-catalog/internal/models"
)

type EventSummaryResponse struct {
	ID       uint       `json:"id"`
	Name     string     `json:"name"`
	Address  string     `json:"address"`
	StartsAt time.Time  `json:"startsAt"`
	EndsAt   *time.Time `json:"endsAt"`
}

type EventDetailResponse struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Address     string     `json:"address"`
	StartsAt    time.Time  `json:"startsAt"`
	EndsAt      *time.Time `json:"endsAt"`
}

type EntryTypeSummaryResponse struct {
	ID    uint        `json:"id"`
	Name  string      `json:"name"`
	Price json.Number `json:"price"`
	Stock int         `json:"stock"`
}

func ToEventSummary(e *models.Event) *EventSummaryResponse {
	if e == nil {
		return nil
	}
	return &EventSummaryResponse{
		ID:       e.ID,
		Name:     e.Name,
		Address:  e.Address,
		StartsAt: e.StartsAt,
		EndsAt:   e.EndsAt,
	}
}

func ToEventDetail(e *models.Event) *EventDetailResponse {
	if e == nil {
		return nil
	}
	return &EventDetailResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Address:     e.Address,
		StartsAt:    e.StartsAt,
		EndsAt:      e.EndsAt,
	}
}

// ToEventSummaryList never returns nil, so an empty listing encodes as [].
func ToEventSummaryList(events []models.Event) []EventSummaryResponse {
	resp := make([]EventSummaryResponse, len(events))
	for i := range events {
		resp[i] = *ToEventSummary(&events[i])
	}
	return resp
}

// Prices are rendered as JSON numbers with two decimals.
func ToEntryTypeSummary(et *models.EntryType) *EntryTypeSummaryResponse {
	if et == nil {
		return nil
	}
	return &EntryTypeSummaryResponse{
		ID:    et.ID,
		Name:  et.Name,
		Price: json.Number(et.Price.StringFixed(2)),
		Stock: et.Stock,
	}
}

func ToEntryTypeSummaryList(entryTypes []models.EntryType) []EntryTypeSummaryResponse {
	resp := make([]EntryTypeSummaryResponse, len(entryTypes))
	for i := range entryTypes {
		resp[i] = *ToEntryTypeSummary(&entryTypes[i])
	}
	return resp
}
