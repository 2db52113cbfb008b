package service

import (
	"context"
	"fmt"

	"github.com/Eursukkul/event-catalog/internal/models"
	"github.com/Eursukkul/event-catalog/internal/repository"
)

type EventService interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
	GetEventByID(ctx context.Context, id uint) (*models.Event, error)
	GetEntryTypes(ctx context.Context, eventID uint) ([]models.EntryType, error)
}

type eventService struct {
	eventRepo     repository.EventRepository
	entryTypeRepo repository.EntryTypeRepository
}

func NewEventService(eventRepo repository.EventRepository, entryTypeRepo repository.EntryTypeRepository) EventService {
	return &eventService{eventRepo: eventRepo, entryTypeRepo: entryTypeRepo}
}

func (s *eventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	events, err := s.eventRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) GetEventByID(ctx context.Context, id uint) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(ResourceEvent, id, err)
	}
	return event, nil
}

// GetEntryTypes fails with a NotFoundError when the event itself is missing,
// so an empty result always means an existing event without tiers.
func (s *eventService) GetEntryTypes(ctx context.Context, eventID uint) ([]models.EntryType, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return nil, lookupErr(ResourceEvent, eventID, err)
	}

	entryTypes, err := s.entryTypeRepo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list entry types of event %d: %w", eventID, err)
	}
	return entryTypes, nil
}
