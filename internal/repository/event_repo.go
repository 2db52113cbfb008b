package repository

import (
	"context"

	"github.com/Eursukkul/event-catalog/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Event, error)
	FindAll(ctx context.Context) ([]models.Event, error)
	Upsert(ctx context.Context, event *models.Event) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

// FindByID returns gorm.ErrRecordNotFound when no row matches.
func (r *eventRepository) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) FindAll(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// Upsert inserts the event or overwrites every column of the row with the same id.
func (r *eventRepository) Upsert(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "description", "address", "starts_at", "ends_at"}),
	}).Create(event).Error
}
