package repository

import (
	"context"

	"github.com/Eursukkul/event-catalog/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EntryTypeRepository interface {
	FindByID(ctx context.Context, id uint) (*models.EntryType, error)
	FindAll(ctx context.Context) ([]models.EntryType, error)
	FindByEventID(ctx context.Context, eventID uint) ([]models.EntryType, error)
	Upsert(ctx context.Context, entryType *models.EntryType) error
}

type entryTypeRepository struct {
	db *gorm.DB
}

func NewEntryTypeRepository(db *gorm.DB) EntryTypeRepository {
	return &entryTypeRepository{db: db}
}

func (r *entryTypeRepository) FindByID(ctx context.Context, id uint) (*models.EntryType, error) {
	var et models.EntryType
	if err := r.db.WithContext(ctx).First(&et, id).Error; err != nil {
		return nil, err
	}
	return &et, nil
}

func (r *entryTypeRepository) FindAll(ctx context.Context) ([]models.EntryType, error) {
	var entryTypes []models.EntryType
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&entryTypes).Error; err != nil {
		return nil, err
	}
	return entryTypes, nil
}

func (r *entryTypeRepository) FindByEventID(ctx context.Context, eventID uint) ([]models.EntryType, error) {
	var entryTypes []models.EntryType
	if err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("id ASC").
		Find(&entryTypes).Error; err != nil {
		return nil, err
	}
	return entryTypes, nil
}

func (r *entryTypeRepository) Upsert(ctx context.Context, entryType *models.EntryType) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "description", "price", "stock", "is_box", "capacity", "event_id",
		}),
	}).Create(entryType).Error
}
