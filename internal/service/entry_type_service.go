package service

import (
	"context"
	"fmt"

	"github.com/Eursukkul/event-catalog/internal/models"
	"github.com/Eursukkul/event-catalog/internal/repository"
)

type EntryTypeService interface {
	ListEntryTypes(ctx context.Context) ([]models.EntryType, error)
	GetEntryTypeByID(ctx context.Context, id uint) (*models.EntryType, error)
}

type entryTypeService struct {
	repo repository.EntryTypeRepository
}

func NewEntryTypeService(repo repository.EntryTypeRepository) EntryTypeService {
	return &entryTypeService{repo: repo}
}

func (s *entryTypeService) ListEntryTypes(ctx context.Context) ([]models.EntryType, error) {
	entryTypes, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entry types: %w", err)
	}
	return entryTypes, nil
}

func (s *entryTypeService) GetEntryTypeByID(ctx context.Context, id uint) (*models.EntryType, error) {
	et, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(ResourceEntryType, id, err)
	}
	return et, nil
}
