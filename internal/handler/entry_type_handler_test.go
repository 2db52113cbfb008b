package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/Eursukkul/event-catalog/internal/dto"
	"github.com/Eursukkul/event-catalog/internal/models"
	"github.com/Eursukkul/event-catalog/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock EntryTypeService ---

type mockEntryTypeService struct {
	listFn func(ctx context.Context) ([]models.EntryType, error)
	getFn  func(ctx context.Context, id uint) (*models.EntryType, error)
}

func (m *mockEntryTypeService) ListEntryTypes(ctx context.Context) ([]models.EntryType, error) {
	return m.listFn(ctx)
}
func (m *mockEntryTypeService) GetEntryTypeByID(ctx context.Context, id uint) (*models.EntryType, error) {
	return m.getFn(ctx, id)
}

// --- Tests ---

func TestListEntryTypes_Handler_Success(t *testing.T) {
	svc := &mockEntryTypeService{
		listFn: func(ctx context.Context) ([]models.EntryType, error) {
			return []models.EntryType{
				{ID: 1, Name: "General", Price: decimal.NewFromInt(50), Stock: 100, EventID: 1},
				{ID: 2, Name: "VIP", Price: decimal.NewFromInt(150), Stock: 5, EventID: 2, IsBox: true},
			}, nil
		},
	}

	c, rec := newContext(http.MethodGet, "/entryType")
	err := NewEntryTypeHandler(svc).ListEntryTypes(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	for _, r := range resp {
		assert.NotContains(t, r, "isBox")
		assert.NotContains(t, r, "eventId")
		assert.NotContains(t, r, "description")
	}
}

func TestListEntryTypes_Handler_Error(t *testing.T) {
	svc := &mockEntryTypeService{
		listFn: func(ctx context.Context) ([]models.EntryType, error) {
			return nil, errors.New("db error")
		},
	}

	c, _ := newContext(http.MethodGet, "/entryType")
	err := NewEntryTypeHandler(svc).ListEntryTypes(c)

	assertHTTPError(t, err, http.StatusInternalServerError, dto.CodeInternalError)
}

func TestGetEntryType_Handler_Success(t *testing.T) {
	svc := &mockEntryTypeService{
		getFn: func(ctx context.Context, id uint) (*models.EntryType, error) {
			return &models.EntryType{ID: id, Name: "General", Price: decimal.NewFromInt(50), Stock: 100}, nil
		},
	}

	c, rec := newContext(http.MethodGet, "/entryType/10", "id", "10")
	err := NewEntryTypeHandler(svc).GetEntryType(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":10,"name":"General","price":50.00,"stock":100}`, rec.Body.String())
}

func TestGetEntryType_Handler_NotFound(t *testing.T) {
	svc := &mockEntryTypeService{
		getFn: func(ctx context.Context, id uint) (*models.EntryType, error) {
			return nil, &service.NotFoundError{Resource: service.ResourceEntryType, ID: id}
		},
	}

	c, _ := newContext(http.MethodGet, "/entryType/999", "id", "999")
	err := NewEntryTypeHandler(svc).GetEntryType(c)

	body := assertHTTPError(t, err, http.StatusNotFound, dto.CodeNotFound)
	assert.Equal(t, service.ResourceEntryType, body.Resource)
}

func TestGetEntryType_Handler_InvalidID(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/entryType/x", "id", "x")
	err := NewEntryTypeHandler(&mockEntryTypeService{}).GetEntryType(c)

	body := assertHTTPError(t, err, http.StatusBadRequest, dto.CodeInvalidID)
	assert.Equal(t, "invalid entry type id", body.Message)
}
