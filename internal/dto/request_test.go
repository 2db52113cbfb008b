package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryTypeSyncMessage_ToModel(t *testing.T) {
	body := `{"id":10,"name":"Box","price":"350.00","stock":4,"isBox":true,"capacity":6,"eventId":1}`

	var msg EntryTypeSyncMessage
	require.NoError(t, json.Unmarshal([]byte(body), &msg))
	et := msg.ToModel()

	assert.Equal(t, uint(10), et.ID)
	assert.True(t, et.Price.Equal(decimal.NewFromInt(350)))
	assert.True(t, et.IsBox)
	require.NotNil(t, et.Capacity)
	assert.Equal(t, 6, *et.Capacity)
	assert.Equal(t, uint(1), et.EventID)
}

func TestEventSyncMessage_ToModel(t *testing.T) {
	body := `{"id":1,"name":"Conf","address":"Main St","startsAt":"2025-01-01T10:00:00Z","endsAt":null}`

	var msg EventSyncMessage
	require.NoError(t, json.Unmarshal([]byte(body), &msg))
	e := msg.ToModel()

	assert.Equal(t, "Conf", e.Name)
	assert.Equal(t, 2025, e.StartsAt.Year())
	assert.Nil(t, e.EndsAt)
	assert.Nil(t, e.Description)
}
