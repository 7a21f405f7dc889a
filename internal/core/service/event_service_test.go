package service

import (
	"testing"
	"time"

	"eventman/internal/core/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var concertDate = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestCreateAndGetEventRoundTrip(t *testing.T) {
	svc := NewEventService(repository.NewInMemoryEventRepository())

	created, err := svc.CreateEvent("Concert", concertDate, "Hall A", "Live music")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := svc.GetEvent(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Concert", got.Name)
	assert.True(t, got.Date.Equal(concertDate))
	assert.Equal(t, "Hall A", got.Location)
	assert.Equal(t, "Live music", got.Description)
}

func TestCreateEventMissingField(t *testing.T) {
	repo := repository.NewInMemoryEventRepository()
	svc := NewEventService(repo)

	tests := []struct {
		name        string
		eventName   string
		date        time.Time
		location    string
		description string
	}{
		{"missing name", "", concertDate, "Hall A", "Live music"},
		{"missing date", "Concert", time.Time{}, "Hall A", "Live music"},
		{"missing location", "Concert", concertDate, "", "Live music"},
		{"missing description", "Concert", concertDate, "Hall A", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateEvent(tt.eventName, tt.date, tt.location, tt.description)
			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}

	// Nothing may have been persisted.
	events, err := repo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestUpdateEventReplacesAllFields(t *testing.T) {
	svc := NewEventService(repository.NewInMemoryEventRepository())

	created, err := svc.CreateEvent("Concert", concertDate, "Hall A", "Live music")
	require.NoError(t, err)

	newDate := concertDate.AddDate(0, 1, 0)
	updated, err := svc.UpdateEvent(created.ID, "Recital", newDate, "Hall B", "Piano")
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Recital", updated.Name)
	assert.True(t, updated.Date.Equal(newDate))
	assert.Equal(t, "Hall B", updated.Location)
	assert.Equal(t, "Piano", updated.Description)
}

func TestUpdateUnknownEvent(t *testing.T) {
	svc := NewEventService(repository.NewInMemoryEventRepository())

	_, err := svc.UpdateEvent("no-such-id", "Recital", concertDate, "Hall B", "Piano")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteEventIsIdempotent(t *testing.T) {
	svc := NewEventService(repository.NewInMemoryEventRepository())

	keep, err := svc.CreateEvent("Keep", concertDate, "Hall A", "Stays")
	require.NoError(t, err)
	gone, err := svc.CreateEvent("Gone", concertDate, "Hall B", "Goes")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEvent(gone.ID))
	require.NoError(t, svc.DeleteEvent(gone.ID))
	require.NoError(t, svc.DeleteEvent("never-existed"))

	events, err := svc.ListEvents()
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, keep.ID, events[0].ID)
}

func TestGetUnknownEvent(t *testing.T) {
	svc := NewEventService(repository.NewInMemoryEventRepository())

	_, err := svc.GetEvent("no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetEvent("")
	assert.ErrorIs(t, err, ErrNotFound)
}
