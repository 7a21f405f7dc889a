package repository

import (
	"fmt"
	"sync"

	"eventman/internal/core/model"
)

type inMemoryEventRepository struct {
	events map[string]*model.Event
	mutex  sync.RWMutex
}

func NewInMemoryEventRepository() EventRepository {
	return &inMemoryEventRepository{
		events: make(map[string]*model.Event),
	}
}

func (r *inMemoryEventRepository) Create(event *model.Event) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.events[event.ID]; exists {
		return fmt.Errorf("event with ID %s already exists", event.ID)
	}

	r.events[event.ID] = event
	return nil
}

func (r *inMemoryEventRepository) Update(event *model.Event) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.events[event.ID]; !exists {
		return fmt.Errorf("event with ID %s not found", event.ID)
	}

	r.events[event.ID] = event
	return nil
}

// Delete removes the event if present. Deleting an unknown id is not an error.
func (r *inMemoryEventRepository) Delete(id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.events, id)
	return nil
}

func (r *inMemoryEventRepository) FindByID(id string) (*model.Event, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if event, exists := r.events[id]; exists {
		return event, nil
	}
	return nil, nil
}

func (r *inMemoryEventRepository) FindAll() ([]*model.Event, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	events := make([]*model.Event, 0, len(r.events))
	for _, event := range r.events {
		events = append(events, event)
	}
	return events, nil
}
