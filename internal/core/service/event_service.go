package service

import (
	"fmt"
	"time"

	"eventman/internal/core/model"
	"eventman/internal/core/repository"
)

type EventService interface {
	CreateEvent(name string, date time.Time, location, description string) (*model.Event, error)
	UpdateEvent(id, name string, date time.Time, location, description string) (*model.Event, error)
	DeleteEvent(id string) error
	GetEvent(id string) (*model.Event, error)
	ListEvents() ([]*model.Event, error)
}

type eventService struct {
	eventRepo repository.EventRepository
}

func NewEventService(eventRepo repository.EventRepository) EventService {
	return &eventService{
		eventRepo: eventRepo,
	}
}

func (s *eventService) CreateEvent(name string, date time.Time, location, description string) (*model.Event, error) {
	if name == "" || date.IsZero() || location == "" || description == "" {
		return nil, ErrMissingFields
	}

	event := model.NewEvent(name, date, location, description)
	if err := s.eventRepo.Create(event); err != nil {
		return nil, fmt.Errorf("creating event: %w", err)
	}
	return event, nil
}

// UpdateEvent replaces all four attributes of the event identified by id.
func (s *eventService) UpdateEvent(id, name string, date time.Time, location, description string) (*model.Event, error) {
	if name == "" || date.IsZero() || location == "" || description == "" {
		return nil, ErrMissingFields
	}

	existing, err := s.eventRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("looking up event: %w", err)
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	existing.Name = name
	existing.Date = date
	existing.Location = location
	existing.Description = description

	if err := s.eventRepo.Update(existing); err != nil {
		return nil, fmt.Errorf("updating event: %w", err)
	}
	return existing, nil
}

// DeleteEvent is idempotent: deleting an unknown id succeeds.
func (s *eventService) DeleteEvent(id string) error {
	if id == "" {
		return nil
	}
	if err := s.eventRepo.Delete(id); err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}
	return nil
}

func (s *eventService) GetEvent(id string) (*model.Event, error) {
	if id == "" {
		return nil, ErrNotFound
	}

	event, err := s.eventRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("looking up event: %w", err)
	}
	if event == nil {
		return nil, ErrNotFound
	}
	return event, nil
}

func (s *eventService) ListEvents() ([]*model.Event, error) {
	events, err := s.eventRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	return events, nil
}
