package model

import (
	"time"

	"eventman/internal/core/util"
)

type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
}

func NewEvent(name string, date time.Time, location, description string) *Event {
	return &Event{
		ID:          util.GenerateID(),
		Name:        name,
		Date:        date,
		Location:    location,
		Description: description,
	}
}
