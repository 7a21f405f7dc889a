package handler

import (
	"errors"
	"net/http"
	"time"

	"eventman/internal/api/middleware"
	"eventman/internal/core/model"
	"eventman/internal/core/service"
	"eventman/internal/view"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type EventHandler struct {
	eventService service.EventService
	views        *view.Renderer
	validate     *validator.Validate
	logger       zerolog.Logger
}

func NewEventHandler(eventService service.EventService, views *view.Renderer, logger zerolog.Logger) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		views:        views,
		validate:     validator.New(),
		logger:       logger.With().Str("handler", "event").Logger(),
	}
}

// eventForm is the input for create and update. All four fields are required;
// nothing beyond presence is validated.
type eventForm struct {
	Name        string `validate:"required"`
	Date        string `validate:"required"`
	Location    string `validate:"required"`
	Description string `validate:"required"`
}

// parseEventForm reads the form body and enforces presence. The date must be
// a calendar date (YYYY-MM-DD, as date inputs submit it).
func (h *EventHandler) parseEventForm(r *http.Request) (eventForm, time.Time, error) {
	form := eventForm{
		Name:        r.FormValue("name"),
		Date:        r.FormValue("date"),
		Location:    r.FormValue("location"),
		Description: r.FormValue("description"),
	}
	if err := h.validate.Struct(form); err != nil {
		return form, time.Time{}, err
	}
	date, err := time.Parse(time.DateOnly, form.Date)
	if err != nil {
		return form, time.Time{}, err
	}
	return form, date, nil
}

// List handles GET /, the public homepage.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventService.ListEvents()
	if err != nil {
		h.logger.Error().Err(err).Msg("listing events failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"Title":  "All Events",
		"Events": events,
	}
	if user, ok := middleware.UserFrom(r.Context()); ok {
		data["User"] = &user
	}
	h.views.Render(w, "index.html", data)
}

// View handles GET /events/{id}/view.
func (h *EventHandler) View(w http.ResponseWriter, r *http.Request) {
	event, ok := h.findEvent(w, r)
	if !ok {
		return
	}
	h.views.Render(w, "show.html", h.pageData(r, event.Name, event))
}

// NewForm handles GET /events/new.
func (h *EventHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, "new.html", h.pageData(r, "New Event", nil))
}

// Create handles POST /events.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, date, err := h.parseEventForm(r)
	if err != nil {
		http.Error(w, "All fields are required.", http.StatusBadRequest)
		return
	}

	if _, err := h.eventService.CreateEvent(form.Name, date, form.Location, form.Description); err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			http.Error(w, "All fields are required.", http.StatusBadRequest)
			return
		}
		h.logger.Error().Err(err).Msg("creating event failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// EditForm handles GET /events/{id}/edit.
func (h *EventHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	event, ok := h.findEvent(w, r)
	if !ok {
		return
	}
	h.views.Render(w, "edit.html", h.pageData(r, "Edit "+event.Name, event))
}

// Update handles PUT /events/{id}: a full replace of the four attributes.
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	form, date, err := h.parseEventForm(r)
	if err != nil {
		http.Error(w, "All fields are required.", http.StatusBadRequest)
		return
	}

	if _, err := h.eventService.UpdateEvent(id, form.Name, date, form.Location, form.Description); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			http.Error(w, "Event not found", http.StatusNotFound)
		case errors.Is(err, service.ErrMissingFields):
			http.Error(w, "All fields are required.", http.StatusBadRequest)
		default:
			h.logger.Error().Err(err).Msg("updating event failed")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}
	http.Redirect(w, r, "/events/"+id+"/view", http.StatusFound)
}

// Delete handles DELETE /events/{id}. Unknown ids still redirect home.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.eventService.DeleteEvent(r.PathValue("id")); err != nil {
		h.logger.Error().Err(err).Msg("deleting event failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// findEvent resolves {id} to an event, writing the error response itself when
// it cannot.
func (h *EventHandler) findEvent(w http.ResponseWriter, r *http.Request) (*model.Event, bool) {
	event, err := h.eventService.GetEvent(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(w, "Event not found", http.StatusNotFound)
			return nil, false
		}
		h.logger.Error().Err(err).Msg("fetching event failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil, false
	}
	return event, true
}

func (h *EventHandler) pageData(r *http.Request, title string, event *model.Event) map[string]any {
	data := map[string]any{
		"Title": title,
	}
	if event != nil {
		data["Event"] = event
	}
	if user, ok := middleware.UserFrom(r.Context()); ok {
		data["User"] = &user
	}
	return data
}
