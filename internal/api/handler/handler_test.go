package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"eventman/internal/api/router"
	"eventman/internal/core/model"
	"eventman/internal/core/repository"
	"eventman/internal/core/service"
	"eventman/internal/session"
	"eventman/internal/view"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	handler   http.Handler
	userRepo  repository.UserRepository
	eventRepo repository.EventRepository
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	logger := zerolog.Nop()
	views, err := view.NewRenderer(logger)
	require.NoError(t, err)

	userRepo := repository.NewInMemoryUserRepository()
	eventRepo := repository.NewInMemoryEventRepository()
	sessions := session.NewManager(session.NewInMemoryStore(), time.Hour)

	return &testApp{
		handler: router.NewRouter(
			service.NewUserService(userRepo),
			service.NewEventService(eventRepo),
			sessions,
			views,
			3600,
			logger,
		),
		userRepo:  userRepo,
		eventRepo: eventRepo,
	}
}

func (app *testApp) do(method, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	app.handler.ServeHTTP(rec, req)
	return rec
}

// signUp registers a user and returns the session cookie.
func (app *testApp) signUp(t *testing.T, name, email, password string) *http.Cookie {
	t.Helper()

	rec := app.do(http.MethodPost, "/signup", url.Values{
		"name":     {name},
		"email":    {email},
		"password": {password},
	})
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))

	for _, c := range rec.Result().Cookies() {
		if c.Name == "session_token" && c.Value != "" {
			return c
		}
	}
	t.Fatal("signup did not set a session cookie")
	return nil
}

func eventForm(name, date, location, description string) url.Values {
	return url.Values{
		"name":        {name},
		"date":        {date},
		"location":    {location},
		"description": {description},
	}
}

func (app *testApp) onlyEvent(t *testing.T) *model.Event {
	t.Helper()
	events, err := app.eventRepo.FindAll()
	require.NoError(t, err)
	require.Len(t, events, 1)
	return events[0]
}

func TestListIsPublic(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No events yet")
	assert.Contains(t, rec.Body.String(), "Log in")
}

func TestProtectedRoutesRedirectToLogin(t *testing.T) {
	app := newTestApp(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/events/new"},
		{http.MethodPost, "/events"},
		{http.MethodGet, "/events/some-id/view"},
		{http.MethodGet, "/events/some-id/edit"},
		{http.MethodGet, "/dashboard"},
	}
	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			rec := app.do(p.method, p.path, nil)
			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, "/login", rec.Header().Get("Location"))
		})
	}

	// The gate must fire before any event logic runs.
	rec := app.do(http.MethodPost, "/events", eventForm("Concert", "2025-01-01", "Hall A", "Live music"))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	events, err := app.eventRepo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestSignupThenLogin(t *testing.T) {
	app := newTestApp(t)
	app.signUp(t, "Alice", "alice@example.com", "s3cret")

	rec := app.do(http.MethodPost, "/login", url.Values{
		"email":    {"alice@example.com"},
		"password": {"s3cret"},
	})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestSignupDuplicateEmail(t *testing.T) {
	app := newTestApp(t)
	app.signUp(t, "Alice", "alice@example.com", "s3cret")

	rec := app.do(http.MethodPost, "/signup", url.Values{
		"name":     {"Impostor"},
		"email":    {"alice@example.com"},
		"password": {"other"},
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email already registered.")

	user, err := app.userRepo.FindByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
}

func TestLoginFailureIsUniform(t *testing.T) {
	app := newTestApp(t)
	app.signUp(t, "Alice", "alice@example.com", "s3cret")

	wrongPassword := app.do(http.MethodPost, "/login", url.Values{
		"email":    {"alice@example.com"},
		"password": {"wrong"},
	})
	unknownEmail := app.do(http.MethodPost, "/login", url.Values{
		"email":    {"nobody@example.com"},
		"password": {"s3cret"},
	})

	assert.Equal(t, http.StatusOK, wrongPassword.Code)
	assert.Equal(t, http.StatusOK, unknownEmail.Code)
	assert.Contains(t, wrongPassword.Body.String(), "Invalid email or password.")
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestCreateAndViewEvent(t *testing.T) {
	app := newTestApp(t)
	cookie := app.signUp(t, "Alice", "alice@example.com", "s3cret")

	rec := app.do(http.MethodPost, "/events", eventForm("Concert", "2025-01-01", "Hall A", "Live music"), cookie)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))

	event := app.onlyEvent(t)
	rec = app.do(http.MethodGet, "/events/"+event.ID+"/view", nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Concert")
	assert.Contains(t, body, "January 1, 2025")
	assert.Contains(t, body, "Hall A")
	assert.Contains(t, body, "Live music")
}

func TestCreateEventMissingField(t *testing.T) {
	app := newTestApp(t)
	cookie := app.signUp(t, "Alice", "alice@example.com", "s3cret")

	rec := app.do(http.MethodPost, "/events", eventForm("Concert", "2025-01-01", "", "Live music"), cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	events, err := app.eventRepo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestCreateEventBadDate(t *testing.T) {
	app := newTestApp(t)
	cookie := app.signUp(t, "Alice", "alice@example.com", "s3cret")

	rec := app.do(http.MethodPost, "/events", eventForm("Concert", "not-a-date", "Hall A", "Live music"), cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestViewUnknownEvent(t *testing.T) {
	app := newTestApp(t)
	cookie := app.signUp(t, "Alice", "alice@example.com", "s3cret")

	rec := app.do(http.MethodGet, "/events/no-such-id/view", nil, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(http.MethodGet, "/events/no-such-id/edit", nil, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateEventViaMethodOverride(t *testing.T) {
	app := newTestApp(t)
	cookie := app.signUp(t, "Alice", "alice@example.com", "s3cret")

	app.do(http.MethodPost, "/events", eventForm("Concert", "2025-01-01", "Hall A", "Live music"), cookie)
	event := app.onlyEvent(t)

	form := eventForm("Recital", "2025-02-01", "Hall B", "Piano")
	form.Set("_method", "PUT")
	rec := app.do(http.MethodPost, "/events/"+event.ID, form, cookie)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/events/"+event.ID+"/view", rec.Header().Get("Location"))

	updated := app.onlyEvent(t)
	assert.Equal(t, "Recital", updated.Name)
	assert.Equal(t, "Hall B", updated.Location)
	assert.Equal(t, "Piano", updated.Description)
}

func TestUpdateUnknownEvent(t *testing.T) {
	app := newTestApp(t)
	cookie := app.signUp(t, "Alice", "alice@example.com", "s3cret")

	form := eventForm("Recital", "2025-02-01", "Hall B", "Piano")
	form.Set("_method", "PUT")
	rec := app.do(http.MethodPost, "/events/no-such-id", form, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteEventIsIdempotent(t *testing.T) {
	app := newTestApp(t)
	cookie := app.signUp(t, "Alice", "alice@example.com", "s3cret")

	app.do(http.MethodPost, "/events", eventForm("Concert", "2025-01-01", "Hall A", "Live music"), cookie)
	event := app.onlyEvent(t)

	form := url.Values{"_method": {"DELETE"}}
	for i := 0; i < 2; i++ {
		rec := app.do(http.MethodPost, "/events/"+event.ID, form, cookie)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	}

	events, err := app.eventRepo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestDashboardGreetsUser(t *testing.T) {
	app := newTestApp(t)
	cookie := app.signUp(t, "Alice", "alice@example.com", "s3cret")

	rec := app.do(http.MethodGet, "/dashboard", nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome Alice")
}

func TestLogoutDestroysSession(t *testing.T) {
	app := newTestApp(t)
	cookie := app.signUp(t, "Alice", "alice@example.com", "s3cret")

	rec := app.do(http.MethodGet, "/logout", nil, cookie)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	// The old token no longer opens protected routes.
	rec = app.do(http.MethodGet, "/events/new", nil, cookie)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	// Logging out twice is harmless.
	rec = app.do(http.MethodGet, "/logout", nil, cookie)
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestLoginPageRedirectsWhenAuthenticated(t *testing.T) {
	app := newTestApp(t)
	cookie := app.signUp(t, "Alice", "alice@example.com", "s3cret")

	rec := app.do(http.MethodGet, "/login", nil, cookie)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestListShowsUserAndEvents(t *testing.T) {
	app := newTestApp(t)
	cookie := app.signUp(t, "Alice", "alice@example.com", "s3cret")

	app.do(http.MethodPost, "/events", eventForm("Concert", "2025-01-01", "Hall A", "Live music"), cookie)

	rec := app.do(http.MethodGet, "/", nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Hello, Alice")
	assert.Contains(t, body, "Concert")
}
