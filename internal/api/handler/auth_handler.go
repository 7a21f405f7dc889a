package handler

import (
	"errors"
	"fmt"
	"net/http"

	"eventman/internal/api/middleware"
	"eventman/internal/core/model"
	"eventman/internal/core/service"
	"eventman/internal/session"
	"eventman/internal/view"

	"github.com/rs/zerolog"
)

type AuthHandler struct {
	userService service.UserService
	sessions    *session.Manager
	views       *view.Renderer
	cookieTTL   int
	logger      zerolog.Logger
}

func NewAuthHandler(userService service.UserService, sessions *session.Manager, views *view.Renderer, cookieTTLSeconds int, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		sessions:    sessions,
		views:       views,
		cookieTTL:   cookieTTLSeconds,
		logger:      logger.With().Str("handler", "auth").Logger(),
	}
}

// LoginPage handles GET /login. An already-authenticated visitor is sent home.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserFrom(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	h.views.Render(w, "login.html", map[string]any{
		"Title": "Log in",
	})
}

// Login handles POST /login. The failure message is identical for an unknown
// email and a wrong password.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	user, err := h.userService.Authenticate(email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.views.Render(w, "login.html", map[string]any{
				"Title": "Log in",
				"Error": "Invalid email or password.",
			})
			return
		}
		h.logger.Error().Err(err).Msg("login failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := h.startSession(w, user.Projection()); err != nil {
		h.logger.Error().Err(err).Msg("starting session failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// SignupPage handles GET /signup.
func (h *AuthHandler) SignupPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserFrom(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	h.views.Render(w, "signup.html", map[string]any{
		"Title": "Sign up",
	})
}

// Signup handles POST /signup: registers the user and logs them in.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")
	email := r.FormValue("email")
	password := r.FormValue("password")

	user, err := h.userService.Register(name, email, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			h.views.Render(w, "signup.html", map[string]any{
				"Title": "Sign up",
				"Error": "Email already registered.",
			})
		case errors.Is(err, service.ErrMissingFields):
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusBadRequest)
			h.views.Render(w, "signup.html", map[string]any{
				"Title": "Sign up",
				"Error": "All fields are required.",
			})
		default:
			h.logger.Error().Err(err).Msg("signup failed")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	if err := h.startSession(w, user.Projection()); err != nil {
		h.logger.Error().Err(err).Msg("starting session failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout handles GET /logout. Destroying an unknown or missing session is a
// no-op; either way the visitor ends up logged out at /.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.CookieName); err == nil && cookie.Value != "" {
		if err := h.sessions.Destroy(cookie.Value); err != nil {
			h.logger.Error().Err(err).Msg("destroying session failed")
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}

// Dashboard handles GET /dashboard, a protected personalized greeting.
func (h *AuthHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "Welcome %s, to your dashboard!", user.Name)
}

// startSession allocates a session and delivers its token as a cookie. The
// cookie is deliberately not Secure-flagged; the app serves plain HTTP.
func (h *AuthHandler) startSession(w http.ResponseWriter, user model.Projection) error {
	token, err := h.sessions.Create(user)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   h.cookieTTL,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
