package router

import (
	"encoding/json"
	"net/http"

	"eventman/internal/api/handler"
	"eventman/internal/api/middleware"
	"eventman/internal/core/service"
	"eventman/internal/session"
	"eventman/internal/view"

	"github.com/rs/zerolog"
)

func NewRouter(
	userService service.UserService,
	eventService service.EventService,
	sessions *session.Manager,
	views *view.Renderer,
	cookieTTLSeconds int,
	logger zerolog.Logger,
) http.Handler {
	// Initialize handlers
	authHandler := handler.NewAuthHandler(userService, sessions, views, cookieTTLSeconds, logger)
	eventHandler := handler.NewEventHandler(eventService, views, logger)
	authMiddleware := middleware.NewAuthMiddleware(sessions, logger)

	// Create router
	mux := http.NewServeMux()

	// protected routes short-circuit to /login without a live session
	protected := func(h http.HandlerFunc) http.Handler {
		return authMiddleware.RequireAuth(h)
	}

	// Health check endpoint
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status": "ok",
		})
	})

	// Event routes
	mux.HandleFunc("GET /{$}", eventHandler.List)
	mux.Handle("GET /events/new", protected(eventHandler.NewForm))
	mux.Handle("POST /events", protected(eventHandler.Create))
	mux.Handle("GET /events/{id}/view", protected(eventHandler.View))
	mux.Handle("GET /events/{id}/edit", protected(eventHandler.EditForm))
	mux.Handle("PUT /events/{id}", protected(eventHandler.Update))
	mux.Handle("DELETE /events/{id}", protected(eventHandler.Delete))

	// Auth routes
	mux.HandleFunc("GET /login", authHandler.LoginPage)
	mux.HandleFunc("POST /login", authHandler.Login)
	mux.HandleFunc("GET /signup", authHandler.SignupPage)
	mux.HandleFunc("POST /signup", authHandler.Signup)
	mux.HandleFunc("GET /logout", authHandler.Logout)
	mux.Handle("GET /dashboard", protected(authHandler.Dashboard))

	// Method override must run before dispatch so PUT/DELETE forms route
	// correctly; session resolution runs on every request so public pages can
	// personalize.
	return middleware.CORSMiddleware(
		middleware.MethodOverride(
			middleware.LoggingMiddleware(logger)(
				authMiddleware.Authenticate(mux),
			),
		),
	)
}
