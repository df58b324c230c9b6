package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/burgerclub/burger-tracker-api/internal/auth"
)

type Handlers struct {
	Auth        *auth.AuthHandler
	Burger      *BurgerHandler
	Feed        *FeedHandler
	Leaderboard *LeaderboardHandler
	Badge       *BadgeHandler
	Profile     *ProfileHandler
	APIKey      *APIKeyHandler
}

func RegisterRoutes(r *chi.Mux, h Handlers) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(h.Auth.AuthMiddleware)

	// Initialize Huma API
	config := huma.DefaultConfig("Burger Tracker API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookieAuth": {
			Type: "apiKey",
			In:   "cookie",
			Name: "auth_token",
		},
	}
	api := humachi.New(r, config)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Get("/auth/google/login", h.Auth.HandleLogin)
	r.Get("/auth/google/callback", h.Auth.HandleCallback)

	huma.Get(api, "/leaderboard", h.Leaderboard.HandleLeaderboard)

	// Protected routes
	secured := func(o *huma.Operation) {
		o.Security = []map[string][]string{{"cookieAuth": {}}}
	}

	huma.Get(api, "/me", h.Auth.HandleMe, secured)
	huma.Patch(api, "/me", h.Profile.HandleUpdateProfile, secured)

	huma.Post(api, "/burgers", h.Burger.HandleCreate, secured)
	huma.Get(api, "/burgers", h.Burger.HandleList, secured)
	huma.Patch(api, "/burgers/{id}", h.Burger.HandleUpdate, secured)
	huma.Delete(api, "/burgers/{id}", h.Burger.HandleDelete, secured)
	huma.Get(api, "/stats", h.Burger.HandleStats, secured)

	huma.Get(api, "/feed", h.Feed.HandleFeed, secured)
	huma.Post(api, "/burgers/{id}/likes", h.Feed.HandleLike, secured)
	huma.Delete(api, "/burgers/{id}/likes", h.Feed.HandleUnlike, secured)
	huma.Get(api, "/burgers/{id}/comments", h.Feed.HandleListComments, secured)
	huma.Post(api, "/burgers/{id}/comments", h.Feed.HandleCreateComment, secured)

	huma.Get(api, "/badges", h.Badge.HandleListBadges, secured)

	huma.Post(api, "/api-keys", h.APIKey.HandleCreate, secured)
	huma.Get(api, "/api-keys", h.APIKey.HandleList, secured)
	huma.Delete(api, "/api-keys/{id}", h.APIKey.HandleDelete, secured)
}
