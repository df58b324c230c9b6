package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/burgerclub/burger-tracker-api/internal/auth"
	"github.com/burgerclub/burger-tracker-api/internal/badges"
	"github.com/burgerclub/burger-tracker-api/internal/config"
	"github.com/burgerclub/burger-tracker-api/internal/database"
	"github.com/burgerclub/burger-tracker-api/internal/handlers"
	"github.com/burgerclub/burger-tracker-api/internal/notifier"
	"github.com/burgerclub/burger-tracker-api/internal/storage"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)

	// Photo storage; the server still runs without it, uploads fail.
	var uploader storage.Uploader
	s3, err := storage.NewS3Storage(context.Background(), cfg)
	if err != nil {
		logrus.Warnf("Photo storage not initialized: %v", err)
	} else {
		uploader = s3
	}

	// Discord notifier is optional as well.
	var clubNotifier notifier.Notifier
	if cfg.DiscordBotToken != "" {
		session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
		if err != nil {
			logrus.Warnf("Discord notifier not initialized: %v", err)
		} else {
			clubNotifier = notifier.NewDiscordNotifier(session, cfg.DiscordFeedChannelID)
		}
	}

	authHandler := auth.NewAuthHandler(cfg, db)
	evaluator := badges.NewEvaluator(db, badgeNotifier(clubNotifier))

	h := handlers.Handlers{
		Auth:        authHandler,
		Burger:      handlers.NewBurgerHandler(db, uploader, evaluator, clubNotifier, authHandler),
		Feed:        handlers.NewFeedHandler(db, authHandler),
		Leaderboard: handlers.NewLeaderboardHandler(db),
		Badge:       handlers.NewBadgeHandler(db, authHandler),
		Profile:     handlers.NewProfileHandler(db, uploader, authHandler),
		APIKey:      handlers.NewAPIKeyHandler(db, authHandler),
	}

	// Initialize Router
	r := chi.NewRouter()

	if cfg.EnableCORS {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{cfg.FrontendURL},
			AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type", "X-API-KEY"},
			AllowCredentials: true,
		}))
	}

	// Register Routes
	handlers.RegisterRoutes(r, h)

	// Start Server
	logrus.Infof("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}

// badgeNotifier narrows the optional club notifier for the evaluator;
// a typed nil interface must stay nil.
func badgeNotifier(n notifier.Notifier) badges.Notifier {
	if n == nil {
		return nil
	}
	return n
}
