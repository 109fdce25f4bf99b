package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"phrasebot/internal/api"
	"phrasebot/internal/calendar"
	"phrasebot/internal/config"
	"phrasebot/internal/handler"
	"phrasebot/internal/middleware"
	"phrasebot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Phrasebot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully",
		zap.String("api_base_url", cfg.APIBaseURL),
		zap.Int("page_size", cfg.PageSize),
		zap.Int("quiz_questions", cfg.QuizQuestions),
	)

	// REST client for the external trainer API
	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, logger)

	// Initialize services
	authService := service.NewAuthService(cfg.BotPassword)
	itemService := service.NewItemService(client, cfg.PageSize, logger)
	exerciseService := service.NewExerciseService(client, logger)

	// Calendar planner seeded with the starter events
	planner := calendar.NewPlanner(calendar.SeedEvents())

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	bot.Use(middleware.AuthMiddleware(authService, logger))

	// Initialize handler
	h := handler.NewHandler(bot, authService, itemService, exerciseService, planner, cfg.QuizQuestions, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	bot.Stop()

	logger.Info("Bot stopped gracefully")
}
