package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/FallenDelta563/EMOR-OS-V1/internal/config"
	"github.com/FallenDelta563/EMOR-OS-V1/internal/db"
	"github.com/FallenDelta563/EMOR-OS-V1/internal/email"
	"github.com/FallenDelta563/EMOR-OS-V1/internal/handlers"
	"github.com/FallenDelta563/EMOR-OS-V1/internal/mailer"
	"github.com/FallenDelta563/EMOR-OS-V1/internal/services"
	"github.com/FallenDelta563/EMOR-OS-V1/pkg/logger"
	"github.com/FallenDelta563/EMOR-OS-V1/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var version = "dev"

// SetupServer initializes and returns a configured HTTP server
func SetupServer(cfg *config.Config) (*http.Server, error) {
	if cfg == nil {
		return nil, errors.New("configuration is required")
	}

	if cfg.Server.Port <= 0 {
		return nil, errors.New("invalid server port")
	}

	// Initialize database
	database, err := db.NewDatabase(cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Seed the default email templates; existing rows are left alone
	if err := database.SeedBotConfigs(); err != nil {
		return nil, fmt.Errorf("failed to seed bot configs: %w", err)
	}

	// Initialize repositories
	inquiryRepo := db.NewInquiryRepository(database.GetDB())
	prospectRepo := db.NewProspectRepository(database.GetDB())
	noteRepo := db.NewNoteRepository(database.GetDB())
	logRepo := db.NewEmailLogRepository(database.GetDB())
	prefsRepo := db.NewPreferencesRepository(database.GetDB())
	botRepo := db.NewBotConfigRepository(database.GetDB())

	// Initialize the outbound transport and the draft generator
	mail := mailer.NewSMTPMailer(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Username,
		cfg.SMTP.Password,
		cfg.SMTP.From,
		cfg.SMTP.FromName,
	)
	generator := email.NewGenerator()

	// Initialize services
	inquiryService := services.NewInquiryService(inquiryRepo, generator)
	prospectService := services.NewProspectService(prospectRepo, generator)
	noteService := services.NewNoteService(noteRepo, inquiryRepo)
	prefsService := services.NewPreferencesService(prefsRepo, cfg.App.BaseURL)
	autoReplyService := services.NewAutoReplyService(botRepo, logRepo, inquiryRepo, prefsService, mail, cfg.SMTP.From)
	emailService := services.NewEmailService(botRepo, logRepo, inquiryRepo, mail, cfg.Accounts, cfg.SMTP.From)
	botService := services.NewBotConfigService(botRepo)

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	// Setup routes
	setupRoutes(router, inquiryService, autoReplyService, prospectService, noteService, botService, emailService, prefsService)

	// Create server with security timeouts
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return srv, nil
}

// setupRoutes configures all the HTTP routes
func setupRoutes(
	router *gin.Engine,
	inquiryService *services.InquiryService,
	autoReplyService *services.AutoReplyService,
	prospectService *services.ProspectService,
	noteService *services.NoteService,
	botService *services.BotConfigService,
	emailService *services.EmailService,
	prefsService *services.PreferencesService,
) {
	// Initialize handlers
	inquiryHandler := handlers.NewInquiryHandler(inquiryService, autoReplyService)
	prospectHandler := handlers.NewProspectHandler(prospectService)
	noteHandler := handlers.NewNoteHandler(noteService)
	botHandler := handlers.NewEmailBotHandler(botService, emailService)
	emailHandler := handlers.NewEmailHandler(emailService)
	unsubscribeHandler := handlers.NewUnsubscribeHandler(prefsService)

	// Basic health check endpoint
	router.GET("/health", handleHealthCheck)

	api := router.Group("/api")
	{
		// Public form intake and unsubscribe links
		api.POST("/inquiry", inquiryHandler.Create)
		api.POST("/unsubscribe", unsubscribeHandler.Unsubscribe)

		// Inquiry management
		api.GET("/inquiries", inquiryHandler.List)
		api.POST("/inquiries/bulk", inquiryHandler.Bulk)
		api.GET("/inquiries/:id", inquiryHandler.Get)
		api.PATCH("/inquiries/:id", inquiryHandler.Update)
		api.DELETE("/inquiries/:id", inquiryHandler.Purge)
		api.POST("/inquiries/:id/archive", inquiryHandler.Archive)
		api.POST("/inquiries/:id/restore", inquiryHandler.Restore)
		api.POST("/inquiries/:id/preview", inquiryHandler.Preview)
		api.GET("/inquiries/:id/emails", emailHandler.History)
		api.GET("/inquiries/:id/notes", noteHandler.List)
		api.POST("/inquiries/:id/notes", noteHandler.Create)

		// Notes
		api.PUT("/notes/:id", noteHandler.Update)
		api.DELETE("/notes/:id", noteHandler.Delete)

		// Prospects
		api.GET("/prospects", prospectHandler.List)
		api.GET("/prospects/:id", prospectHandler.Get)
		api.POST("/prospects/:id/preview", prospectHandler.Preview)

		// Template editor and sending
		api.GET("/email-bots", botHandler.List)
		api.POST("/email-bots", botHandler.Update)
		api.POST("/email-bots/test", botHandler.SendTest)
		api.POST("/send-email", emailHandler.Send)
		api.GET("/accounts", emailHandler.Accounts)
	}
}

// handleHealthCheck handles the health check endpoint
func handleHealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"time":    time.Now().UTC(),
		"version": version,
		"service": "emor-os",
	})
}

// StartServer starts the HTTP server and handles graceful shutdown
func StartServer(srv *http.Server) error {
	// Start server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	return nil
}
