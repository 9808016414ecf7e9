package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/admitly/lead-capture-api/internal/infra/config"
	"github.com/admitly/lead-capture-api/internal/infra/database"
	"github.com/admitly/lead-capture-api/internal/infra/dispatch"
	"github.com/admitly/lead-capture-api/internal/infra/http/handlers"
	"github.com/admitly/lead-capture-api/internal/infra/http/middleware"
	"github.com/admitly/lead-capture-api/internal/infra/integration/sheets"
	"github.com/admitly/lead-capture-api/internal/infra/mail"
	"github.com/admitly/lead-capture-api/internal/infra/queue"
	"github.com/admitly/lead-capture-api/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connecting to database: %v", err)
	}
	defer db.Close()

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db)
	adminRepo := database.NewAdminRepository(db)

	// 2. Sheet client (degrades to unavailable when unconfigured)
	sheetClient, err := sheets.NewClient(context.Background(), sheets.Config{
		SpreadsheetID:   cfg.SheetsSpreadsheetID,
		CredentialsFile: cfg.SheetsCredentialsFile,
	})
	if err != nil {
		log.Fatalf("creating sheets client: %v", err)
	}

	// 3. Sync coordinator and dispatch. With RabbitMQ configured the
	// fire-and-forget handoff goes through the queue and a worker;
	// otherwise it runs as a detached goroutine.
	syncUC := usecase.NewSyncLeadsUseCase(leadRepo, sheetClient)

	var dispatcher usecase.SyncDispatcher
	var rabbit *queue.RabbitMQ
	if cfg.RabbitMQURL != "" {
		rabbit, err = queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			log.Fatalf("connecting to RabbitMQ: %v", err)
		}
		defer rabbit.Conn.Close()
		defer rabbit.Ch.Close()

		worker := queue.NewWorker(rabbit.Ch, syncUC)
		go worker.Start(queue.QueueName)

		dispatcher = queue.NewProducer(rabbit.Ch)
	} else {
		dispatcher = dispatch.NewBackgroundDispatcher(syncUC)
	}

	// 4. UseCases
	captureUC := usecase.NewCaptureLeadUseCase(leadRepo, dispatcher)
	manageUC := usecase.NewManageLeadsUseCase(leadRepo, dispatcher)

	// 5. Reconcile report mail (optional)
	var notifier usecase.ReconcileNotifier
	if cfg.MailConfigured() {
		notifier = mail.NewEmailSender(
			cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass,
			cfg.MailFrom, cfg.MailTo,
		)
	}

	// 6. Handlers
	tokens := middleware.NewTokenManager(cfg.JWTSecret, 7*24*time.Hour)
	leadHandler := handlers.NewLeadHandler(captureUC)
	adminHandler := handlers.NewAdminLeadHandler(manageUC, syncUC, notifier)
	authHandler := handlers.NewAuthHandler(adminRepo, tokens)

	var rabbitConn *amqp.Connection
	if rabbit != nil {
		rabbitConn = rabbit.Conn
	}
	healthHandler := handlers.NewHealthHandler(db, rabbitConn, sheetClient)

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Post("/api/auth/login", authHandler.HandleLogin)
	r.Post("/api/leads/submit", leadHandler.HandleSubmit)

	adminLimiter := handlers.NewRateLimiter(100, time.Minute)
	r.Group(func(r chi.Router) {
		r.Use(tokens.RequireAdmin)
		r.Use(adminLimiter.Throttle)
		r.Post("/api/auth/register", authHandler.HandleRegister)
		r.Get("/api/leads/all", adminHandler.HandleList)
		r.Get("/api/leads/{id}", adminHandler.HandleGet)
		r.Patch("/api/leads/{id}/status", adminHandler.HandleUpdateStatus)
		r.Delete("/api/leads/{id}", adminHandler.HandleDelete)
		r.Post("/api/leads/sync", adminHandler.HandleReconcile)
	})

	r.Get("/api/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.Printf("lead capture API listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
