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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/fisiomuv/preventa-api/internal/config"
	"github.com/fisiomuv/preventa-api/internal/infra/database"
	"github.com/fisiomuv/preventa-api/internal/infra/http/handlers"
	"github.com/fisiomuv/preventa-api/internal/infra/http/middleware"
	"github.com/fisiomuv/preventa-api/internal/infra/mail"
	"github.com/fisiomuv/preventa-api/internal/infra/queue"
	"github.com/fisiomuv/preventa-api/internal/usecase"
	"github.com/fisiomuv/preventa-api/pkg/logging"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.GetLogger().WithError(err).Fatal("invalid configuration")
	}

	logging.Setup(cfg.Env)
	log := logging.GetLogger()

	log.WithFields(map[string]interface{}{
		"environment": cfg.Env,
		"port":        cfg.Port,
		"cors_origin": cfg.CORSOrigin,
	}).Info("starting FisioMuv Recovery API")

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	defer db.Close()
	log.Info("database connected")

	mailSender := mail.NewEmailSender(
		cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass,
		cfg.EmailFrom, cfg.EmailTo,
	)
	if cfg.MailConfigured() {
		log.WithField("smtp_host", cfg.SMTPHost).Info("mail transport configured")
	} else {
		log.Warn("mail transport not configured, notification emails disabled")
	}

	// The broker is optional. Without it, notifications fall back to an
	// in-process goroutine inside the use case.
	var (
		producer   usecase.QueueProducerInterface
		rabbitConn *amqp.Connection
	)
	if cfg.QueueConfigured() {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.AMQPURL)
		if err != nil {
			log.WithError(err).Warn("RabbitMQ unavailable, notifications will be sent in-process")
		} else {
			defer rabbitMQ.Close()
			rabbitConn = rabbitMQ.Conn
			producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

			worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
			go worker.Start(queue.QueueName)
			log.Info("notification queue connected")
		}
	}

	leadRepo := database.NewLeadRepository(db)

	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo, producer, mailSender, cfg.PhoneRequired)

	preventaHandler := handlers.NewPreventaHandler(createLeadUC, leadRepo, cfg.IsProduction())
	healthHandler := handlers.NewHealthHandler(db, rabbitConn, cfg.MailConfigured())
	limiter := handlers.NewRateLimiter(cfg.RateLimitMax, time.Duration(cfg.RateLimitWindowMS)*time.Millisecond)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(limiter.Middleware)

		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"message":"FisioMuv Recovery API","version":%q,"environment":%q}`, version, cfg.Env)
		})
		r.Get("/health", healthHandler.Handle)
		r.Post("/preventa", preventaHandler.HandleCreate)
		r.Get("/preventa/{id}", preventaHandler.HandleGetByID)
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("addr", server.Addr).Info("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.WithField("signal", sig.String()).Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("shutdown did not complete cleanly")
	}
}
