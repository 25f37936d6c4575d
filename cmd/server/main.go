package main

import (
	"log/slog"
	"net/http"
	"os"

	authh "entrepreneur-tracker/internal/http/handlers/auth"
	bootcamph "entrepreneur-tracker/internal/http/handlers/bootcamp"
	businessh "entrepreneur-tracker/internal/http/handlers/business"
	entrepreneurh "entrepreneur-tracker/internal/http/handlers/entrepreneur"
	paymenth "entrepreneur-tracker/internal/http/handlers/payment"
	reporth "entrepreneur-tracker/internal/http/handlers/report"

	"entrepreneur-tracker/internal/http/handlers"
	mw "entrepreneur-tracker/internal/http/middleware"
	"entrepreneur-tracker/internal/lib/config"
	"entrepreneur-tracker/internal/lib/jwt"
	"entrepreneur-tracker/internal/lib/sl"
	repo "entrepreneur-tracker/internal/repository"
	"entrepreneur-tracker/internal/service/auth"
	"entrepreneur-tracker/internal/service/bootcamp"
	"entrepreneur-tracker/internal/service/business"
	"entrepreneur-tracker/internal/service/entrepreneur"
	"entrepreneur-tracker/internal/service/payment"
	"entrepreneur-tracker/internal/service/report"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	envLocal = "local"
	envProd  = "prod"
)

func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	log.Info("starting entrepreneur tracker", slog.String("env", cfg.Env))

	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Error("failed to establish connection with database", sl.Err(err))
		os.Exit(1)
	}
	defer db.Close()

	trManager := manager.Must(trmsqlx.NewDefaultFactory(db))

	userRepo := repo.NewUserRepo(db, trmsqlx.DefaultCtxGetter)
	businessRepo := repo.NewBusinessRepo(db, trmsqlx.DefaultCtxGetter)
	paymentRepo := repo.NewPaymentRepo(db, trmsqlx.DefaultCtxGetter)
	bootcampRepo := repo.NewBootcampRepo(db, trmsqlx.DefaultCtxGetter)
	reportRepo := repo.NewReportRepo(db, trmsqlx.DefaultCtxGetter)

	tokens := jwt.NewMaker(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	authService := auth.NewAuthService(trManager, userRepo, tokens)
	businessService := business.NewBusinessService(businessRepo)
	paymentService := payment.NewPaymentService(trManager, paymentRepo, businessRepo)
	bootcampService := bootcamp.NewBootcampService(trManager, bootcampRepo, userRepo)
	entrepreneurService := entrepreneur.NewEntrepreneurService(trManager, userRepo, businessRepo, paymentRepo, bootcampRepo)
	reportService := report.NewReportService(trManager, reportRepo)

	authHandler := authh.NewAuthHandler(log, authService)
	businessHandler := businessh.NewBusinessHandler(log, businessService)
	paymentHandler := paymenth.NewPaymentHandler(log, paymentService)
	bootcampHandler := bootcamph.NewBootcampHandler(log, bootcampService)
	entrepreneurHandler := entrepreneurh.NewEntrepreneurHandler(log, entrepreneurService)
	reportHandler := reporth.NewReportHandler(log, reportService)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mw.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.HTTPServer.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	log.Info("starting http server", slog.String("address", cfg.HTTPServer.Address))

	// public endpoints
	router.Get("/api/health", handlers.Healthcheck())
	router.Post("/api/auth/register", authHandler.Register)
	router.Post("/api/auth/login", authHandler.Login)
	router.Handle("/metrics", promhttp.Handler())

	// authenticated endpoints
	router.Group(func(r chi.Router) {
		r.Use(mw.AuthMiddleware(tokens))

		r.Post("/api/businesses", businessHandler.Create)
		r.Get("/api/businesses/{userID}", businessHandler.ListByUser)
		r.Post("/api/entrepreneur/payment", paymentHandler.CreateOwn)
		r.Get("/api/entrepreneur/dashboard", entrepreneurHandler.Dashboard)

		// admin endpoints
		r.Group(func(r chi.Router) {
			r.Use(mw.AdminOnly)

			r.Get("/api/admin/entrepreneurs", entrepreneurHandler.List)
			r.Put("/api/admin/entrepreneurs/{userID}", entrepreneurHandler.Update)
			r.Delete("/api/admin/entrepreneurs/{userID}", entrepreneurHandler.Deactivate)
			r.Get("/api/admin/businesses/all", businessHandler.ListAll)
			r.Post("/api/admin/payments", paymentHandler.Create)
			r.Get("/api/admin/payments", paymentHandler.List)
			r.Put("/api/admin/payments/{paymentID}", paymentHandler.Update)
			r.Get("/api/admin/reports", reportHandler.Get)
			r.Post("/api/admin/bootcamp/assign", bootcampHandler.Assign)
			r.Get("/api/admin/bootcamp/cohorts", bootcampHandler.Cohorts)
		})
	})

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	if err := srv.ListenAndServe(); err != nil {
		log.Error("failed to start http server", sl.Err(err))
		os.Exit(1)
	}

	log.Error("http server stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}
	return log
}
