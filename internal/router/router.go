package router

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"

	mem "pet-treatments/internal/adapters/storage/memory"
	pg "pet-treatments/internal/adapters/storage/postgres"
	"pet-treatments/internal/domain/dosage"
	"pet-treatments/internal/domain/periodicity"
	"pet-treatments/internal/domain/treatments"
	"pet-treatments/internal/middleware"
	"pet-treatments/internal/ports/auth"

	_ "pet-treatments/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger *slog.Logger

	// RateLimiter nil => sin rate limit.
	RateLimiter *middleware.RateLimiter

	// Vacío => "*".
	CORSAllowedOrigins []string
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	origins := opts.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(opts.Logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", middleware.DebugUserHeader},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				if err = pg.ApplySchema(context.Background(), opened); err != nil {
					_ = opened.Close()
				}
			}
			if err == nil {
				db = opened
			} else {
				slog.Warn("postgres unavailable, using in-memory storage", "error", err)
			}
		}
	}

	var treatmentRepo treatments.Repository
	if db != nil {
		treatmentRepo = pg.NewTreatmentsRepo(db)
	} else {
		treatmentRepo = mem.NewTreatmentRepo()
	}

	treatmentsSvc := treatments.NewService(treatmentRepo)

	// API: health/metrics/swagger quedan fuera del rate limit.
	r.Group(func(api chi.Router) {
		if opts.RateLimiter != nil {
			api.Use(opts.RateLimiter.Handler)
		}
		api.Use(middleware.AuthContext(opts.AuthVerifier))

		dosage.RegisterRoutes(api)
		periodicity.RegisterRoutes(api)
		treatments.RegisterRoutes(api, treatmentsSvc)
	})

	return r
}
