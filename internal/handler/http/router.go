package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/shiftwise/shiftwise-backend-go/internal/handler/http/middleware"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	Env             string
	StorageBasePath string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	shiftHandler ShiftHandler,
	assignmentHandler AssignmentHandler,
	performanceHandler PerformanceHandler,
	workerHandler WorkerHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "shiftwise-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Uploaded signature images
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.StorageBasePath)))
	r.Get("/uploads/*", func(w http.ResponseWriter, r *http.Request) {
		fileServer.ServeHTTP(w, r)
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", shiftHandler.List)

				// Elevated only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireElevated)
					r.Post("/", shiftHandler.Create)
				})

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", shiftHandler.Get)
					r.Get("/assignments", assignmentHandler.ListByShift)
					r.Get("/performance", performanceHandler.ListByShift)

					r.Post("/book", assignmentHandler.Book)
					r.Delete("/book", assignmentHandler.Unbook)
					r.Post("/complete", assignmentHandler.Complete)

					// Elevated only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireElevated)
						r.Put("/", shiftHandler.Update)
						r.Delete("/", shiftHandler.Delete)
						r.Post("/assignments", assignmentHandler.Assign)
						r.Delete("/assignments/{worker_id}", assignmentHandler.Unassign)
						r.Post("/complete/{worker_id}", assignmentHandler.Complete)
						r.Post("/performance", performanceHandler.Create)
					})
				})
			})

			r.Route("/workers", func(r chi.Router) {
				r.Get("/{id}", workerHandler.Get)
				r.Get("/{id}/performance", performanceHandler.ListByWorker)

				// Elevated only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireElevated)
					r.Get("/", workerHandler.List)
					r.Post("/", workerHandler.Create)
				})

				// Owner only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireOwner)
					r.Delete("/{id}", workerHandler.Deactivate)
				})
			})
		})
	})
	return r
}
