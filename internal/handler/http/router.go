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

	"github.com/nominacol/nomina-backend-go/internal/handler/http/middleware"
	"github.com/nominacol/nomina-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	corsOrigins []string,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	noveltyHandler NoveltyHandler,
	advanceHandler AdvanceHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "nomina-backend"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
		})

		// Everything below needs a clerk session.
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Get("/{id}", employeeHandler.Get)
				r.Put("/{id}", employeeHandler.Update)
				r.Delete("/{id}", employeeHandler.Delete)
			})

			r.Route("/novelties", func(r chi.Router) {
				r.Get("/", noveltyHandler.List)
				r.Post("/", noveltyHandler.Create)
				r.Get("/{id}", noveltyHandler.Get)
				r.Put("/{id}", noveltyHandler.Update)
				r.Delete("/{id}", noveltyHandler.Delete)
			})

			r.Route("/advances", func(r chi.Router) {
				r.Get("/", advanceHandler.List)
				r.Post("/", advanceHandler.Create)
				r.Get("/{id}", advanceHandler.Get)
				r.Put("/{id}", advanceHandler.Update)
				r.Delete("/{id}", advanceHandler.Delete)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Post("/calculate", payrollHandler.Calculate)
				r.Get("/runs", payrollHandler.ListRuns)
				r.Get("/runs/{month}", payrollHandler.GetRun)
				r.Get("/runs/{month}/export", payrollHandler.ExportRun)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/rates", payrollHandler.GetRates)
				r.Put("/rates", payrollHandler.UpdateRates)
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	return r
}
