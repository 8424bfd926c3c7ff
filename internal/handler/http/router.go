package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/saliheu/KAMU-AKYS/internal/config"
	"github.com/saliheu/KAMU-AKYS/internal/handler/http/middleware"
	"github.com/saliheu/KAMU-AKYS/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	leaveHandler LeaveHandler,
	employeeHandler EmployeeHandler,
	holidayHandler HolidayHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "leave-management"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/leave-requests", func(r chi.Router) {
				r.Post("/", leaveHandler.CreateRequest)
				r.Get("/my-requests", leaveHandler.GetMyRequests)
				r.Get("/{id}", leaveHandler.GetRequest)
				r.Put("/{id}/cancel", leaveHandler.CancelRequest)
				r.Put("/{id}/withdraw", leaveHandler.WithdrawRequest)

				// Manager, HR or admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Put("/{id}/approve", leaveHandler.ApproveRequest)
					r.Put("/{id}/reject", leaveHandler.RejectRequest)
				})

				// HR or admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Get("/", leaveHandler.ListRequests)
				})
			})

			r.Route("/employees/me", func(r chi.Router) {
				r.Get("/", employeeHandler.GetMe)
				r.Get("/balance", leaveHandler.GetMyBalances)
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", holidayHandler.List)

				// HR or admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/", holidayHandler.Create)
					r.Delete("/{id}", holidayHandler.Delete)
				})
			})
		})
	})

	return r
}
