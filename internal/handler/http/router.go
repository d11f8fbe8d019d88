package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/config"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/handler/http/middleware"
	"github.com/SVijayB/jeyspecialneedscentre-backend/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	branchHandler BranchHandler,
	attendanceHandler AttendanceHandler,
	checkoutHandler CheckoutHandler,
	leaveHandler LeaveHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "jeycentre-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
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

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", userHandler.GetMe)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", userHandler.Create)
					r.Get("/", userHandler.List)
					r.Get("/{id}", userHandler.Get)
					r.Put("/{id}", userHandler.Update)
				})
			})

			r.Route("/branches", func(r chi.Router) {
				r.Get("/", branchHandler.List)
				r.Get("/{id}", branchHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireSuperAdmin)
					r.Post("/", branchHandler.Create)
					r.Put("/{id}", branchHandler.Update)
					r.Delete("/{id}", branchHandler.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/today", attendanceHandler.GetToday)
				r.Get("/", attendanceHandler.List)

				r.Route("/qr", func(r chi.Router) {
					r.Post("/generate", attendanceHandler.GenerateQR)
					r.Post("/scan", attendanceHandler.ScanQR)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireSuperAdmin)
					r.Delete("/{id}", attendanceHandler.Delete)
				})
			})

			r.Route("/checkout-requests", func(r chi.Router) {
				r.Post("/", checkoutHandler.Submit)
				r.Get("/", checkoutHandler.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireReviewer)
					r.Post("/{id}/approve", checkoutHandler.Approve)
					r.Post("/{id}/reject", checkoutHandler.Reject)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Post("/", leaveHandler.Apply)
				r.Get("/", leaveHandler.List)
				r.Put("/{id}", leaveHandler.Update)
				r.Delete("/{id}", leaveHandler.Delete)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireReviewer)
					r.Post("/{id}/approve", leaveHandler.Approve)
					r.Post("/{id}/reject", leaveHandler.Reject)
				})
			})
		})
	})
	return r
}
