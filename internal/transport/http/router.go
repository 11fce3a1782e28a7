package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-intake-sheets/internal/application/auth"
	"github.com/go-intake-sheets/internal/application/intake"
	"github.com/go-intake-sheets/internal/config"
	"github.com/go-intake-sheets/internal/transport/http/handler"
	appmiddleware "github.com/go-intake-sheets/internal/transport/http/middleware"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authSvc := auth.NewService(deps.Sessions, deps.Mailer, cfg.GatewayTimeout)
	intakeSvc := intake.NewService(deps.Ledger, cfg.GatewayTimeout)

	pageH := handler.NewPageHandler()
	authH := handler.NewAuthHandler(authSvc)
	intakeH := handler.NewIntakeHandler(intakeSvc)
	healthH := handler.NewHealthHandler(cfg)

	sessionMw := appmiddleware.Session(deps.Sessions, deps.Cookies)

	// Probes stay outside the session middleware; they never need a cookie.
	r.Get("/health", healthH.Health)
	r.Get("/debug", healthH.Debug)

	r.Group(func(r chi.Router) {
		r.Use(sessionMw)

		r.Get("/", pageH.Index)
		r.Get("/login", pageH.Login)
		r.Get("/form", pageH.Form)
		r.Get("/logout", authH.Logout)

		r.Post("/send_code", authH.SendCode)
		r.Post("/verify_code", authH.VerifyCode)
		r.Post("/submit_linkedin", intakeH.SubmitLinkedIn)
	})

	return r
}
