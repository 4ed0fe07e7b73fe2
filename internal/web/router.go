package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/veya/veya-api/internal/config"
	"github.com/veya/veya-api/internal/handlers"
)

func Router(cfg config.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handlers.Health)

	r.Route("/api", func(api chi.Router) {
		// Public catalog reads
		api.Get("/templates/all", handlers.AllTemplates)
		api.Get("/templates/onboarding", handlers.OnboardingScreens)
		api.Get("/templates/{category}", handlers.CategoryTemplates)

		// User-scoped profile + onboarding
		api.Group(func(ur chi.Router) {
			ur.Use(handlers.RequireUser)
			ur.Get("/users/me/profile", handlers.GetMyProfile)
			ur.Post("/users/me/profile", handlers.SaveMyProfile)
			ur.Put("/users/me/profile", handlers.UpdateMyProfile)
			ur.Get("/users/me/onboarding/status", handlers.OnboardingStatus)
			ur.Get("/onboarding/status", handlers.OnboardingStatus)
			ur.Post("/onboarding/screen", handlers.UpdateOnboardingScreen)
		})

		// Admin catalog management
		api.Route("/admin/templates", func(ar chi.Router) {
			ar.Use(handlers.RequireAdmin(cfg.AdminToken))
			ar.Post("/seed-defaults", handlers.AdminSeedDefaults)
			ar.Post("/reset-defaults", handlers.AdminResetDefaults)
			ar.Get("/{category}", handlers.AdminGetCategory)
			ar.Put("/{category}", handlers.AdminReplaceTemplates)
			ar.Post("/{category}/add", handlers.AdminAddTemplate)
			ar.Delete("/{category}/{code}", handlers.AdminDeactivateTemplate)
		})
	})

	return r
}
