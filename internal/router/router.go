// Package router sets up all HTTP routes and middleware chains: the JSON
// API under /api with admin-gated mutations, and the rendered public site
// at the root.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"lorasite/internal/auth"
	"lorasite/internal/handlers"
	"lorasite/internal/middleware"
)

// Deps bundles the wired handler groups and shared services the router
// mounts.
type Deps struct {
	Tokens      *auth.Tokens
	RateLimiter *middleware.RateLimiter
	UploadsDir  string

	Auth       *handlers.Auth
	Content    *handlers.Content
	Categories *handlers.Category
	Components *handlers.Component
	Menus      *handlers.Menu
	Media      *handlers.Media
	Users      *handlers.Users
	Settings   *handlers.Settings
	Homepage   *handlers.Homepage
	Public     *handlers.Public
}

// New creates the configured chi router with all middleware and route
// groups wired up.
func New(d Deps) chi.Router {
	r := chi.NewRouter()

	// Global middleware.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.LoadClaims(d.Tokens))

	r.Get("/health", d.Public.Health)

	r.Route("/api", func(r chi.Router) {
		// Auth endpoints are rate limited against brute force.
		r.Route("/auth", func(r chi.Router) {
			r.Use(d.RateLimiter.Middleware)
			r.Post("/login", d.Auth.Login)
			r.Post("/register", d.Auth.Register)
			r.Post("/forgot-password", d.Auth.ForgotPassword)
			r.Post("/reset-password", d.Auth.ResetPassword)
			r.Post("/totp/setup", d.Auth.TOTPSetup)
			r.Post("/totp/verify", d.Auth.TOTPVerify)
		})

		r.Route("/content", func(r chi.Router) {
			r.Get("/", d.Content.List)
			r.Get("/{id}", d.Content.Get)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/", d.Content.Create)
				r.Put("/{id}", d.Content.Update)
				r.Delete("/{id}", d.Content.Delete)
			})
		})

		r.Route("/category", func(r chi.Router) {
			r.Get("/", d.Categories.List)
			r.Get("/{id}", d.Categories.Get)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/", d.Categories.Create)
				r.Put("/{id}", d.Categories.Update)
				r.Delete("/{id}", d.Categories.Delete)
			})
		})

		r.Route("/component", func(r chi.Router) {
			r.Get("/", d.Components.List)
			r.Get("/slug/{slug}", d.Components.GetBySlug)
			r.Get("/{id}", d.Components.Get)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/", d.Components.Create)
				r.Put("/{id}", d.Components.Update)
				r.Delete("/{id}", d.Components.Delete)
			})
		})

		r.Route("/menu", func(r chi.Router) {
			r.Get("/", d.Menus.List)
			r.Get("/{id}", d.Menus.Get)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/", d.Menus.Create)
				r.Put("/{id}", d.Menus.Update)
				r.Delete("/{id}", d.Menus.Delete)
			})
		})

		r.Route("/media", func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/", d.Media.List)
			r.Post("/", d.Media.Upload)
			r.Delete("/{id}", d.Media.Delete)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/", d.Users.List)
			r.Post("/", d.Users.Create)
			r.Get("/{id}", d.Users.Get)
			r.Put("/{id}", d.Users.Update)
			r.Delete("/{id}", d.Users.Delete)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", d.Settings.Get)
			r.With(middleware.RequireAdmin).Put("/", d.Settings.Update)
		})

		r.Route("/homepage", func(r chi.Router) {
			r.Get("/", d.Homepage.Get)
			r.With(middleware.RequireAdmin).Put("/", d.Homepage.Update)
		})
	})

	// Uploaded media served from local disk. With S3 storage the media
	// URLs point at the bucket and this mount simply stays unused.
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(d.UploadsDir)))
	r.Get("/uploads/*", func(w http.ResponseWriter, r *http.Request) {
		fileServer.ServeHTTP(w, r)
	})

	// Public site.
	r.Get("/embed/{slug}", d.Public.ComponentEmbed)
	r.Get("/sitemap.xml", d.Public.Sitemap)
	r.Get("/", d.Public.Homepage)
	r.Get("/{slug}", d.Public.Page)
	r.NotFound(d.Public.NotFoundPage)

	return r
}
