package api

import (
	"strings"

	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts the public surface and the JWT-protected admin surface.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/projects", handlers.projectHandler.listProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
		r.Get("/certificates", handlers.certificateHandler.listCertificates())
		r.Get("/tags", handlers.projectHandler.listTags())
		r.Get("/settings", handlers.settingsHandler.getSettings())
		r.Post("/contact", handlers.contactHandler.send())
		r.Post("/admin/login", handlers.authHandler.login())
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		r.Post("/admin/projects", handlers.projectHandler.createProject())
		r.Put("/admin/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/admin/projects/{projectID}", handlers.projectHandler.deleteProject())

		r.Post("/admin/certificates", handlers.certificateHandler.createCertificate())
		r.Put("/admin/certificates/{certificateID}", handlers.certificateHandler.updateCertificate())
		r.Delete("/admin/certificates/{certificateID}", handlers.certificateHandler.deleteCertificate())

		r.Put("/admin/settings", handlers.settingsHandler.updateSettings())

		r.Post("/admin/reorder/step", handlers.orderHandler.moveStep())
		r.Post("/admin/reorder/bulk", handlers.orderHandler.setOrder())

		r.Post("/admin/upload", handlers.uploadHandler.upload())
		r.Delete("/admin/images", handlers.uploadHandler.deleteImage())

		r.Post("/admin/migrate", handlers.authHandler.migrate())
	})
}

// splitQueryList flattens repeated query values and comma-separated entries
// into one list, dropping empties.
func splitQueryList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}
