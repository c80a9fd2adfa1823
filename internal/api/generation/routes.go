package generation

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the generation endpoints on the router
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/api/emails", func(r chi.Router) {
		r.Post("/generate", h.GenerateEmails)
		r.Post("/export", h.ExportEmails)
	})
}
