package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"cardd/internal/app"
	"cardd/internal/imagestore"
)

// Handler serves every screen of the app over HTTP.
type Handler struct {
	app    *app.App
	images *imagestore.Store
	log    logrus.FieldLogger
}

// NewHandler wires the handler to the shared application state.
func NewHandler(a *app.App, images *imagestore.Store, log logrus.FieldLogger) *Handler {
	return &Handler{
		app:    a,
		images: images,
		log:    log.WithField("component", "handlers"),
	}
}

// RegisterRoutes mounts the page, fragment and intent routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.page)
	r.Get("/screen", h.screenFragment)
	r.Post("/open/{screen}", h.open)
	r.Post("/back", h.back)
	r.Route("/learning", func(r chi.Router) {
		r.Post("/answer", h.answer)
		r.Post("/dismiss", h.dismiss)
	})
	r.Post("/custom", h.createFlashcard)
	r.Post("/express/{emotion}", h.selectEmotion)
	r.Get("/images/{id}", h.image)
}

// RegisterStream mounts the SSE endpoint. It is kept apart so it can be
// mounted outside request timeouts.
func (h *Handler) RegisterStream(r chi.Router) {
	r.Get("/stream", h.stream)
}

// done finishes a form post: 204 for fetch-driven clients, otherwise a
// redirect back to the page.
func done(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Hx-Request") == "true" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
