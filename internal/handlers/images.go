package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"cardd/internal/imagestore"
)

func (h *Handler) image(w http.ResponseWriter, r *http.Request) {
	img, err := h.images.Get(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, imagestore.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "failed to load image", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", img.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(img.Data)))
	w.Header().Set("Cache-Control", "private, max-age=86400, immutable")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	_, _ = w.Write(img.Data)
}
