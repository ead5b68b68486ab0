package handlers

import (
	"net/http"
	"time"

	"cardd/internal/app"
	"cardd/views/components"
)

func (h *Handler) stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	hub := h.app.Broadcaster()
	sub := hub.Subscribe()
	h.log.WithField("subscribers", hub.Subscribers()).Debug("stream opened")
	defer func() {
		hub.Unsubscribe(sub)
		h.log.WithField("subscribers", hub.Subscribers()).Debug("stream closed")
	}()

	sendScreen := func() {
		html := renderToString(r, components.Screen(h.currentScreen()))
		writeSSE(w, app.EventScreen, html)
		flusher.Flush()
	}

	sendScreen()

	keepAlive := time.NewTicker(25 * time.Second)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, ok := <-sub:
			if !ok {
				return
			}
			if event == app.EventScreen {
				sendScreen()
			}
		case <-keepAlive.C:
			_, _ = w.Write([]byte(": keepalive\n\n"))
			flusher.Flush()
		}
	}
}
