// internal/adapters/http_server/handlers.go
package httpserver

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"villa_site/internal/app"
	"villa_site/internal/domain"
	"villa_site/internal/view"
)

type Handlers struct {
	Q    *app.ContentService
	V    *view.Renderer
	Live http.Handler // nil disables live widgets
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Group(func(r chi.Router) {
		r.Use(Timeout(RequestTimeout))
		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
		r.Get("/", h.home)
		r.Get("/rooms/{slug}", h.room)
		r.Handle("/assets/*", http.StripPrefix("/assets/", view.Static()))
	})
	if h.Live != nil {
		s.mux.Get("/live", h.Live.ServeHTTP)
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, status int, msg string) {
	var buf bytes.Buffer
	if err := h.V.RenderError(&buf, status, msg); err != nil {
		log.Error().Err(err).Msg("render error page failed")
		http.Error(w, msg, status)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// etagOf hashes a rendered body into a weak validator.
func etagOf(body []byte) string {
	sum := sha1.Sum(body)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`
}

func writeHTML(w http.ResponseWriter, r *http.Request, body []byte) {
	etag := etagOf(body)
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	// Ask for the mobile hint so the live socket can size widgets up front.
	w.Header().Set("Accept-CH", "Sec-CH-UA-Mobile")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write page body")
	}
}

func (h *Handlers) home(w http.ResponseWriter, r *http.Request) {
	page, err := h.Q.Page(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("page content fetch failed")
		h.writeError(w, http.StatusInternalServerError, "Something went wrong. Please try again shortly.")
		return
	}
	v := h.V.Page(page)
	v.Live = h.Live != nil

	var buf bytes.Buffer
	if err := h.V.RenderPage(&buf, v); err != nil {
		log.Error().Err(err).Msg("render home failed")
		h.writeError(w, http.StatusInternalServerError, "Something went wrong. Please try again shortly.")
		return
	}
	writeHTML(w, r, buf.Bytes())
}

func (h *Handlers) room(w http.ResponseWriter, r *http.Request) {
	room, err := h.Q.Room(r.Context(), chi.URLParam(r, "slug"))
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.writeError(w, http.StatusNotFound, "Room not found")
		return
	case err != nil:
		log.Error().Err(err).Msg("room fetch failed")
		h.writeError(w, http.StatusInternalServerError, "Something went wrong. Please try again shortly.")
		return
	}

	settings, err := h.Q.Settings(r.Context())
	if err != nil {
		// The room itself loaded; render with default chrome.
		log.Warn().Err(err).Msg("settings fetch failed")
	}

	var buf bytes.Buffer
	if err := h.V.RenderRoomPage(&buf, h.V.RoomPage(room, settings)); err != nil {
		log.Error().Err(err).Msg("render room failed")
		h.writeError(w, http.StatusInternalServerError, "Something went wrong. Please try again shortly.")
		return
	}
	writeHTML(w, r, buf.Bytes())
}
