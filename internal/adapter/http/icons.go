package http

import (
	"errors"
	"net/http"

	"github.com/couchcryptid/surf-spot-etl/internal/geometry"
	"github.com/couchcryptid/surf-spot-etl/internal/icon"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/go-chi/chi/v5"
)

// Icon request outcomes recorded in IconRequests.
const (
	outcomeOK      = "ok"
	outcomeInvalid = "invalid"
	outcomeUnknown = "unknown"
)

// handleIcon serves GET /v1/icons/{variant}?direction=<range>.
func (s *Server) handleIcon(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "variant")
	variant, err := icon.ParseVariant(name)
	if err != nil {
		s.metrics.IconRequests.WithLabelValues("other", outcomeUnknown).Inc()
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	direction := r.URL.Query().Get("direction")
	if direction == "" {
		s.metrics.IconRequests.WithLabelValues(string(variant), outcomeInvalid).Inc()
		writeError(w, http.StatusBadRequest, "missing direction parameter")
		return
	}

	result, err := icon.Render(s.icons, variant, direction)
	if err != nil {
		s.metrics.IconRequests.WithLabelValues(string(variant), outcomeInvalid).Inc()
		var dirErr *geometry.InvalidDirectionError
		if errors.As(err, &dirErr) {
			s.logger.Debug("invalid direction requested", "variant", variant, "token", dirErr.Token)
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.metrics.IconRequests.WithLabelValues(string(variant), outcomeOK).Inc()
	sharedobs.WriteJSON(w, http.StatusOK, result)
}

// handleSelector serves GET /v1/selector.
func (s *Server) handleSelector(w http.ResponseWriter, _ *http.Request) {
	s.metrics.IconRequests.WithLabelValues("selector", outcomeOK).Inc()
	sharedobs.WriteJSON(w, http.StatusOK, map[string]any{
		"size":     s.icons.Size,
		"segments": icon.Selector(s.icons),
	})
}
