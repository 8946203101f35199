package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kalambet/vizprefs/internal/session"
)

const maxRequestBodySize = 64 << 10 // 64KB

// AppDeps holds dependencies for the HTTP API.
type AppDeps struct {
	Sessions *session.Manager
	Token    string
}

// NewAppHandler returns the HTTP API. Everything except /health requires
// the bearer token.
func NewAppHandler(deps AppDeps) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(BearerAuth(deps.Token))

		r.Get("/defaults", handleDefaults)
		r.Post("/sessions", handleOpenSession(deps))
		r.Get("/sessions", handleListSessions(deps))
		r.Delete("/sessions/{id}", handleCloseSession(deps))
		r.Get("/sessions/{id}/properties", handleListProperties(deps))
		r.Get("/sessions/{id}/properties/{name}", handleGetProperty(deps))
		r.Put("/sessions/{id}/properties/{name}", handleSetProperty(deps))
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func handleDefaults(w http.ResponseWriter, r *http.Request) {
	props, err := defaultProperties()
	if err != nil {
		httpErrorFor(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"properties": props})
}

func handleOpenSession(deps AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := deps.Sessions.Open()
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "%v", err)
			return
		}
		writeJSON(w, http.StatusCreated, session.Info{
			ID:        sess.ID,
			CreatedAt: sess.CreatedAt,
			LastUsed:  sess.CreatedAt,
		})
	}
}

func handleListSessions(deps AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"sessions": deps.Sessions.List()})
	}
}

func handleCloseSession(deps AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Sessions.Close(chi.URLParam(r, "id")); err != nil {
			httpErrorFor(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleListProperties(deps AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := deps.Sessions.Get(chi.URLParam(r, "id"))
		if err != nil {
			httpErrorFor(w, err)
			return
		}
		props, err := listProperties(sess)
		if err != nil {
			httpErrorFor(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"properties": props})
	}
}

func handleGetProperty(deps AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := deps.Sessions.Get(chi.URLParam(r, "id"))
		if err != nil {
			httpErrorFor(w, err)
			return
		}
		p, err := getProperty(sess, chi.URLParam(r, "name"))
		if err != nil {
			httpErrorFor(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

// SetPropertyRequest is the body of PUT /sessions/{id}/properties/{name}.
// Kind may be omitted to keep the property's current kind.
type SetPropertyRequest struct {
	Kind  string  `json:"kind"`
	Value *string `json:"value"`
}

func handleSetProperty(deps AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		defer r.Body.Close()

		var req SetPropertyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}
		if req.Value == nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "value is required")
			return
		}

		sess, err := deps.Sessions.Get(chi.URLParam(r, "id"))
		if err != nil {
			httpErrorFor(w, err)
			return
		}
		p, err := setProperty(sess, chi.URLParam(r, "name"), req.Kind, *req.Value)
		if err != nil {
			httpErrorFor(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}
