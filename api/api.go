// Package api serves the song store and the transpose engine over HTTP.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/jsphweid/chordshift/constants"
	"github.com/jsphweid/chordshift/db"
	"github.com/jsphweid/chordshift/logging"
	"github.com/jsphweid/chordshift/model"
	"github.com/pkg/errors"
)

var errBadBody = errors.New("request body is not valid JSON")

type Server struct {
	store         db.Store
	upgrader      websocket.Upgrader
	autosaveDelay time.Duration
}

func NewServer(store db.Store) *Server {
	return &Server{
		store: store,
		upgrader: websocket.Upgrader{
			// CORS is handled in front of the router
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		autosaveDelay: constants.AutosaveDelay,
	}
}

func (s *Server) Router() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(logging.CombinedMiddleware)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/songs", s.handleListSongs).Methods(http.MethodGet)
	api.HandleFunc("/songs", s.handleCreateSong).Methods(http.MethodPost)
	api.HandleFunc("/songs/{id}", s.handleGetSong).Methods(http.MethodGet)
	api.HandleFunc("/songs/{id}", s.handleUpdateSong).Methods(http.MethodPut)
	api.HandleFunc("/songs/{id}", s.handleDeleteSong).Methods(http.MethodDelete)
	api.HandleFunc("/songs/{id}/duplicate", s.handleDuplicateSong).Methods(http.MethodPost)
	api.HandleFunc("/songs/{id}/transposed", s.handleTransposedSong).Methods(http.MethodGet)
	api.HandleFunc("/transpose", s.handleTranspose).Methods(http.MethodPost)
	api.HandleFunc("/key", s.handleKey).Methods(http.MethodPost)
	api.HandleFunc("/chord", s.handleChord).Methods(http.MethodPost)
	api.HandleFunc("/ws", s.handleEditor).Methods(http.MethodGet)
	return router
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, db.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, db.ErrInvalidTitle), errors.Is(err, errBadBody), errors.Is(err, strconv.ErrSyntax):
		status = http.StatusBadRequest
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		logging.FromContext(r.Context()).Error("request failed", "error", err)
		msg = "internal error"
	}
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrap(errBadBody, err.Error())
	}
	return nil
}

// stepsParam reads ?steps=, zero when absent.
func stepsParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("steps")
	if raw == "" {
		return 0, nil
	}
	steps, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrap(strconv.ErrSyntax, "steps must be an integer")
	}
	return steps, nil
}
