package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jsphweid/chordshift/db"
	"github.com/jsphweid/chordshift/model"
	"github.com/jsphweid/chordshift/transpose"
)

func (s *Server) handleListSongs(w http.ResponseWriter, r *http.Request) {
	songs, err := s.store.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, songs)
}

func (s *Server) handleCreateSong(w http.ResponseWriter, r *http.Request) {
	var body model.SongRequestBody
	if err := decode(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	song, err := s.store.Create(r.Context(), body.Title, body.Chords)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, song)
}

func (s *Server) handleGetSong(w http.ResponseWriter, r *http.Request) {
	song, err := s.store.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, song)
}

func (s *Server) handleUpdateSong(w http.ResponseWriter, r *http.Request) {
	var body model.SongRequestBody
	if err := decode(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	song, err := s.store.Update(r.Context(), mux.Vars(r)["id"], body.Title, body.Chords)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, song)
}

func (s *Server) handleDeleteSong(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.StatusResponse{Status: "deleted"})
}

func (s *Server) handleDuplicateSong(w http.ResponseWriter, r *http.Request) {
	song, err := db.Duplicate(r.Context(), s.store, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, song)
}

// handleTransposedSong renders a stored song at ?steps= from its saved,
// untransposed chords.
func (s *Server) handleTransposedSong(w http.ResponseWriter, r *http.Request) {
	steps, err := stepsParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	song, err := s.store.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.TransposeResponse{
		Text:   transpose.TransposeText(song.Chords, steps),
		Key:    transpose.RenderKeyLabel(transpose.DetectKey(song.Chords), steps),
		Offset: steps,
	})
}
