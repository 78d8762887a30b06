package api

import (
	"net/http"

	"github.com/jsphweid/chordshift/model"
	"github.com/jsphweid/chordshift/transpose"
)

func (s *Server) handleTranspose(w http.ResponseWriter, r *http.Request) {
	var body model.TransposeRequestBody
	if err := decode(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.TransposeResponse{
		Text:   transpose.TransposeText(body.Text, body.Steps),
		Key:    transpose.RenderKeyLabel(transpose.DetectKey(body.Text), body.Steps),
		Offset: body.Steps,
	})
}

func (s *Server) handleKey(w http.ResponseWriter, r *http.Request) {
	var body model.KeyRequestBody
	if err := decode(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	key := transpose.DetectKey(body.Text)
	writeJSON(w, http.StatusOK, model.KeyResponse{
		Key:   key,
		Label: transpose.RenderKeyLabel(key, 0),
	})
}

func (s *Server) handleChord(w http.ResponseWriter, r *http.Request) {
	var body model.ChordRequestBody
	if err := decode(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.ChordResponse{
		Chord: transpose.TransposeChord(body.Chord, body.Steps),
	})
}
