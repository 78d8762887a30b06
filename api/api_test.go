package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/jsphweid/chordshift/db"
	"github.com/jsphweid/chordshift/logging"
	"github.com/jsphweid/chordshift/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, db.Store) {
	t.Helper()
	logging.InitLoggerTo(io.Discard, "error", "json")
	store, err := db.OpenSQLite(filepath.Join(t.TempDir(), "songs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewServer(store), store
}

func do(t *testing.T, s *Server, method string, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w.Result()
}

func decodeBody[A any](t *testing.T, resp *http.Response) A {
	t.Helper()
	var v A
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestSongCRUD(t *testing.T) {
	s, _ := newTestServer(t)
	assert := assert.New(t)

	resp := do(t, s, http.MethodPost, "/api/songs", model.SongRequestBody{Title: "Let It Be", Chords: "C G Am F"})
	assert.Equal(http.StatusCreated, resp.StatusCode)
	created := decodeBody[model.Song](t, resp)
	assert.Equal("Let It Be", created.Title)

	resp = do(t, s, http.MethodGet, "/api/songs/"+created.ID, nil)
	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.Equal("C G Am F", decodeBody[model.Song](t, resp).Chords)

	resp = do(t, s, http.MethodPut, "/api/songs/"+created.ID, model.SongRequestBody{Title: "Let It Be", Chords: "C G Am F C"})
	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.Equal("C G Am F C", decodeBody[model.Song](t, resp).Chords)

	resp = do(t, s, http.MethodPost, "/api/songs/"+created.ID+"/duplicate", nil)
	assert.Equal(http.StatusCreated, resp.StatusCode)
	assert.Equal("Let It Be (Copy)", decodeBody[model.Song](t, resp).Title)

	resp = do(t, s, http.MethodGet, "/api/songs?q=copy", nil)
	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.Len(decodeBody[[]model.Song](t, resp), 1)

	resp = do(t, s, http.MethodDelete, "/api/songs/"+created.ID, nil)
	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.Equal(model.StatusResponse{Status: "deleted"}, decodeBody[model.StatusResponse](t, resp))

	resp = do(t, s, http.MethodGet, "/api/songs/"+created.ID, nil)
	assert.Equal(http.StatusNotFound, resp.StatusCode)
	assert.Contains(decodeBody[model.ErrorResponse](t, resp).Error, "not found")
}

func TestSongValidation(t *testing.T) {
	s, _ := newTestServer(t)
	assert := assert.New(t)

	resp := do(t, s, http.MethodPost, "/api/songs", model.SongRequestBody{Title: "  ", Chords: "C"})
	assert.Equal(http.StatusBadRequest, resp.StatusCode)

	req := httptest.NewRequest(http.MethodPost, "/api/songs", bytes.NewBufferString("{nope"))
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	assert.Equal(http.StatusBadRequest, w.Code)

	resp = do(t, s, http.MethodPut, "/api/songs/missing", model.SongRequestBody{Title: "x"})
	assert.Equal(http.StatusNotFound, resp.StatusCode)

	resp = do(t, s, http.MethodDelete, "/api/songs/missing", nil)
	assert.Equal(http.StatusNotFound, resp.StatusCode)
}

func TestTransposedSong(t *testing.T) {
	s, store := newTestServer(t)
	song, err := store.Create(context.Background(), "Song", "G D/F# Em C")
	require.NoError(t, err)

	resp := do(t, s, http.MethodGet, "/api/songs/"+song.ID+"/transposed?steps=-2", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, model.TransposeResponse{
		Text:   "F C/E Dm A#",
		Key:    "Key: F",
		Offset: -2,
	}, decodeBody[model.TransposeResponse](t, resp))

	resp = do(t, s, http.MethodGet, "/api/songs/"+song.ID+"/transposed?steps=up", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEngineEndpoints(t *testing.T) {
	s, _ := newTestServer(t)
	assert := assert.New(t)

	resp := do(t, s, http.MethodPost, "/api/transpose", model.TransposeRequestBody{Text: "C    G   Am  F", Steps: 2})
	assert.Equal(model.TransposeResponse{Text: "D    A   Bm  G", Key: "Key: D", Offset: 2}, decodeBody[model.TransposeResponse](t, resp))

	resp = do(t, s, http.MethodPost, "/api/key", model.KeyRequestBody{Text: "Bb F Bb Eb"})
	assert.Equal(model.KeyResponse{Key: "Bb", Label: "Key: A#"}, decodeBody[model.KeyResponse](t, resp))

	resp = do(t, s, http.MethodPost, "/api/chord", model.ChordRequestBody{Chord: "G/B", Steps: 2})
	assert.Equal(model.ChordResponse{Chord: "A/C#"}, decodeBody[model.ChordResponse](t, resp))

	resp = do(t, s, http.MethodPost, "/api/chord", model.ChordRequestBody{Chord: "Hello", Steps: 5})
	assert.Equal(model.ChordResponse{Chord: "Hello"}, decodeBody[model.ChordResponse](t, resp))
}
