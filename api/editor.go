package api

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/jsphweid/chordshift/editor"
	"github.com/jsphweid/chordshift/logging"
	"github.com/jsphweid/chordshift/model"
	"github.com/pkg/errors"
)

const (
	msgLoad  = "load"
	msgEdit  = "edit"
	msgShift = "shift"
	msgReset = "reset"
)

var errUnknownMessage = errors.New("unknown message type")

// editorConn is one client editing one song at a time. Messages on a
// connection are handled in order, which is what keeps offsets sane.
type editorConn struct {
	server  *Server
	songID  string
	session *editor.Session
}

func (s *Server) handleEditor(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.FromContext(r.Context()).Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	ec := &editorConn{server: s, session: editor.NewSession()}
	for {
		var msg model.EditorMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logging.FromContext(r.Context()).Debug("editor connection closed", "error", err)
			}
			return
		}

		err := ec.apply(r.Context(), msg)
		state := ec.state()
		if err != nil {
			state.Error = err.Error()
		}
		if err := conn.WriteJSON(state); err != nil {
			return
		}
	}
}

func (ec *editorConn) apply(ctx context.Context, msg model.EditorMessage) error {
	switch msg.Type {
	case msgLoad:
		if msg.SongID == "" {
			ec.songID = ""
			ec.session = editor.NewSession()
			ec.session.Load(msg.Text)
			return nil
		}
		song, err := ec.server.store.Get(ctx, msg.SongID)
		if err != nil {
			return err
		}
		ec.songID = song.ID
		ec.session = editor.NewSession(editor.WithAutosave(ec.server.autosaveDelay, ec.server.autosave(song.ID)))
		ec.session.Load(song.Chords)
	case msgEdit:
		ec.session.Edit(msg.Text)
	case msgShift:
		ec.session.Shift(msg.Steps)
	case msgReset:
		ec.songID = ""
		ec.session = editor.NewSession()
	default:
		return errors.Wrap(errUnknownMessage, msg.Type)
	}
	return nil
}

func (ec *editorConn) state() model.EditorState {
	st := ec.session.State()
	return model.EditorState{
		SongID: ec.songID,
		Text:   ec.session.Text(),
		Offset: st.Offset,
		Tonic:  st.Tonic,
		Key:    ec.session.KeyLabel(),
	}
}

// autosave writes edited chords back to the store. It runs after the
// request context may be gone, so it uses its own.
func (s *Server) autosave(id string) func(text string) {
	return func(text string) {
		ctx := context.Background()
		song, err := s.store.Get(ctx, id)
		if err == nil {
			_, err = s.store.Update(ctx, id, song.Title, text)
		}
		if err != nil {
			logging.GetLogger().Error("autosave failed", "song_id", id, "error", err)
			return
		}
		logging.GetLogger().Debug("autosaved song", "song_id", id)
	}
}
