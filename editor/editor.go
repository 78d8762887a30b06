// Package editor holds the transpose state of one song being edited.
package editor

import (
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/chordshift/model"
	"github.com/jsphweid/chordshift/transpose"
)

type Option func(*Session)

// WithAutosave calls save with the raw text once edits have paused for
// delay. Transposing never triggers a save.
func WithAutosave(delay time.Duration, save func(text string)) Option {
	return func(s *Session) {
		s.debounced = debounce.New(delay)
		s.save = save
	}
}

// Session serializes edits and transpositions of a single song. The
// visible text is always derived from the untransposed original using
// the cumulative offset, so stepping up and back down gives back exactly
// what was typed.
type Session struct {
	mu    sync.Mutex
	state model.TransposeState

	debounced func(f func())
	save      func(text string)
}

func NewSession(opts ...Option) *Session {
	s := &Session{}
	s.state.Tonic = transpose.DefaultKey
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the original text, re-detects the tonic and drops any
// offset.
func (s *Session) Load(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(text)
}

// Edit is Load for text typed by the user; it also schedules an autosave.
func (s *Session) Edit(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(text)
	if s.debounced != nil {
		save := s.save
		s.debounced(func() { save(text) })
	}
}

func (s *Session) load(text string) {
	s.state = model.TransposeState{
		OriginalText: text,
		Offset:       0,
		Tonic:        transpose.DetectKey(text),
	}
}

// Shift adds step to the offset and returns the re-derived text. With
// nothing loaded it does nothing.
func (s *Session) Shift(step int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.OriginalText == "" {
		return ""
	}
	s.state.Offset += step
	return transpose.TransposeText(s.state.OriginalText, s.state.Offset)
}

func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = model.TransposeState{Tonic: transpose.DefaultKey}
}

func (s *Session) State() model.TransposeState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Text() string {
	st := s.State()
	return transpose.TransposeText(st.OriginalText, st.Offset)
}

func (s *Session) KeyLabel() string {
	st := s.State()
	return transpose.RenderKeyLabel(st.Tonic, st.Offset)
}
