// Package midi turns a chord sheet into a standard MIDI file: one chord per
// bar, root in the middle octave with the bass an octave lower. Quality is
// not voiced.
package midi

import (
	"bytes"
	"os"

	"github.com/jsphweid/chordshift/chord"
	"github.com/jsphweid/chordshift/constants"
	"github.com/jsphweid/chordshift/model"
	"github.com/jsphweid/chordshift/transpose"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

var ErrNoChords = errors.New("no playable chords")

type Options struct {
	BPM           float64
	BeatsPerChord int
}

func DefaultOptions() Options {
	return Options{BPM: constants.DefaultBPM, BeatsPerChord: constants.BeatsPerChord}
}

// Progression returns the chords of text in order, transposed by steps.
func Progression(text string, steps int) []model.Chord {
	var res []model.Chord
	for _, span := range chord.Scan(text) {
		if !span.IsChord() {
			continue
		}
		if c, ok := chord.Parse(transpose.TransposeChord(span.Text, steps)); ok {
			res = append(res, c)
		}
	}
	return res
}

// keys picks the root and bass MIDI keys. Chords whose root isn't a known
// spelling are skipped.
func keys(c model.Chord) (root uint8, bass uint8, ok bool) {
	rootPC, ok := chord.IndexOf(c.Root)
	if !ok {
		return 0, 0, false
	}
	bassPC := rootPC
	if pc, found := chord.IndexOf(c.Bass); c.HasBass() && found {
		bassPC = pc
	}
	return uint8(constants.RootOctaveBase + rootPC), uint8(constants.BassOctaveBase + bassPC), true
}

func Export(text string, steps int, opts Options) (*smf.SMF, error) {
	if opts.BPM <= 0 {
		opts.BPM = constants.DefaultBPM
	}
	if opts.BeatsPerChord <= 0 {
		opts.BeatsPerChord = constants.BeatsPerChord
	}

	ticks := smf.MetricTicks(constants.TicksPerQuarter)
	length := ticks.Ticks4th() * uint32(opts.BeatsPerChord)

	var track smf.Track
	track.Add(0, smf.MetaMeter(4, 4))
	track.Add(0, smf.MetaTempo(opts.BPM))

	var played int
	for _, c := range Progression(text, steps) {
		root, bass, ok := keys(c)
		if !ok {
			continue
		}
		track.Add(0, midi.NoteOn(0, root, constants.NoteVelocity))
		track.Add(0, midi.NoteOn(0, bass, constants.NoteVelocity))
		track.Add(length, midi.NoteOff(0, root))
		track.Add(0, midi.NoteOff(0, bass))
		played++
	}
	if played == 0 {
		return nil, ErrNoChords
	}
	track.Close(0)

	s := smf.New()
	s.TimeFormat = ticks
	if err := s.Add(track); err != nil {
		return nil, errors.Wrap(err, "adding track")
	}
	return s, nil
}

func WriteFile(path string, s *smf.SMF) error {
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return errors.Wrap(err, "encoding midi")
	}
	return errors.Wrapf(os.WriteFile(path, buf.Bytes(), 0644), "writing %s", path)
}
