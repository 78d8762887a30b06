// Package db stores songs. Two backends share one interface: SQLite for a
// single machine and DynamoDB for a shared table.
package db

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jsphweid/chordshift/constants"
	"github.com/jsphweid/chordshift/model"
	"github.com/pkg/errors"
)

var (
	ErrNotFound     = errors.New("song not found")
	ErrInvalidTitle = errors.New("song title is required")
)

type Store interface {
	// List returns songs newest first. A non-empty query keeps only titles
	// containing it, ignoring case.
	List(ctx context.Context, query string) ([]model.Song, error)
	Get(ctx context.Context, id string) (model.Song, error)
	Create(ctx context.Context, title string, chords string) (model.Song, error)
	Update(ctx context.Context, id string, title string, chords string) (model.Song, error)
	Delete(ctx context.Context, id string) error
	Close() error
}

func cleanTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrInvalidTitle
	}
	return title, nil
}

func newSong(title string, chords string, now time.Time) model.Song {
	return model.Song{
		ID:        uuid.NewString(),
		Title:     title,
		Chords:    chords,
		CreatedAt: now.UTC(),
	}
}

func notFound(id string) error {
	return errors.Wrapf(ErrNotFound, "id %s", id)
}

// Duplicate copies a song under "<title> (Copy)".
func Duplicate(ctx context.Context, store Store, id string) (model.Song, error) {
	song, err := store.Get(ctx, id)
	if err != nil {
		return model.Song{}, err
	}
	return store.Create(ctx, song.Title+constants.CopySuffix, song.Chords)
}

func sortNewestFirst(songs []model.Song) {
	sort.SliceStable(songs, func(i, j int) bool {
		return songs[i].CreatedAt.After(songs[j].CreatedAt)
	})
}
