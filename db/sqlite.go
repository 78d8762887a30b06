package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/jsphweid/chordshift/model"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

const schema = `
CREATE TABLE IF NOT EXISTS songs (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	chords TEXT NOT NULL,
	created_at TEXT NOT NULL
)`

// fixed width so created_at sorts as text
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type SQLiteStore struct {
	conn *sql.DB
	now  func() time.Time
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening sqlite database %s", path)
	}
	// NOTE: one connection, otherwise ":memory:" gives every conn its own db
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "creating songs table")
	}
	return &SQLiteStore{conn: conn, now: time.Now}, nil
}

func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

func scanSong(row interface{ Scan(...any) error }) (model.Song, error) {
	var song model.Song
	var createdAt string
	if err := row.Scan(&song.ID, &song.Title, &song.Chords, &createdAt); err != nil {
		return model.Song{}, err
	}
	t, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return model.Song{}, errors.Wrapf(err, "song %s has a bad created_at", song.ID)
	}
	song.CreatedAt = t
	return song, nil
}

func (s *SQLiteStore) List(ctx context.Context, query string) ([]model.Song, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT id, title, chords, created_at FROM songs
		WHERE ? = '' OR instr(lower(title), lower(?)) > 0
		ORDER BY created_at DESC, rowid DESC`, query, query)
	if err != nil {
		return nil, errors.Wrap(err, "listing songs")
	}
	defer rows.Close()

	songs := make([]model.Song, 0)
	for rows.Next() {
		song, err := scanSong(rows)
		if err != nil {
			return nil, errors.Wrap(err, "reading song row")
		}
		songs = append(songs, song)
	}
	return songs, errors.Wrap(rows.Err(), "listing songs")
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (model.Song, error) {
	row := s.conn.QueryRowContext(ctx,
		`SELECT id, title, chords, created_at FROM songs WHERE id = ?`, id)
	song, err := scanSong(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Song{}, notFound(id)
	}
	if err != nil {
		return model.Song{}, errors.Wrapf(err, "getting song %s", id)
	}
	return song, nil
}

func (s *SQLiteStore) Create(ctx context.Context, title string, chords string) (model.Song, error) {
	title, err := cleanTitle(title)
	if err != nil {
		return model.Song{}, err
	}
	song := newSong(title, chords, s.now())
	_, err = s.conn.ExecContext(ctx,
		`INSERT INTO songs (id, title, chords, created_at) VALUES (?, ?, ?, ?)`,
		song.ID, song.Title, song.Chords, song.CreatedAt.Format(timeLayout))
	if err != nil {
		return model.Song{}, errors.Wrap(err, "inserting song")
	}
	return song, nil
}

func (s *SQLiteStore) Update(ctx context.Context, id string, title string, chords string) (model.Song, error) {
	title, err := cleanTitle(title)
	if err != nil {
		return model.Song{}, err
	}
	res, err := s.conn.ExecContext(ctx,
		`UPDATE songs SET title = ?, chords = ? WHERE id = ?`, title, chords, id)
	if err != nil {
		return model.Song{}, errors.Wrapf(err, "updating song %s", id)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Song{}, notFound(id)
	}
	return s.Get(ctx, id)
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.conn.ExecContext(ctx, `DELETE FROM songs WHERE id = ?`, id)
	if err != nil {
		return errors.Wrapf(err, "deleting song %s", id)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound(id)
	}
	return nil
}
