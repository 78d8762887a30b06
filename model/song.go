package model

import "time"

type Song struct {
	ID        string    `json:"id" dynamodbav:"PK"`
	Title     string    `json:"title" dynamodbav:"Title"`
	Chords    string    `json:"chords" dynamodbav:"Chords"`
	CreatedAt time.Time `json:"created_at" dynamodbav:"CreatedAt"`
}

// TransposeState belongs to whoever edits a song. OriginalText is the
// untransposed source of truth; the visible text is always re-derived
// from it using the cumulative Offset.
type TransposeState struct {
	OriginalText string `json:"original_text"`
	Offset       int    `json:"offset"`
	Tonic        string `json:"tonic"`
}
