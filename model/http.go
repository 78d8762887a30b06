package model

type SongRequestBody struct {
	Title  string `json:"title"`
	Chords string `json:"chords"`
}

type TransposeRequestBody struct {
	Text  string `json:"text"`
	Steps int    `json:"steps"`
}

type TransposeResponse struct {
	Text   string `json:"text"`
	Key    string `json:"key"`
	Offset int    `json:"offset"`
}

type KeyRequestBody struct {
	Text string `json:"text"`
}

type KeyResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type ChordRequestBody struct {
	Chord string `json:"chord"`
	Steps int    `json:"steps"`
}

type ChordResponse struct {
	Chord string `json:"chord"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

// EditorMessage is what a client sends over the editor socket.
type EditorMessage struct {
	Type   string `json:"type"`
	SongID string `json:"song_id,omitempty"`
	Text   string `json:"text,omitempty"`
	Steps  int    `json:"steps,omitempty"`
}

// EditorState is the server's reply after every editor message.
type EditorState struct {
	SongID string `json:"song_id,omitempty"`
	Text   string `json:"text"`
	Offset int    `json:"offset"`
	Tonic  string `json:"tonic"`
	Key    string `json:"key"`
	Error  string `json:"error,omitempty"`
}
