package constants

import (
	"os"
	"time"
)

func getEnv(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetDBPath() string {
	return getEnv("SONGS_DB", "./songs.db")
}

func GetAddr() string {
	return getEnv("ADDR", ":8080")
}

// sqlite or dynamodb
func GetBackend() string {
	return getEnv("STORE_BACKEND", BackendSQLite)
}

func GetDynamoEndpoint() string {
	return getEnv("DYNAMODB_ENDPOINT", "http://localhost:8000")
}

func GetDynamoRegion() string {
	return getEnv("DYNAMODB_REGION", "localhost")
}

func GetDynamoTable() string {
	return getEnv("DYNAMODB_TABLE", "chordshift-songs")
}

func GetLogLevel() string {
	return getEnv("LOG_LEVEL", "info")
}

func GetLogFormat() string {
	return getEnv("LOG_FORMAT", "json")
}

const (
	BackendSQLite = "sqlite"
	BackendDynamo = "dynamodb"
)

// edits on the socket are saved once typing pauses this long
const AutosaveDelay = 750 * time.Millisecond

const CopySuffix = " (Copy)"

// midi export
const (
	TicksPerQuarter = 480
	BeatsPerChord   = 4
	DefaultBPM      = 100
	RootOctaveBase  = 60
	BassOctaveBase  = 48
	NoteVelocity    = 90
)
