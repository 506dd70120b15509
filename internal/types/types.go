package types

import "time"

// ScoreRecord is a previously scored word as shown in the "Previous Words" list.
type ScoreRecord struct {
	Word      string    `json:"word"`
	Score     float64   `json:"score"`
	ScoreDate time.Time `json:"scoreDate"`
}

// RawScoreRecord is a remote entry before validation. Fields are left untyped
// so that a malformed value drops the record instead of failing the whole list.
type RawScoreRecord struct {
	Word      any `json:"word"`
	Score     any `json:"score"`
	ScoreDate any `json:"scoreDate"`
}

// ScoreState is the per-session result of the last submitted word.
type ScoreState struct {
	Word           string    `json:"word"`
	Score          int       `json:"score"`
	InputError     string    `json:"inputError"`
	LastAccessTime time.Time `json:"lastAccessTime"`
}
