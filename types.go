package main

import (
	"time"

	"letterscore/internal/types"
)

type (
	ScoreRecord    = types.ScoreRecord
	RawScoreRecord = types.RawScoreRecord
	ScoreState     = types.ScoreState
)

// Snapshot is the loaded data shared by every session. It is never mutated
// after being published; a reload builds a new one and swaps it in.
type Snapshot struct {
	SpecialWords       map[string]struct{}
	PreviousWords      []ScoreRecord
	SavedWordsError    string
	PreviousWordsError string
	LoadedAt           time.Time
}
