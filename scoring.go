package main

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

var (
	errEmptyWord   = errors.New(ErrorEmptyWord)
	errSingleWord  = errors.New(ErrorSingleWord)
	errLettersOnly = errors.New(ErrorLettersOnly)
)

// validateWord reports whether raw is a single word made only of ASCII letters.
// The returned error's message is safe to show to the user.
func validateWord(raw string) error {
	if raw == "" {
		return errEmptyWord
	}
	if strings.ContainsFunc(raw, unicode.IsSpace) {
		return errSingleWord
	}
	if !isLetters(raw) {
		return errLettersOnly
	}
	return nil
}

// isValidWord is validateWord as a predicate, used when filtering loaded data.
func isValidWord(word string) bool {
	return validateWord(word) == nil
}

func isLetters(s string) bool {
	return lo.EveryBy([]byte(s), func(b byte) bool {
		return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
	})
}

// letterSum returns the sum of the alphabet positions of word's letters, a=1 through z=26.
func letterSum(word string) int {
	return lo.SumBy([]byte(strings.ToLower(word)), func(b byte) int {
		return int(b-'a') + 1
	})
}

// calculateScore doubles the letter sum for words in the special set.
func calculateScore(word string, special map[string]struct{}) int {
	base := letterSum(word)
	if isSpecialWord(word, special) {
		return base * 2
	}
	return base
}

func isSpecialWord(word string, special map[string]struct{}) bool {
	_, ok := special[strings.ToLower(word)]
	return ok
}

// scoreWord validates the submitted word and, when it is accepted, records
// its score in the session state. A rejected word leaves the score unchanged.
func (app *App) scoreWord(ctx context.Context, state *ScoreState, raw string) error {
	reqID, _ := ctx.Value(requestIDKey).(string)

	state.Word = raw
	if err := validateWord(raw); err != nil {
		state.InputError = err.Error()
		logInfo("[request_id=%v] Rejected input %q: %v", reqID, raw, err)
		return err
	}

	snap := app.snapshot()
	state.InputError = ""
	state.Score = calculateScore(raw, snap.SpecialWords)
	logInfo("[request_id=%v] Scored %q = %d (special: %v)", reqID, raw, state.Score, isSpecialWord(raw, snap.SpecialWords))
	return nil
}
