package main

import (
	"context"
	"testing"
)

func TestValidateWord(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"cab", nil},
		{"Hello", nil},
		{"ZEBRA", nil},
		{"", errEmptyWord},
		{"two words", errSingleWord},
		{" cab", errSingleWord},
		{"cab\t", errSingleWord},
		{"c4b", errLettersOnly},
		{"cab!", errLettersOnly},
		{"café", errLettersOnly},
		{"co-op", errLettersOnly},
	}
	for _, tt := range tests {
		if got := validateWord(tt.input); got != tt.want {
			t.Errorf("validateWord(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestValidateWord_Messages(t *testing.T) {
	if got := validateWord("a b").Error(); got != "Please enter a single word." {
		t.Errorf("single word message = %q", got)
	}
	if got := validateWord("a1").Error(); got != "Please enter a valid word with only letters." {
		t.Errorf("letters only message = %q", got)
	}
}

func TestLetterSum(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"a", 1},
		{"z", 26},
		{"cab", 6},
		{"CAB", 6},
		{"abcdefghijklmnopqrstuvwxyz", 351},
		{"", 0},
	}
	for _, tt := range tests {
		if got := letterSum(tt.word); got != tt.want {
			t.Errorf("letterSum(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}

func TestLetterSum_DistinctLetters(t *testing.T) {
	for _, word := range []string{"dog", "quiz", "jumpy", "vex", "flight"} {
		want := 0
		for _, r := range word {
			want += int(r-'a') + 1
		}
		if got := letterSum(word); got != want {
			t.Errorf("letterSum(%q) = %d, want %d", word, got, want)
		}
	}
}

func TestCalculateScore(t *testing.T) {
	special := map[string]struct{}{"cab": {}}
	tests := []struct {
		word    string
		special map[string]struct{}
		want    int
	}{
		{"cab", nil, 6},
		{"cab", special, 12},
		{"Cab", special, 12},
		{"CAB", special, 12},
		{"cabs", special, 25},
		{"dog", special, 26},
	}
	for _, tt := range tests {
		if got := calculateScore(tt.word, tt.special); got != tt.want {
			t.Errorf("calculateScore(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}

func TestScoreWord_InvalidKeepsScore(t *testing.T) {
	app := &App{}
	app.publish(&Snapshot{SpecialWords: map[string]struct{}{"cab": {}}})
	ctx := context.Background()

	state := &ScoreState{}
	if err := app.scoreWord(ctx, state, "cab"); err != nil {
		t.Fatalf("scoreWord(cab) returned error: %v", err)
	}
	if state.Score != 12 || state.InputError != "" {
		t.Fatalf("after cab: score=%d error=%q, want 12 and no error", state.Score, state.InputError)
	}

	for _, bad := range []string{"c4b", "two words", "", "#"} {
		if err := app.scoreWord(ctx, state, bad); err == nil {
			t.Errorf("scoreWord(%q) should fail", bad)
		}
		if state.Score != 12 {
			t.Errorf("scoreWord(%q) changed score to %d", bad, state.Score)
		}
		if state.InputError == "" {
			t.Errorf("scoreWord(%q) did not set an input error", bad)
		}
	}

	if err := app.scoreWord(ctx, state, "dog"); err != nil {
		t.Fatalf("scoreWord(dog) returned error: %v", err)
	}
	if state.Score != 26 || state.InputError != "" {
		t.Errorf("after dog: score=%d error=%q, want 26 and cleared error", state.Score, state.InputError)
	}
}

func TestScoreWord_NoDataLoaded(t *testing.T) {
	app := &App{}
	state := &ScoreState{}
	if err := app.scoreWord(context.Background(), state, "cab"); err != nil {
		t.Fatalf("scoreWord returned error: %v", err)
	}
	if state.Score != 6 {
		t.Errorf("score without special words = %d, want 6", state.Score)
	}
}
