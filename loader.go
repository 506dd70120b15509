package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// scoreDateLayouts are tried in order when parsing a remote scoreDate.
var scoreDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006 15:04:05",
	"1/2/2006",
	time.RFC1123Z,
	time.RFC1123,
	"Jan 2, 2006",
	"January 2, 2006",
}

// parseSavedWords reads the saved-words asset line by line. The header line is
// skipped and only the text before the first comma is used; lines whose word
// is invalid are dropped on their own.
func parseSavedWords(r io.Reader) (map[string]struct{}, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read saved words: %w", err)
	}
	if len(lines) <= savedWordsHeaderRows {
		return map[string]struct{}{}, nil
	}

	words := lo.FilterMap(lines[savedWordsHeaderRows:], func(line string, i int) (string, bool) {
		first, _, _ := strings.Cut(line, ",")
		word := strings.ToLower(strings.TrimSpace(first))
		if !isValidWord(word) {
			if word != "" {
				logInfo("Skipping saved word %q on line %d: not a single word of letters", word, i+savedWordsHeaderRows+1)
			}
			return "", false
		}
		return word, true
	})

	set := make(map[string]struct{}, len(words))
	lo.ForEach(words, func(w string, _ int) {
		set[w] = struct{}{}
	})
	return set, nil
}

// loadSavedWords opens the saved-words asset and parses it.
func loadSavedWords(path string) (map[string]struct{}, error) {
	logInfo("Loading saved words from %s", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open saved words: %w", err)
	}
	defer f.Close()
	return parseSavedWords(f)
}

// fetchPreviousWords performs the single GET against the score endpoint and
// returns the entries as received. Only a body that is not a JSON array is an
// error; elements that are not objects are skipped.
func fetchPreviousWords(ctx context.Context, client *http.Client, url string) ([]RawScoreRecord, error) {
	logInfo("Fetching previous words from %s", url)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var elements []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&elements); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	raw := make([]RawScoreRecord, 0, len(elements))
	for i, elem := range elements {
		var entry RawScoreRecord
		dec := json.NewDecoder(bytes.NewReader(elem))
		dec.UseNumber()
		if err := dec.Decode(&entry); err != nil {
			logInfo("Skipping previous word entry %d: %v", i, err)
			continue
		}
		raw = append(raw, entry)
	}
	return raw, nil
}

// filterScoreRecords keeps the entries with a numeric score, a parseable
// date and a valid word.
func filterScoreRecords(raw []RawScoreRecord) []ScoreRecord {
	return lo.FilterMap(raw, func(entry RawScoreRecord, _ int) (ScoreRecord, bool) {
		score, ok := parseScore(entry.Score)
		if !ok {
			logInfo("Skipping previous word %v: score %v is not numeric", entry.Word, entry.Score)
			return ScoreRecord{}, false
		}
		date, ok := parseScoreDate(entry.ScoreDate)
		if !ok {
			logInfo("Skipping previous word %v: scoreDate %v is not a date", entry.Word, entry.ScoreDate)
			return ScoreRecord{}, false
		}
		word, ok := entry.Word.(string)
		if !ok || !isValidWord(word) {
			logInfo("Skipping previous word %v: not a single word of letters", entry.Word)
			return ScoreRecord{}, false
		}
		return ScoreRecord{Word: word, Score: score, ScoreDate: date}, true
	})
}

// parseScore accepts JSON numbers and numeric strings.
func parseScore(v any) (float64, bool) {
	var f float64
	switch s := v.(type) {
	case float64:
		f = s
	case json.Number:
		n, err := s.Float64()
		if err != nil {
			return 0, false
		}
		f = n
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, false
		}
		f = n
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func parseScoreDate(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range scoreDateLayouts {
		loc := time.Local
		if layout == "2006-01-02" {
			loc = time.UTC
		}
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// loadAll runs both data sources concurrently and publishes the merged result.
// A failing source keeps the data from the previous load and sets its own error;
// it never affects the other source.
func (app *App) loadAll(ctx context.Context) *Snapshot {
	prev := app.snapshot()
	next := &Snapshot{
		SpecialWords:  prev.SpecialWords,
		PreviousWords: prev.PreviousWords,
		LoadedAt:      time.Now(),
	}

	var g errgroup.Group
	g.Go(func() error {
		words, err := loadSavedWords(app.SavedWordsPath)
		if err != nil {
			logWarn("Failed to load saved words: %v", err)
			next.SavedWordsError = ErrorLoadSavedWords
			return err
		}
		next.SpecialWords = words
		logInfo("Loaded %d saved words", len(words))
		return nil
	})
	g.Go(func() error {
		fetchCtx := ctx
		if app.FetchTimeout > 0 {
			var cancel context.CancelFunc
			fetchCtx, cancel = context.WithTimeout(ctx, app.FetchTimeout)
			defer cancel()
		}
		raw, err := fetchPreviousWords(fetchCtx, app.HTTPClient, app.PreviousWordsURL)
		if err != nil {
			logWarn("Failed to fetch previous words: %v", err)
			next.PreviousWordsError = ErrorFetchPreviousData
			return err
		}
		next.PreviousWords = filterScoreRecords(raw)
		logInfo("Loaded %d of %d previous words", len(next.PreviousWords), len(raw))
		return nil
	})
	if err := g.Wait(); err != nil {
		logWarn("Data load finished with errors: %v", err)
	}

	app.publish(next)
	return next
}

func (app *App) snapshot() *Snapshot {
	app.DataMutex.RLock()
	defer app.DataMutex.RUnlock()
	if app.Data == nil {
		return &Snapshot{}
	}
	return app.Data
}

func (app *App) publish(snap *Snapshot) {
	app.DataMutex.Lock()
	app.Data = snap
	app.DataMutex.Unlock()
}
