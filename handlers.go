package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// homeHandler renders the full page for the current session.
func (app *App) homeHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)
	state := app.getScoreState(sessionID)
	c.HTML(http.StatusOK, "index.html", app.pageData(state))
}

// scoreHandler validates the submitted word and scores it. Invalid input is
// reported in the input error slot and leaves the previous score in place.
func (app *App) scoreHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)
	state := app.getScoreState(sessionID)

	err := app.scoreWord(ctx, &state, c.PostForm("word"))
	app.saveScoreState(sessionID, state)

	if err != nil && isHTMXRequest(c) {
		payload := map[string]string{"input_error": err.Error()}
		if b, jerr := json.Marshal(payload); jerr == nil {
			c.Header("HX-Trigger", string(b))
		} else {
			logWarn("Failed to marshal HX-Trigger payload: %v", jerr)
		}
	}
	app.render(c, state)
}

// reloadHandler re-runs both data loads, the server-side equivalent of reloading the page.
func (app *App) reloadHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)
	snap := app.loadAll(c.Request.Context())
	logInfo("Session %s reloaded data: %d saved words, %d previous words", sessionID, len(snap.SpecialWords), len(snap.PreviousWords))

	if isHTMXRequest(c) {
		app.render(c, app.getScoreState(sessionID))
		return
	}
	c.Redirect(http.StatusSeeOther, RouteHome)
}

// previousWordsHandler returns the filtered score records as JSON.
func (app *App) previousWordsHandler(c *gin.Context) {
	snap := app.snapshot()
	words := snap.PreviousWords
	if words == nil {
		words = []ScoreRecord{}
	}
	c.JSON(http.StatusOK, gin.H{
		"words": words,
		"error": snap.PreviousWordsError,
	})
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	snap := app.snapshot()
	loadedAt := ""
	if !snap.LoadedAt.IsZero() {
		loadedAt = snap.LoadedAt.UTC().Format(time.RFC3339)
	}
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"env":            envName(app.IsProduction),
		"special_words":  len(snap.SpecialWords),
		"previous_words": len(snap.PreviousWords),
		"loaded_at":      loadedAt,
		"uptime":         formatUptime(time.Since(app.StartTime)),
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
	})
}

func (app *App) render(c *gin.Context, state ScoreState) {
	if isHTMXRequest(c) {
		c.HTML(http.StatusOK, "score-content", app.pageData(state))
		return
	}
	c.HTML(http.StatusOK, "index.html", app.pageData(state))
}

func (app *App) pageData(state ScoreState) gin.H {
	snap := app.snapshot()
	return gin.H{
		"title":              pageTitle,
		"state":              state,
		"savedWordsError":    snap.SavedWordsError,
		"previousWordsError": snap.PreviousWordsError,
		"previousWords":      snap.PreviousWords,
	}
}
