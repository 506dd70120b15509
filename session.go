package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// getOrCreateSession retrieves the session ID from the cookie or creates a new one.
func (app *App) getOrCreateSession(c *gin.Context) string {
	sessionID, err := c.Cookie(SessionCookieName)
	if err != nil || uuid.Validate(sessionID) != nil {
		sessionID = uuid.NewString()
		c.SetSameSite(http.SameSiteStrictMode)
		secure := app.IsProduction
		c.SetCookie(SessionCookieName, sessionID, int(app.CookieMaxAge.Seconds()), "/", "", secure, true)
		logInfo("Created new session: %s", sessionID)
	}
	return sessionID
}

// getScoreState returns a copy of the session's form state, creating it if needed.
func (app *App) getScoreState(sessionID string) ScoreState {
	app.SessionMutex.Lock()
	defer app.SessionMutex.Unlock()
	state, exists := app.ScoreSessions[sessionID]
	if !exists {
		state = &ScoreState{}
		app.ScoreSessions[sessionID] = state
	}
	state.LastAccessTime = time.Now()
	return *state
}

// saveScoreState stores the session's form state.
func (app *App) saveScoreState(sessionID string, state ScoreState) {
	state.LastAccessTime = time.Now()
	app.SessionMutex.Lock()
	app.ScoreSessions[sessionID] = &state
	app.SessionMutex.Unlock()
}

// cleanupExpiredSessions drops sessions idle for longer than the session timeout.
func (app *App) cleanupExpiredSessions(now time.Time) int {
	app.SessionMutex.Lock()
	defer app.SessionMutex.Unlock()
	removed := 0
	for sessionID, state := range app.ScoreSessions {
		if state.LastAccessTime.IsZero() || now.Sub(state.LastAccessTime) > app.SessionTimeout {
			delete(app.ScoreSessions, sessionID)
			removed++
		}
	}
	return removed
}

// startSessionCleanup runs cleanupExpiredSessions periodically until ctx is done.
func (app *App) startSessionCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if n := app.cleanupExpiredSessions(now); n > 0 {
					logInfo("Session cleanup removed %d idle sessions", n)
				}
			}
		}
	}()
}
