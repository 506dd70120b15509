package main

import (
	"context"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

// App holds the loaded data, per-session form state and server configuration.
type App struct {
	SavedWordsPath   string
	PreviousWordsURL string
	HTTPClient       *http.Client
	FetchTimeout     time.Duration

	IsProduction   bool
	SessionTimeout time.Duration
	CookieMaxAge   time.Duration
	StaticCacheAge time.Duration
	RateLimitRPS   int
	RateLimitBurst int
	StartTime      time.Time

	Data      *Snapshot
	DataMutex sync.RWMutex

	ScoreSessions map[string]*ScoreState
	SessionMutex  sync.RWMutex
	LimiterMap    map[string]*rate.Limiter
	LimiterMutex  sync.Mutex
}

// newAppFromEnv builds an App from environment variables, falling back to defaults.
func newAppFromEnv() *App {
	return &App{
		SavedWordsPath:   getEnvString("SAVED_WORDS_PATH", DefaultSavedWordsPath),
		PreviousWordsURL: getEnvString("PREVIOUS_WORDS_URL", DefaultPreviousWordsURL),
		HTTPClient:       &http.Client{},
		FetchTimeout:     getEnvDuration("FETCH_TIMEOUT", 0),
		IsProduction:     os.Getenv("GIN_MODE") == "release" || os.Getenv("ENV") == "production",
		SessionTimeout:   getEnvDuration("SESSION_TIMEOUT", 2*time.Hour),
		CookieMaxAge:     getEnvDuration("COOKIE_MAX_AGE", 2*time.Hour),
		StaticCacheAge:   getEnvDuration("STATIC_CACHE_AGE", 5*time.Minute),
		RateLimitRPS:     getEnvInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst:   getEnvInt("RATE_LIMIT_BURST", 10),
		StartTime:        time.Now(),
		ScoreSessions:    make(map[string]*ScoreState),
		LimiterMap:       make(map[string]*rate.Limiter),
	}
}

func main() {
	_ = godotenv.Load()

	app := newAppFromEnv()
	logInfo("Starting Letter Score in %s mode", envName(app.IsProduction))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	snap := app.loadAll(ctx)
	logInfo("Loaded %d saved words and %d previous words", len(snap.SpecialWords), len(snap.PreviousWords))

	app.startSessionCleanup(ctx, time.Minute)

	templateDir, staticDir := "templates", "static"
	if app.IsProduction && dirExists("dist") {
		logInfo("Serving assets from dist/ directory")
		templateDir, staticDir = "dist/templates", "dist/static"
	} else {
		logInfo("Serving development assets from source directories")
	}

	router := app.setupRouter(templateDir, staticDir)
	startServer(ctx, router)
}

// setupRouter wires middleware, templates and routes.
func (app *App) setupRouter(templateDir, staticDir string) *gin.Engine {
	router := gin.Default()

	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression,
		ginGzip.WithExcludedExtensions([]string{".svg", ".ico", ".png", ".jpg", ".jpeg", ".gif"}),
		ginGzip.WithExcludedPaths([]string{"/static/fonts"})))
	router.Use(requestIDMiddleware())
	router.Use(app.cacheHeadersMiddleware())

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	router.SetFuncMap(template.FuncMap{
		"formatScore": formatScore,
		"formatDate":  formatScoreDate,
	})
	router.LoadHTMLGlob(templateDir + "/*.html")
	router.Static("/static", staticDir)

	router.GET(RouteHome, app.homeHandler)
	router.POST(RouteScore, app.rateLimitMiddleware(), app.scoreHandler)
	router.POST(RouteReload, app.rateLimitMiddleware(), app.reloadHandler)
	router.GET(RoutePreviousWords, app.previousWordsHandler)
	router.GET(RouteHealthz, app.healthzHandler)

	return router
}

func startServer(ctx context.Context, router *gin.Engine) {
	port := getEnvString("PORT", "8080")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		<-ctx.Done()
		logInfo("Shutdown signal received, shutting down server gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	logInfo("Server starting on http://localhost:%s", port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
}

func envName(production bool) string {
	if production {
		return "production"
	}
	return "development"
}
