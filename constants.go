package main

// Session configuration constants
const (
	SessionCookieName = "session_id"
)

// Route constants
const (
	RouteHome          = "/"
	RouteScore         = "/score"
	RouteReload        = "/reload"
	RoutePreviousWords = "/api/previous-words"
	RouteHealthz       = "/healthz"
)

// Data source defaults
const (
	DefaultSavedWordsPath   = "data/Words50.csv"
	DefaultPreviousWordsURL = "https://testapi.sail-dev.com/api/data/getworddata"
	localizedDateLayout     = "1/2/2006, 3:04:05 PM"
	savedWordsHeaderRows    = 1
	pageTitle               = "Scrabble Score Calculator"
)

// Error message constants
const (
	ErrorEmptyWord         = "Please enter a word."
	ErrorSingleWord        = "Please enter a single word."
	ErrorLettersOnly       = "Please enter a valid word with only letters."
	ErrorLoadSavedWords    = "Error loading saved words"
	ErrorFetchPreviousData = "Error fetching API data"
)

// Context key constants
type contextKey string

const (
	requestIDKey contextKey = "request_id"
)
