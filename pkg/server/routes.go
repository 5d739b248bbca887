package server

import (
	"fmt"
	"net/http"
	"time"

	httpLogger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lingokit/lingo/internal"
	"github.com/lingokit/lingo/pkg/models"
)

var log = internal.GetLogger()

const ReadHeaderTimeout = 5 * time.Second

// Create creates a new HTTP server with the given app state
func Create(appState *models.AppState) *http.Server {
	router := setupRouter(appState)
	return &http.Server{
		Addr: fmt.Sprintf("%s:%d",
			appState.Config.Server.Host,
			appState.Config.Server.Port,
		),
		Handler:           router,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
}

func setupRouter(appState *models.AppState) *chi.Mux {
	router := chi.NewRouter()
	router.Use(httpLogger.Logger("router", log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Heartbeat("/healthz"))
	router.Use(SendVersion)

	// Upstream AI and translation calls have no cancellation path of
	// their own; the request timeout bounds a hung upstream.
	if seconds := appState.Config.Server.RequestTimeoutSeconds; seconds > 0 {
		router.Use(middleware.Timeout(time.Duration(seconds) * time.Second))
	}

	router.Get("/", RootHandler())

	// Annotation routes
	router.Post("/analyze", AnalyzeHandler(appState))
	router.Post("/pos", POSHandler(appState))
	router.Post("/ner", NERHandler(appState))
	router.Post("/dependency", DependencyHandler(appState))
	router.Post("/constituency", ConstituencyHandler(appState))

	// Grammar routes
	router.Post("/cfg", CFGHandler(appState))

	// AI-delegated routes
	router.Post("/cfg-gemini", CFGGeminiHandler(appState))
	router.Post("/semantic", SemanticHandler(appState))

	// Translation routes
	router.Post("/translate", TranslateHandler(appState))
	router.Get("/languages", LanguagesHandler(appState))

	return router
}

// RootHandler returns the API banner.
func RootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message": "Lingo linguistic analysis API is running"}`))
	}
}
