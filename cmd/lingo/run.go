package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lingokit/lingo/config"
	"github.com/lingokit/lingo/pkg/annotation"
	"github.com/lingokit/lingo/pkg/genai"
	"github.com/lingokit/lingo/pkg/grammar"
	"github.com/lingokit/lingo/pkg/models"
	"github.com/lingokit/lingo/pkg/server"
	"github.com/lingokit/lingo/pkg/translation"
)

const defaultSentence = "Apple is buying a startup in the U.K."

const shutdownTimeout = 10 * time.Second

// run is the entrypoint for the lingo server
func run() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring lingo: %s", err)
	}

	handleCLIOptions(cfg)

	log.Infof("Starting lingo server version %s", config.VersionString)

	config.SetLogLevel(cfg)
	appState := NewAppState(cfg)

	srv := server.Create(appState)
	setupSignalHandler(srv)

	log.Infof("Listening on: %s", srv.Addr)
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

// NewAppState creates an AppState struct from the config file / ENV and wires
// the annotation pipeline, the toy grammar parser, the Gemini client, and the
// translation client.
func NewAppState(cfg *config.Config) *models.AppState {
	aiClient, err := genai.NewGeminiClient(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Error creating Gemini client: %s", err)
	}

	return &models.AppState{
		Annotator:  annotation.NewProseAnnotator(cfg),
		Grammar:    grammar.NewParser(),
		AI:         aiClient,
		Translator: translation.NewGoogleTranslator(cfg),
		Config:     cfg,
	}
}

// handleCLIOptions handles CLI options that don't require the server to run
func handleCLIOptions(cfg *config.Config) {
	if showVersion {
		fmt.Println(config.VersionString)
		os.Exit(0)
	}
	if dumpConfig {
		dumped, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			log.Fatalf("Error dumping config: %s", err)
		}
		fmt.Println(string(dumped))
		os.Exit(0)
	}
}

// runAnalyze runs the annotation pipeline against a single sentence from the
// console and prints the combined result as indented JSON.
func runAnalyze(sentence string) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring lingo: %s", err)
	}
	config.SetLogLevel(cfg)

	appState := NewAppState(cfg)
	ctx := context.Background()

	tokens, err := appState.Annotator.POS(ctx, sentence)
	if err != nil {
		log.Fatalf("Error annotating sentence: %s", err)
	}
	entities, err := appState.Annotator.NER(ctx, sentence)
	if err != nil {
		log.Fatalf("Error extracting entities: %s", err)
	}

	result := models.AnalysisResponse{
		Tokens:   tokens,
		Entities: entities,
	}
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Error rendering result: %s", err)
	}
	fmt.Println(string(output))
}

// setupSignalHandler drains in-flight requests on termination
func setupSignalHandler(srv *http.Server) {
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalCh
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Errorf("Error shutting down server: %v", err)
		}
	}()
}
