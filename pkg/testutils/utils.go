package testutils

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/lingokit/lingo/config"
)

var testConfig *config.Config

func init() {
	var err error
	testConfig, err = initConfig()
	if err != nil {
		panic(err)
	}
}

func initConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig("")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %v", err)
	}
	return cfg, nil
}

// NewTestConfig returns a default-populated config for use in tests.
// Callers mutate the copy, not the shared instance.
func NewTestConfig() *config.Config {
	cfgCopy := *testConfig
	return &cfgCopy
}

// FindProjectRoot returns the absolute path to the project root directory.
func FindProjectRoot() (string, error) {
	_, currentFilePath, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("could not get current file path")
	}

	dir := filepath.Dir(currentFilePath)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		if dir == filepath.Dir(dir) {
			return "", fmt.Errorf("project root not found")
		}

		dir = filepath.Dir(dir)
	}
}
