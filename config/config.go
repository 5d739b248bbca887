package config

import (
	"strings"

	"github.com/lingokit/lingo/internal"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// We're bootstrapping so avoid any imports from other packages
var log = logrus.New()

const (
	DefaultPort                  = 9000
	DefaultRequestTimeoutSeconds = 60
	DefaultGenAIModel            = "gemini-1.5-flash"
	DefaultMaxPromptTokens       = 2048
	DefaultAnnotationCacheTTL    = 300
)

// LoadConfig loads the config file and ENV variables into a Config struct
func LoadConfig(configFile string) (*Config, error) {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("LINGO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults plus ENV carry the service
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// Environment variables take precedence over config file
	loadDotEnv()

	if err := viper.BindEnv("genai.google_api_key", "LINGO_GOOGLE_API_KEY"); err != nil {
		log.Fatalf("Error binding environment variable: %s", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.port", DefaultPort)
	viper.SetDefault("server.request_timeout_seconds", DefaultRequestTimeoutSeconds)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("genai.enabled", true)
	viper.SetDefault("genai.model", DefaultGenAIModel)
	viper.SetDefault("genai.max_prompt_tokens", DefaultMaxPromptTokens)
	viper.SetDefault("annotation.cache_ttl_seconds", DefaultAnnotationCacheTTL)
}

// loadDotEnv loads environment variables from .env file
func loadDotEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Debug(".env file not found or unable to load")
	}
}

// SetLogLevel sets the log level based on the config file. Defaults to INFO if not set or invalid
func SetLogLevel(cfg *Config) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	internal.SetLogLevel(level)
	log.Info("Log level set to: ", level)
}
