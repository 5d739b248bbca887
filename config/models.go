package config

// Config holds the configuration of the application
// Use config.LoadConfig to create a new instance
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Log         LogConfig         `mapstructure:"log"`
	GenAI       GenAIConfig       `mapstructure:"genai"`
	Annotation  AnnotationConfig  `mapstructure:"annotation"`
	Translation TranslationConfig `mapstructure:"translation"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	// RequestTimeoutSeconds bounds a single request, including any upstream call
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// GenAIConfig configures the generative AI adapter.
// GoogleAPIKey is loaded from ENV, not the config file.
type GenAIConfig struct {
	// Enabled turns the AI-delegated endpoints off entirely; they then
	// report an unconfigured client in-band.
	Enabled         bool   `mapstructure:"enabled"`
	Model           string `mapstructure:"model"`
	GoogleAPIKey    string `mapstructure:"google_api_key"`
	MaxPromptTokens int    `mapstructure:"max_prompt_tokens"`
}

type AnnotationConfig struct {
	// CacheTTLSeconds controls the annotation result cache. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds"`
}

type TranslationConfig struct {
	// Endpoint overrides the public translation endpoint. Used in tests.
	Endpoint string `mapstructure:"endpoint"`
}
