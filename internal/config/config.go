package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// DefaultInferenceURL is the hosted Mistral instruct model.
const DefaultInferenceURL = "https://router.huggingface.co/hf-inference/models/mistralai/Mistral-7B-Instruct-v0.1"

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Inference InferenceConfig `yaml:"inference"`
	Pipeline  PipelineConfig  `yaml:"pipeline"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host               string        `yaml:"host" envconfig:"SERVER_HOST"`
	Port               int           `yaml:"port" envconfig:"PORT"`
	ReadTimeout        time.Duration `yaml:"read_timeout" envconfig:"SERVER_READ_TIMEOUT"`
	WriteTimeout       time.Duration `yaml:"write_timeout" envconfig:"SERVER_WRITE_TIMEOUT"`
	RequestTimeout     time.Duration `yaml:"request_timeout" envconfig:"SERVER_REQUEST_TIMEOUT"`
	CORSAllowedOrigins []string      `yaml:"cors_allowed_origins" envconfig:"CORS_ALLOWED_ORIGINS"`
}

// InferenceConfig holds text-generation endpoint configuration.
type InferenceConfig struct {
	APIToken          string        `yaml:"api_token" envconfig:"HUGGINGFACE_API_TOKEN"`
	URL               string        `yaml:"url" envconfig:"INFERENCE_URL"`
	Timeout           time.Duration `yaml:"timeout" envconfig:"INFERENCE_TIMEOUT"`
	MaxNewTokens      int           `yaml:"max_new_tokens" envconfig:"INFERENCE_MAX_NEW_TOKENS"`
	Temperature       float64       `yaml:"temperature" envconfig:"INFERENCE_TEMPERATURE"`
	RepetitionPenalty float64       `yaml:"repetition_penalty" envconfig:"INFERENCE_REPETITION_PENALTY"`
}

// PipelineConfig selects between the single-call and analyze-then-generate pipelines.
type PipelineConfig struct {
	TwoStage             bool    `yaml:"two_stage" envconfig:"PIPELINE_TWO_STAGE"`
	AnalysisMaxNewTokens int     `yaml:"analysis_max_new_tokens" envconfig:"PIPELINE_ANALYSIS_MAX_NEW_TOKENS"`
	AnalysisTemperature  float64 `yaml:"analysis_temperature" envconfig:"PIPELINE_ANALYSIS_TEMPERATURE"`
}

// Default returns the configuration used when neither file nor environment
// sets a value.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:               "0.0.0.0",
			Port:               5000,
			ReadTimeout:        15 * time.Second,
			WriteTimeout:       60 * time.Second,
			RequestTimeout:     30 * time.Second,
			CORSAllowedOrigins: []string{"*"},
		},
		Inference: InferenceConfig{
			URL:               DefaultInferenceURL,
			Timeout:           8 * time.Second,
			MaxNewTokens:      200,
			Temperature:       0.9,
			RepetitionPenalty: 1.2,
		},
		Pipeline: PipelineConfig{
			AnalysisMaxNewTokens: 150,
			AnalysisTemperature:  0.3,
		},
	}
}

// Load reads configuration from an optional .env file, an optional YAML
// file and environment variables. Precedence, lowest first: defaults, file,
// environment. Only variables that are set override earlier values.
func Load(configPath, envFile string) (*Config, error) {
	cfg := Default()

	// Missing .env is not an error; variables may come from the process environment.
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file: %w", err)
		}
	}

	// Load from YAML file if provided
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	// Override with environment variables
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if cfg.Inference.URL == "" {
		cfg.Inference.URL = DefaultInferenceURL
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Validate checks that configuration values are usable. A missing API
// token is allowed: every request then falls back to templates.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Inference.URL == "" {
		return fmt.Errorf("INFERENCE_URL is required")
	}
	if c.Inference.Timeout <= 0 {
		return fmt.Errorf("INFERENCE_TIMEOUT must be positive")
	}
	if c.Inference.MaxNewTokens <= 0 {
		return fmt.Errorf("INFERENCE_MAX_NEW_TOKENS must be positive")
	}
	if c.Inference.Temperature < 0 {
		return fmt.Errorf("INFERENCE_TEMPERATURE must not be negative")
	}
	if c.Pipeline.TwoStage && c.Pipeline.AnalysisMaxNewTokens <= 0 {
		return fmt.Errorf("PIPELINE_ANALYSIS_MAX_NEW_TOKENS must be positive when two-stage is enabled")
	}
	if budget := time.Duration(c.Pipeline.InferenceCalls()) * c.Inference.Timeout; budget >= c.Server.RequestTimeout {
		return fmt.Errorf("SERVER_REQUEST_TIMEOUT (%s) must exceed the inference budget of %s", c.Server.RequestTimeout, budget)
	}
	return nil
}

// InferenceCalls returns how many model calls one generation makes at most.
func (p PipelineConfig) InferenceCalls() int {
	if p.TwoStage {
		return 2
	}
	return 1
}

// Address returns the server address in host:port format.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
