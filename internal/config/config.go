package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sevigo/pr-warden/internal/logger"
)

// Operation modes.
const (
	ModeContinuous = "continuous"
	ModeSingle     = "single"
	ModeScan       = "scan"
)

// GitHub authentication methods.
const (
	AuthToken = "token"
	AuthApp   = "app"
)

// DefaultStandardsPath is read when CODING_STANDARDS_PATH is not set.
const DefaultStandardsPath = "coding_standards.json"

var (
	ErrMissingOrg       = errors.New("GITHUB_ORG_NAME must be set")
	ErrInvalidMode      = errors.New("invalid operation mode")
	ErrMissingPRTarget  = errors.New("REPO_NAME and PR_NUMBER must be set for single mode")
	ErrInvalidAuth      = errors.New("invalid GitHub auth configuration")
	ErrInvalidLLMConfig = errors.New("invalid LLM configuration")
)

// Config holds the application's configuration values.
type Config struct {
	GitHub   GitHubConfig
	LLM      LLMConfig
	Review   ReviewConfig
	Logging  logger.Config
	Server   ServerConfig
	Database DBConfig
}

// GitHubConfig selects the organization and how to authenticate against it.
type GitHubConfig struct {
	Org            string
	AuthMethod     string
	Token          string
	AppID          int64
	InstallationID int64
	PrivateKeyPath string
}

// LLMConfig selects the generation oracle.
type LLMConfig struct {
	Provider     string
	APIURL       string
	APIKey       string
	MaxTokens    int
	Timeout      time.Duration
	OllamaHost   string
	Model        string
	GeminiAPIKey string
}

// ReviewConfig drives the orchestrator.
type ReviewConfig struct {
	Mode          string
	Interval      time.Duration
	RepoName      string
	PRNumber      int
	StandardsPath string
	// StandardsPathExplicit is true when the path came from the environment
	// rather than the default.
	StandardsPathExplicit bool
	Event                 string
}

// ServerConfig controls the optional status API.
type ServerConfig struct {
	Enabled bool
	Port    string
}

// DBConfig controls the optional review archive.
type DBConfig struct {
	Enabled         bool
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// LoadConfig reads configuration from the process environment and a .env file.
func LoadConfig() (*Config, error) {
	return Load(viper.GetViper())
}

// Load reads configuration through v, applying defaults, then validates it.
func Load(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.AutomaticEnv()

	if _, err := os.Stat(".env"); err == nil {
		v.SetConfigFile(".env")
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			slog.Error("failed to read config file", "error", err)
		}
	}

	cfg := &Config{
		GitHub: GitHubConfig{
			Org:            v.GetString("GITHUB_ORG_NAME"),
			AuthMethod:     strings.ToLower(v.GetString("GITHUB_AUTH_METHOD")),
			Token:          v.GetString("GITHUB_TOKEN"),
			AppID:          v.GetInt64("GITHUB_APP_ID"),
			InstallationID: v.GetInt64("GITHUB_INSTALLATION_ID"),
			PrivateKeyPath: v.GetString("GITHUB_PRIVATE_KEY_PATH"),
		},
		LLM: LLMConfig{
			Provider:     strings.ToLower(v.GetString("LLM_PROVIDER")),
			APIURL:       v.GetString("LLM_API_URL"),
			APIKey:       v.GetString("LLM_API_KEY"),
			MaxTokens:    v.GetInt("LLM_MAX_TOKENS"),
			Timeout:      v.GetDuration("LLM_TIMEOUT"),
			OllamaHost:   v.GetString("OLLAMA_HOST"),
			Model:        v.GetString("GENERATOR_MODEL_NAME"),
			GeminiAPIKey: v.GetString("GEMINI_API_KEY"),
		},
		Review: ReviewConfig{
			Mode:                  strings.ToLower(v.GetString("OPERATION_MODE")),
			Interval:              time.Duration(v.GetInt("CHECK_INTERVAL_MINUTES")) * time.Minute,
			RepoName:              v.GetString("REPO_NAME"),
			PRNumber:              v.GetInt("PR_NUMBER"),
			StandardsPath:         v.GetString("CODING_STANDARDS_PATH"),
			StandardsPathExplicit: v.IsSet("CODING_STANDARDS_PATH") && v.GetString("CODING_STANDARDS_PATH") != DefaultStandardsPath,
			Event:                 strings.ToUpper(v.GetString("REVIEW_EVENT")),
		},
		Logging: logger.Config{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
			Output: v.GetString("LOG_OUTPUT"),
			File:   v.GetString("LOG_FILE"),
		},
		Server: ServerConfig{
			Enabled: v.GetBool("SERVER_ENABLED"),
			Port:    v.GetString("SERVER_PORT"),
		},
		Database: DBConfig{
			Enabled:         v.GetBool("DATABASE_ENABLED"),
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			Username:        v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Database:        v.GetString("DB_NAME"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
			ConnMaxIdleTime: v.GetDuration("DB_CONN_MAX_IDLE_TIME"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("GITHUB_AUTH_METHOD", AuthToken)
	v.SetDefault("LLM_PROVIDER", "http")
	v.SetDefault("LLM_MAX_TOKENS", 1500)
	v.SetDefault("LLM_TIMEOUT", "2m")
	v.SetDefault("OLLAMA_HOST", "http://localhost:11434")
	v.SetDefault("GENERATOR_MODEL_NAME", "gemma3:latest")
	v.SetDefault("OPERATION_MODE", ModeContinuous)
	v.SetDefault("CHECK_INTERVAL_MINUTES", 15)
	v.SetDefault("CODING_STANDARDS_PATH", DefaultStandardsPath)
	v.SetDefault("REVIEW_EVENT", "COMMENT")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_OUTPUT", "stdout")
	v.SetDefault("SERVER_ENABLED", false)
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("DATABASE_ENABLED", false)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_NAME", "pr_warden")
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", "5m")
}

// Validate checks the settings every operation mode needs. Mode-specific
// requirements are checked by ValidateMode.
func (c *Config) Validate() error {
	if c.GitHub.Org == "" {
		return ErrMissingOrg
	}

	switch c.GitHub.AuthMethod {
	case AuthToken:
		if c.GitHub.Token == "" {
			return fmt.Errorf("%w: GITHUB_TOKEN must be set for token auth", ErrInvalidAuth)
		}
	case AuthApp:
		if c.GitHub.AppID == 0 || c.GitHub.InstallationID == 0 || c.GitHub.PrivateKeyPath == "" {
			return fmt.Errorf("%w: GITHUB_APP_ID, GITHUB_INSTALLATION_ID and GITHUB_PRIVATE_KEY_PATH must be set for app auth", ErrInvalidAuth)
		}
	default:
		return fmt.Errorf("%w: unknown auth method %q, use 'token' or 'app'", ErrInvalidAuth, c.GitHub.AuthMethod)
	}

	switch c.LLM.Provider {
	case "http":
		if c.LLM.APIURL == "" {
			return fmt.Errorf("%w: LLM_API_URL must be set for the http provider", ErrInvalidLLMConfig)
		}
	case "gemini":
		if c.LLM.GeminiAPIKey == "" {
			return fmt.Errorf("%w: GEMINI_API_KEY must be set for the gemini provider", ErrInvalidLLMConfig)
		}
	case "ollama":
	default:
		return fmt.Errorf("%w: unsupported provider %q", ErrInvalidLLMConfig, c.LLM.Provider)
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("%w: LLM_MAX_TOKENS must be positive", ErrInvalidLLMConfig)
	}

	if c.Review.Interval <= 0 {
		return fmt.Errorf("CHECK_INTERVAL_MINUTES must be positive")
	}
	return nil
}

// ValidateMode checks the settings required by the configured operation mode.
func (c *Config) ValidateMode() error {
	switch c.Review.Mode {
	case ModeContinuous, ModeScan:
		return nil
	case ModeSingle:
		if c.Review.RepoName == "" || c.Review.PRNumber <= 0 {
			return ErrMissingPRTarget
		}
		return nil
	default:
		return fmt.Errorf("%w: %q (valid modes are: continuous, single, scan)", ErrInvalidMode, c.Review.Mode)
	}
}
