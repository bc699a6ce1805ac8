// Package config handles loading and validating the polyglot configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration shared by the CLI chatbot and the
// voice-assistant daemon.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Responses   ResponsesConfig   `mapstructure:"responses"`
	Translation TranslationConfig `mapstructure:"translation"`
	Voice       VoiceConfig       `mapstructure:"voice"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// ServerConfig holds the daemon's listener settings.
type ServerConfig struct {
	WebhookPort int `mapstructure:"webhook_port"`
	HealthPort  int `mapstructure:"health_port"`
	GRPCPort    int `mapstructure:"grpc_port"`
}

// ResponsesConfig locates the optional response phrase file.
type ResponsesConfig struct {
	// File is a TOML phrase table (category -> language -> phrases). Empty
	// or unreadable means the built-in defaults are used.
	File string `mapstructure:"file"`
}

// TranslationConfig configures the provider chain. Providers are tried in a
// fixed order: MyMemory, LibreTranslate, Lingva.
type TranslationConfig struct {
	MyMemory       MyMemoryConfig       `mapstructure:"mymemory"`
	LibreTranslate LibreTranslateConfig `mapstructure:"libretranslate"`
	Lingva         LingvaConfig         `mapstructure:"lingva"`
}

// MyMemoryConfig holds MyMemory API settings. No credentials are needed.
type MyMemoryConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// LibreTranslateConfig holds LibreTranslate settings. The provider is
// skipped entirely while APIKey is empty.
type LibreTranslateConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
}

// LingvaConfig holds Lingva instance settings.
type LingvaConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// VoiceConfig configures text-to-speech output.
type VoiceConfig struct {
	// Enabled turns speech output on at startup; the "voice on"/"voice off"
	// commands toggle it per conversation.
	Enabled bool `mapstructure:"enabled"`

	// AudioDir is where synthesized audio files are cached.
	AudioDir string `mapstructure:"audio_dir"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}

// Load reads the configuration from file, environment variables, and
// defaults. If configFile is non-empty it is used directly; otherwise the
// standard search order applies: ./polyglot.yaml, ./configs/polyglot.yaml,
// /etc/polyglot/polyglot.yaml.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.webhook_port", 8080)
	v.SetDefault("server.health_port", 8081)
	v.SetDefault("server.grpc_port", 50051)
	v.SetDefault("responses.file", "responses.toml")
	v.SetDefault("translation.mymemory.base_url", "")
	v.SetDefault("translation.libretranslate.base_url", "")
	v.SetDefault("translation.libretranslate.api_key", "${LIBRE_API_KEY}")
	v.SetDefault("translation.lingva.base_url", "")
	v.SetDefault("voice.enabled", false)
	v.SetDefault("voice.audio_dir", "audio")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	// Config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("polyglot")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/polyglot")
	}

	// Environment variables: POLYGLOT_SERVER_WEBHOOK_PORT, POLYGLOT_VOICE_ENABLED, etc.
	v.SetEnvPrefix("POLYGLOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (optional — env vars and defaults are sufficient)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		slog.Info("no config file found, using defaults and environment variables")
	} else {
		slog.Info("loaded config file", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// Resolve env var references in sensitive fields (e.g., "${LIBRE_API_KEY}")
	cfg.Translation.LibreTranslate.APIKey = resolveEnvRef(cfg.Translation.LibreTranslate.APIKey)

	return &cfg, nil
}

// resolveEnvRef replaces "${VAR_NAME}" patterns with the corresponding env
// var value, or empty when the variable is unset.
func resolveEnvRef(val string) string {
	if strings.HasPrefix(val, "${") && strings.HasSuffix(val, "}") {
		return os.Getenv(val[2 : len(val)-1])
	}
	return val
}

// SetupLogging configures the global slog logger based on config.
func SetupLogging(cfg LoggingConfig) {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}
