// Package config loads application settings from the environment, an optional
// .env file and an optional config.yaml.
package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	Quiz    QuizConfig    `mapstructure:"quiz" validate:"required"`
	Cards   CardsConfig   `mapstructure:"cards" validate:"required"`
	Uploads UploadsConfig `mapstructure:"uploads" validate:"required"`
}

// ServerConfig contains HTTP and logging settings.
type ServerConfig struct {
	Port      int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel  string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"required,oneof=text json"`
}

// QuizConfig tunes learning sessions.
type QuizConfig struct {
	SessionSize   int           `mapstructure:"session_size" validate:"gte=1,lte=50"`
	FeedbackDelay time.Duration `mapstructure:"feedback_delay" validate:"gte=100ms"`
}

// CardsConfig decides how custom flashcards are accepted.
type CardsConfig struct {
	Policy string `mapstructure:"policy" validate:"oneof=accept strict"`
}

// UploadsConfig limits user-supplied images.
type UploadsConfig struct {
	MaxBytes int64 `mapstructure:"max_bytes" validate:"gt=0"`
}
