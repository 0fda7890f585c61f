package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. DESK_LOG_LEVEL.
const EnvPrefix = "DESK"

// DefaultEnvFile is read when DESK_ENV_FILE is not set.
const DefaultEnvFile = ".env"

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTest        Environment = "test"
	EnvProduction  Environment = "production"
)

// Config holds all application configuration.
type Config struct {
	// Application
	App AppConfig

	// Logging
	Log LogConfig

	// Console session
	Console ConsoleConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string      `env:"DESK_APP_NAME" validate:"required"`
	Environment Environment `env:"DESK_APP_ENVIRONMENT" validate:"oneof=development test production"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `env:"DESK_LOG_LEVEL" validate:"oneof=debug info warn error"`
	Format string `env:"DESK_LOG_FORMAT" validate:"oneof=text json"`
}

// ConsoleConfig holds console session settings.
type ConsoleConfig struct {
	// EchoPrompts prints prompts even when stdin is not a terminal.
	EchoPrompts bool

	// ReviewPrompts asks for a rating and review after each booking.
	// Off by default so input in the plain booking format reads unchanged.
	ReviewPrompts bool

	// SubjectLabels prints "Verbal Reasoning" instead of "VERBAL_REASONING".
	SubjectLabels bool
}

// Load loads configuration from the environment, after merging in the
// optional dotenv file. Variables already set win over the file.
func Load() (*Config, error) {
	envFile := os.Getenv(EnvPrefix + "_ENV_FILE")
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := loadDotEnv(envFile); err != nil {
		return nil, err
	}

	v := newViper()
	cfg := &Config{
		App: AppConfig{
			Name:        v.GetString("app.name"),
			Environment: Environment(strings.ToLower(v.GetString("app.environment"))),
		},
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("log.level")),
			Format: strings.ToLower(v.GetString("log.format")),
		},
		Console: ConsoleConfig{
			EchoPrompts:   v.GetBool("console.echo_prompts"),
			ReviewPrompts: v.GetBool("console.review_prompts"),
			SubjectLabels: v.GetBool("console.subject_labels"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()

	// defaults
	v.SetDefault("app.name", "tuition-desk")
	v.SetDefault("app.environment", string(EnvDevelopment))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("console.echo_prompts", false)
	v.SetDefault("console.review_prompts", false)
	v.SetDefault("console.subject_labels", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// loadDotEnv loads path if it exists and ignores it if it does not.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("config: stat %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("env")
	})

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	errs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			errs = append(errs, fmt.Sprintf("%s is required", fe.Field()))
		case "oneof":
			errs = append(errs, fmt.Sprintf("%s must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value()))
		default:
			errs = append(errs, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
}
