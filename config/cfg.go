package config

import (
	"fmt"
	"os"
	"strings"

	httpapi "github.com/swayogurja/swayog-backend/internal/api/http"
	"github.com/swayogurja/swayog-backend/internal/chatbot"
	"github.com/swayogurja/swayog-backend/internal/mail"
	"github.com/swayogurja/swayog-backend/internal/store"
	"github.com/swayogurja/swayog-backend/log"

	"github.com/spf13/viper"
)

// Config represents the global configuration for the service. It is built
// once at process start and handed to the collaborators by reference; no
// package reads the environment on its own after this point.
type Config struct {
	DB      store.Config   `mapstructure:"postgres"`
	Logger  log.Config     `mapstructure:"logger"`
	HTTP    httpapi.Config `mapstructure:"http"`
	Mailer  mail.Config    `mapstructure:"mailer"`
	Chatbot chatbot.Config `mapstructure:"chatbot"`
}

// LoadConfig loads the configuration from a TOML file and/or environment
// variables. Environment variables take precedence over config file values.
func LoadConfig(cfgFile string) (*Config, error) {
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	bindEnvVars()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("/etc/swayog-backend")
		// Config file is optional, env vars are enough to run.
		_ = viper.ReadInConfig()
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	return &config, nil
}

// bindEnvVars binds flat environment variable names onto nested config keys.
// The EMAIL_*/SMTP_* pairs mirror the variable names the hosting platform
// already provisions, either spelling works.
func bindEnvVars() {
	// Postgres
	viper.BindEnv("postgres.dsn", "DATABASE_URL", "POSTGRES_DSN")
	viper.BindEnv("postgres.automigrate", "POSTGRES_AUTOMIGRATE")
	viper.BindEnv("postgres.max_open_connections", "POSTGRES_MAX_OPEN_CONNECTIONS")
	viper.BindEnv("postgres.max_idle_connections", "POSTGRES_MAX_IDLE_CONNECTIONS")

	// Logger
	viper.BindEnv("logger.level", "LOG_LEVEL")
	viper.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	viper.BindEnv("http.port", "HTTP_PORT", "PORT")
	viper.BindEnv("http.address", "HTTP_ADDRESS")
	viper.BindEnv("http.jwt_secret", "AUTH_JWT_SECRET")

	// Mailer
	viper.BindEnv("mailer.host", "EMAIL_HOST", "SMTP_HOST")
	viper.BindEnv("mailer.port", "EMAIL_PORT", "SMTP_PORT")
	viper.BindEnv("mailer.secure", "EMAIL_SECURE", "SMTP_SECURE")
	viper.BindEnv("mailer.username", "EMAIL_USER", "SMTP_USER")
	viper.BindEnv("mailer.password", "EMAIL_PASS", "SMTP_PASS")
	viper.BindEnv("mailer.from_email", "EMAIL_FROM")
	viper.BindEnv("mailer.from_email_name", "EMAIL_FROM_NAME")
	viper.BindEnv("mailer.notify_email", "NOTIFY_EMAIL")

	// Chatbot
	viper.BindEnv("chatbot.api_key", "GEMINI_API_KEY")
	viper.BindEnv("chatbot.base_url", "GEMINI_BASE_URL")
	viper.BindEnv("chatbot.request_timeout", "CHATBOT_REQUEST_TIMEOUT")
}
