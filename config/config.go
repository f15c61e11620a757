package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
)

// Database drivers
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Config holds the project config values
type Config struct {
	DatabaseDriver string `env:"DB_DRIVER" envDefault:"mongo"`
	URL            string `env:"DB_URI"`
	DatabaseName   string `env:"DB_NAME" envDefault:"legalaid"`
	PostgresDSN    string `env:"DATABASE_URL"`

	Port           string        `env:"PORT" envDefault:"8080"`
	BaseURL        string        `env:"BASE_URL" envDefault:"http://app.localhost:8080"`
	RootDomain     string        `env:"ROOT_DOMAIN" envDefault:"localhost"`
	Environment    string        `env:"ENVIRONMENT" envDefault:"local"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	SessionCookie string        `env:"SESSION_COOKIE" envDefault:"legalaid_session"`
	SecureCookies bool          `env:"SECURE_COOKIES" envDefault:"false"`

	SendGridAPIKey   string `env:"SENDGRID_API_KEY"`
	EmailFromAddress string `env:"EMAIL_FROM_ADDRESS" envDefault:"no-reply@legal-aid.local"`
	EmailFromName    string `env:"EMAIL_FROM_NAME" envDefault:"Legal Aid Platform"`
	SupportEmail     string `env:"SUPPORT_EMAIL" envDefault:"support@legal-aid.local"`

	CloudinaryCloudName    string `env:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey       string `env:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret    string `env:"CLOUDINARY_API_SECRET"`
	CloudinaryUploadPreset string `env:"CLOUDINARY_UPLOAD_PRESET"`

	EmailRetrySchedule      string `env:"EMAIL_RETRY_SCHEDULE" envDefault:"@every 10m"`
	EmailMaxAttempts        int    `env:"EMAIL_MAX_ATTEMPTS" envDefault:"5"`
	HearingReminderSchedule string `env:"HEARING_REMINDER_SCHEDULE" envDefault:"0 7 * * *"`
}

// New parses the environment, installs the global zap logger and returns the config
func New() (*Config, error) {
	conf := &Config{}
	if err := env.Parse(conf); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	logger, err := setLogger(conf.Environment)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}
	_ = zap.ReplaceGlobals(logger)

	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *Config) validate() error {
	if c.SessionSecret == "" {
		return errors.New("SESSION_SECRET is required")
	}
	switch c.DatabaseDriver {
	case DriverMongo:
		if c.URL == "" {
			return errors.New("DB_URI is required for the mongo driver")
		}
	case DriverPostgres:
		if c.PostgresDSN == "" {
			return errors.New("DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.DatabaseDriver)
	}
	return nil
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With("error", err).Error(message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	b, _ := json.Marshal(map[string]string{"response": fmt.Sprintf("%s, %v", message, err)})
	w.Write(b)
}
