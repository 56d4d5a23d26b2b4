package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"airline-data-generator/internal/config"
	"airline-data-generator/internal/domain"
	"airline-data-generator/internal/repository"
)

var (
	ErrEmptyEmail          = errors.New("email is empty")
	ErrInvalidEmailFormat  = errors.New("invalid email format")
	ErrUnknownDriver       = errors.New("unknown storage driver")
	ErrMissingConnection   = errors.New("connection parameter is not set")
	ErrEmptyCollection     = errors.New("collection name is empty")
	ErrInvalidDocCount     = errors.New("number of documents must not be negative")
	ErrInvalidBatchSize    = errors.New("batch size must be greater than 0")
	ErrInvalidWorkers      = errors.New("workers must be greater than 0")
	ErrInvalidTimeout      = errors.New("insert timeout must not be negative")
	ErrIncompleteSMTPSetup = errors.New("smtp settings are incomplete")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmptyEmail
	}
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmailFormat
	}
	return nil
}

func ValidateStorage(cfg config.Config) error {
	switch repository.Driver(cfg.StorageDriver) {
	case repository.DriverMongo:
		if strings.TrimSpace(cfg.MongoURI) == "" {
			return fmt.Errorf("MDB_CONNECTION: %w", ErrMissingConnection)
		}
		if strings.TrimSpace(cfg.Database) == "" {
			return fmt.Errorf("MDB_DATABASE: %w", ErrMissingConnection)
		}
	case repository.DriverPostgres:
		if strings.TrimSpace(cfg.PostgresURL) == "" {
			return fmt.Errorf("DATABASE_URL: %w", ErrMissingConnection)
		}
	case repository.DriverBolt:
		if strings.TrimSpace(cfg.BoltPath) == "" {
			return fmt.Errorf("BOLT_PATH: %w", ErrMissingConnection)
		}
	case repository.DriverKafka:
		if strings.TrimSpace(cfg.KafkaBootstrap) == "" {
			return fmt.Errorf("KAFKA_BOOTSTRAP_SERVERS: %w", ErrMissingConnection)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.StorageDriver)
	}
	if strings.TrimSpace(cfg.Collection) == "" {
		return ErrEmptyCollection
	}
	return nil
}

func ValidateRun(cfg config.Config) error {
	if cfg.NumDocs < 0 {
		return ErrInvalidDocCount
	}
	if cfg.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}
	if cfg.Workers <= 0 {
		return ErrInvalidWorkers
	}
	if cfg.InsertTimeout < 0 {
		return ErrInvalidTimeout
	}
	return nil
}

func ValidateReport(cfg config.Config) error {
	if cfg.ReportEmail == "" {
		return nil
	}
	if err := ValidateEmail(cfg.ReportEmail); err != nil {
		return err
	}
	if cfg.SMTP.Host == "" || cfg.SMTP.Port == "" || cfg.MailFrom == "" {
		return ErrIncompleteSMTPSetup
	}
	return ValidateEmail(cfg.MailFrom)
}

// ValidateConfig returns the first problem found, wrapped in domain.ErrConfiguration.
func ValidateConfig(cfg config.Config) error {
	for _, check := range []func(config.Config) error{ValidateStorage, ValidateRun, ValidateReport} {
		if err := check(cfg); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrConfiguration, err)
		}
	}
	return nil
}
