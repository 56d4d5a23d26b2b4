package validator_test

import (
	"testing"
	"time"

	"airline-data-generator/internal/config"
	"airline-data-generator/internal/domain"
	"airline-data-generator/internal/validator"

	"github.com/stretchr/testify/assert"
)

func validConfig() config.Config {
	return config.Config{
		StorageDriver: "mongo",
		MongoURI:      "mongodb://localhost:27017",
		Database:      "airline",
		Collection:    "fulfillment",
		NumDocs:       2500,
		BatchSize:     1000,
		InsertTimeout: 30 * time.Second,
		Workers:       1,
	}
}

func TestValidateConfig_Valid(t *testing.T) {
	assert.NoError(t, validator.ValidateConfig(validConfig()))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   error
	}{
		{"unknown driver", func(c *config.Config) { c.StorageDriver = "redis" }, validator.ErrUnknownDriver},
		{"missing mongo uri", func(c *config.Config) { c.MongoURI = "" }, validator.ErrMissingConnection},
		{"missing database", func(c *config.Config) { c.Database = " " }, validator.ErrMissingConnection},
		{"missing postgres url", func(c *config.Config) { c.StorageDriver = "postgres" }, validator.ErrMissingConnection},
		{"missing kafka servers", func(c *config.Config) { c.StorageDriver = "kafka" }, validator.ErrMissingConnection},
		{"empty collection", func(c *config.Config) { c.Collection = "" }, validator.ErrEmptyCollection},
		{"negative count", func(c *config.Config) { c.NumDocs = -1 }, validator.ErrInvalidDocCount},
		{"zero batch", func(c *config.Config) { c.BatchSize = 0 }, validator.ErrInvalidBatchSize},
		{"zero workers", func(c *config.Config) { c.Workers = 0 }, validator.ErrInvalidWorkers},
		{"negative timeout", func(c *config.Config) { c.InsertTimeout = -time.Second }, validator.ErrInvalidTimeout},
		{"bad report email", func(c *config.Config) { c.ReportEmail = "not-an-email" }, validator.ErrInvalidEmailFormat},
		{"report without smtp", func(c *config.Config) { c.ReportEmail = "ops@example.com" }, validator.ErrIncompleteSMTPSetup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := validator.ValidateConfig(cfg)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, domain.ErrConfiguration)
		})
	}
}

func TestValidateConfig_BoltNeedsNoConnection(t *testing.T) {
	cfg := validConfig()
	cfg.StorageDriver = "bolt"
	cfg.MongoURI = ""
	cfg.BoltPath = "data.db"
	assert.NoError(t, validator.ValidateConfig(cfg))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, validator.ValidateEmail("ops@example.com"))
	assert.ErrorIs(t, validator.ValidateEmail(""), validator.ErrEmptyEmail)
	assert.ErrorIs(t, validator.ValidateEmail("ops@"), validator.ErrInvalidEmailFormat)
}
