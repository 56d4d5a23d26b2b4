package config

import (
	"fmt"
	"time"

	"airline-data-generator/internal/domain"
	"airline-data-generator/internal/repository"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config is read once at startup and passed down explicitly.
type Config struct {
	StorageDriver  string `env:"STORAGE_DRIVER" envDefault:"mongo"`
	MongoURI       string `env:"MDB_CONNECTION"`
	Database       string `env:"MDB_DATABASE"`
	Collection     string `env:"MDB_COLLECTION"`
	PostgresURL    string `env:"DATABASE_URL"`
	BoltPath       string `env:"BOLT_PATH" envDefault:"airline-data.db"`
	KafkaBootstrap string `env:"KAFKA_BOOTSTRAP_SERVERS"`

	NumDocs           int           `env:"NUM_DOCS" envDefault:"0"`
	BatchSize         int           `env:"BATCH_SIZE" envDefault:"1000"`
	FlushPartialBatch bool          `env:"FLUSH_PARTIAL_BATCH" envDefault:"true"`
	InsertTimeout     time.Duration `env:"INSERT_TIMEOUT" envDefault:"30s"`
	Seed              int64         `env:"SEED" envDefault:"0"`
	Workers           int           `env:"WORKERS" envDefault:"1"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	SMTP        SMTP   `envPrefix:"SMTP_"`
	MailFrom    string `env:"MAIL_FROM"`
	ReportEmail string `env:"REPORT_EMAIL"`
}

type SMTP struct {
	Host     string `env:"HOST"`
	Port     string `env:"PORT" envDefault:"587"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
}

// Load reads an optional .env file, then the process environment.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	if err := godotenv.Load(envFiles...); err != nil {
		log.Warn("Could not load .env file.")
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", domain.ErrConfiguration, err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

func (c Config) Storage() repository.Settings {
	return repository.Settings{
		Driver:         repository.Driver(c.StorageDriver),
		MongoURI:       c.MongoURI,
		MongoDatabase:  c.Database,
		PostgresURL:    c.PostgresURL,
		BoltPath:       c.BoltPath,
		KafkaBootstrap: c.KafkaBootstrap,
	}
}

// ReportEnabled reports whether a summary mail should be sent after the run.
func (c Config) ReportEnabled() bool {
	return c.ReportEmail != "" && c.SMTP.Host != ""
}
