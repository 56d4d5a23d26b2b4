package repository

import (
	"context"
	"fmt"

	"airline-data-generator/internal/domain"
)

type Driver string

const (
	DriverMongo    Driver = "mongo"
	DriverPostgres Driver = "postgres"
	DriverBolt     Driver = "bolt"
	DriverKafka    Driver = "kafka"
)

// DocumentRepository is the storage side of a load run.
type DocumentRepository interface {
	DropCollection(ctx context.Context, name string) error
	BulkInsert(ctx context.Context, collection string, docs []domain.FulfillmentDocument) error
	Close(ctx context.Context) error
}

// Settings carries the connection parameters of every backend; only the ones
// of the selected driver are read.
type Settings struct {
	Driver         Driver
	MongoURI       string
	MongoDatabase  string
	PostgresURL    string
	BoltPath       string
	KafkaBootstrap string
}

func Open(ctx context.Context, s Settings) (DocumentRepository, error) {
	switch s.Driver {
	case DriverMongo:
		return NewMongoRepository(ctx, s.MongoURI, s.MongoDatabase)
	case DriverPostgres:
		return NewPostgresRepository(ctx, s.PostgresURL)
	case DriverBolt:
		return NewBoltRepository(s.BoltPath)
	case DriverKafka:
		return NewKafkaRepository(s.KafkaBootstrap)
	default:
		return nil, fmt.Errorf("%w: unknown storage driver %q", domain.ErrConfiguration, s.Driver)
	}
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrStorage, op, err)
}
