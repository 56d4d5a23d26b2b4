package repository

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"airline-data-generator/internal/domain"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrations embed.FS

const documentsTable = "fulfillment_documents"

// PostgresRepository keeps each document as a JSONB row tagged with its
// collection name.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(ctx context.Context, dbURL string) (*PostgresRepository, error) {
	if err := migrateUp(dbURL); err != nil {
		return nil, err
	}
	log.Info("Database migration successfully applied")

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, storageErr("open postgres", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, storageErr("ping postgres", err)
	}
	return &PostgresRepository{db: db}, nil
}

// migrateUp uses its own migrations table so it can share a database with other services.
func migrateUp(dbURL string) error {
	migrationDBURL := dbURL
	if strings.Contains(dbURL, "?") {
		migrationDBURL = dbURL + "&x-migrations-table=airline_generator_schema_migrations"
	} else {
		migrationDBURL = dbURL + "?x-migrations-table=airline_generator_schema_migrations"
	}

	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return storageErr("load migrations", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, migrationDBURL)
	if err != nil {
		return storageErr("create migration instance", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return storageErr("apply migration", err)
	}
	return nil
}

func (r *PostgresRepository) DropCollection(ctx context.Context, name string) error {
	log.WithField("collection", name).Info("Dropping collection")
	const query = `DELETE FROM fulfillment_documents WHERE collection = $1;`
	if _, err := r.db.ExecContext(ctx, query, name); err != nil {
		return storageErr(fmt.Sprintf("drop collection %s", name), err)
	}
	return nil
}

// BulkInsert streams the batch with COPY inside one transaction.
func (r *PostgresRepository) BulkInsert(ctx context.Context, collection string, docs []domain.FulfillmentDocument) error {
	if len(docs) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("begin transaction", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(documentsTable, "collection", "refund_transaction_id", "document"))
	if err != nil {
		return storageErr("prepare copy", err)
	}

	for _, doc := range docs {
		payload, err := json.Marshal(doc)
		if err != nil {
			stmt.Close()
			return fmt.Errorf("%w: encode document %s: %w", domain.ErrGeneration, doc.TransactionID(), err)
		}
		if _, err := stmt.ExecContext(ctx, collection, doc.TransactionID(), string(payload)); err != nil {
			stmt.Close()
			return storageErr("copy document", err)
		}
	}
	if _, err := stmt.ExecContext(ctx); err != nil {
		stmt.Close()
		return storageErr("flush copy", err)
	}
	if err := stmt.Close(); err != nil {
		return storageErr("close copy", err)
	}

	if err := tx.Commit(); err != nil {
		return storageErr(fmt.Sprintf("commit %d documents into %s", len(docs), collection), err)
	}
	return nil
}

// Count returns the number of rows stored for a collection.
func (r *PostgresRepository) Count(ctx context.Context, collection string) (int, error) {
	var n int
	const query = `SELECT count(*) FROM fulfillment_documents WHERE collection = $1;`
	if err := r.db.QueryRowContext(ctx, query, collection).Scan(&n); err != nil {
		return 0, storageErr("count documents", err)
	}
	return n, nil
}

func (r *PostgresRepository) Close(context.Context) error {
	return r.db.Close()
}
