package repository

import (
	"context"
	"fmt"

	"airline-data-generator/internal/domain"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type MongoRepository struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoRepository(ctx context.Context, uri, database string) (*MongoRepository, error) {
	log.WithField("database", database).Info("Connecting to MongoDB")

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, storageErr("connect to mongodb", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, storageErr("ping mongodb", err)
	}
	return &MongoRepository{client: client, db: client.Database(database)}, nil
}

func (r *MongoRepository) DropCollection(ctx context.Context, name string) error {
	log.WithField("collection", name).Info("Dropping collection")
	if err := r.db.Collection(name).Drop(ctx); err != nil {
		return storageErr(fmt.Sprintf("drop collection %s", name), err)
	}
	return nil
}

func (r *MongoRepository) BulkInsert(ctx context.Context, collection string, docs []domain.FulfillmentDocument) error {
	if len(docs) == 0 {
		return nil
	}
	batch := make([]interface{}, len(docs))
	for i := range docs {
		batch[i] = docs[i]
	}
	if _, err := r.db.Collection(collection).InsertMany(ctx, batch); err != nil {
		return storageErr(fmt.Sprintf("insert %d documents into %s", len(docs), collection), err)
	}
	return nil
}

func (r *MongoRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
