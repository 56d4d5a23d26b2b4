package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"airline-data-generator/internal/domain"

	"github.com/boltdb/bolt"
	log "github.com/sirupsen/logrus"
)

// BoltRepository stores documents in a single BoltDB file, one bucket per
// collection, keyed by refund transaction id.
type BoltRepository struct {
	db *bolt.DB
}

func NewBoltRepository(path string) (*BoltRepository, error) {
	log.WithField("path", path).Info("Opening BoltDB file")
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, storageErr("open bolt", err)
	}
	return &BoltRepository{db: db}, nil
}

// DropCollection is a no-op when the bucket does not exist.
func (r *BoltRepository) DropCollection(_ context.Context, name string) error {
	log.WithField("collection", name).Info("Dropping collection")
	err := r.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(name)); err != nil && err != bolt.ErrBucketNotFound {
			return err
		}
		return nil
	})
	if err != nil {
		return storageErr(fmt.Sprintf("drop collection %s", name), err)
	}
	return nil
}

// BulkInsert writes the batch in one transaction; a failure leaves the bucket untouched.
func (r *BoltRepository) BulkInsert(ctx context.Context, collection string, docs []domain.FulfillmentDocument) error {
	if len(docs) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return storageErr("bulk insert", err)
	}

	err := r.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(collection))
		if err != nil {
			return err
		}
		for _, doc := range docs {
			data, err := json.Marshal(doc)
			if err != nil {
				return err
			}
			if err := b.Put([]byte(doc.TransactionID()), data); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return storageErr(fmt.Sprintf("insert %d documents into %s", len(docs), collection), err)
	}
	return nil
}

// List returns every document of a collection in key order.
func (r *BoltRepository) List(collection string) ([]domain.FulfillmentDocument, error) {
	docs := []domain.FulfillmentDocument{}
	err := r.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(collection))
		if b == nil {
			return nil
		}
		return b.ForEach(func(_, v []byte) error {
			var doc domain.FulfillmentDocument
			if err := json.Unmarshal(v, &doc); err != nil {
				return err
			}
			docs = append(docs, doc)
			return nil
		})
	})
	if err != nil {
		return nil, storageErr("list documents", err)
	}
	return docs, nil
}

func (r *BoltRepository) Close(context.Context) error {
	return r.db.Close()
}
