package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"airline-data-generator/internal/domain"
	"airline-data-generator/internal/generator"
	"airline-data-generator/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBolt(t *testing.T) *repository.BoltRepository {
	t.Helper()
	r, err := repository.NewBoltRepository(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { r.Close(context.Background()) })
	return r
}

func sampleDocs(t *testing.T, n int) []domain.FulfillmentDocument {
	t.Helper()
	b := generator.NewBuilder(generator.NewFields(11, func() time.Time {
		return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	}))
	docs := make([]domain.FulfillmentDocument, 0, n)
	for i := 0; i < n; i++ {
		doc, err := b.BuildDocument()
		require.NoError(t, err)
		docs = append(docs, doc)
	}
	return docs
}

func TestBoltRepository_BulkInsertAndList(t *testing.T) {
	ctx := context.Background()
	r := newTestBolt(t)

	docs := sampleDocs(t, 25)
	require.NoError(t, r.BulkInsert(ctx, "fulfillment", docs[:10]))
	require.NoError(t, r.BulkInsert(ctx, "fulfillment", docs[10:]))

	stored, err := r.List("fulfillment")
	require.NoError(t, err)
	require.Len(t, stored, 25)

	byID := map[string]domain.FulfillmentDocument{}
	for _, d := range stored {
		byID[d.TransactionID()] = d
	}
	want := docs[3]
	got, ok := byID[want.TransactionID()]
	require.True(t, ok)
	assert.Equal(t, want.FulfillmentInfo.RefundDataList[0].AccountableDocumentNum,
		got.FulfillmentInfo.RefundDataList[0].AccountableDocumentNum)
	assert.True(t, want.FulfillmentInfo.PnrSegment[0].ScheduledDepartureLocalTs.Equal(
		got.FulfillmentInfo.PnrSegment[0].ScheduledDepartureLocalTs))
}

func TestBoltRepository_DropCollection(t *testing.T) {
	ctx := context.Background()
	r := newTestBolt(t)

	require.NoError(t, r.DropCollection(ctx, "missing"))

	require.NoError(t, r.BulkInsert(ctx, "fulfillment", sampleDocs(t, 3)))
	require.NoError(t, r.DropCollection(ctx, "fulfillment"))

	stored, err := r.List("fulfillment")
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestBoltRepository_BulkInsertCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newTestBolt(t).BulkInsert(ctx, "fulfillment", sampleDocs(t, 1))
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := repository.Open(context.Background(), repository.Settings{Driver: "cassandra"})
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestOpen_Bolt(t *testing.T) {
	r, err := repository.Open(context.Background(), repository.Settings{
		Driver:   repository.DriverBolt,
		BoltPath: filepath.Join(t.TempDir(), "open.db"),
	})
	require.NoError(t, err)
	assert.NoError(t, r.Close(context.Background()))
}
