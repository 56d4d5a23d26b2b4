package repository_test

import (
	"context"
	"testing"

	"airline-data-generator/internal/domain"
	"airline-data-generator/internal/repository"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockKafka(t *testing.T) (*kafka.MockCluster, *repository.KafkaRepository) {
	t.Helper()
	mc, err := kafka.NewMockCluster(1)
	require.NoError(t, err)
	t.Cleanup(mc.Close)

	r, err := repository.NewKafkaRepository(mc.BootstrapServers())
	require.NoError(t, err)
	t.Cleanup(func() { r.Close(context.Background()) })
	return mc, r
}

func TestKafkaRepository_DropAndBulkInsert(t *testing.T) {
	ctx := context.Background()
	mc, r := newMockKafka(t)

	require.NoError(t, mc.CreateTopic("fulfillment", 1, 1))
	require.NoError(t, r.DropCollection(ctx, "fulfillment"))

	// The broker may auto-create the topic on produce as well.
	_ = mc.CreateTopic("fulfillment", 1, 1)
	assert.NoError(t, r.BulkInsert(ctx, "fulfillment", sampleDocs(t, 50)))
}

func TestKafkaRepository_DropMissingTopic(t *testing.T) {
	_, r := newMockKafka(t)

	assert.NoError(t, r.DropCollection(context.Background(), "never-created"))
}

func TestKafkaRepository_BulkInsertCancelled(t *testing.T) {
	mc, r := newMockKafka(t)
	require.NoError(t, mc.CreateTopic("fulfillment", 1, 1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.BulkInsert(ctx, "fulfillment", sampleDocs(t, 5))
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestKafkaRepository_BulkInsertEmpty(t *testing.T) {
	_, r := newMockKafka(t)

	assert.NoError(t, r.BulkInsert(context.Background(), "fulfillment", nil))
}
