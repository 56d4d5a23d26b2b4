package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"airline-data-generator/internal/domain"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	log "github.com/sirupsen/logrus"
)

const (
	flushTimeoutMs      = 5000
	adminRequestTimeout = 10 * time.Second
)

// KafkaRepository publishes documents to a topic named after the collection.
type KafkaRepository struct {
	producer *kafka.Producer
}

func NewKafkaRepository(bootstrapServers string) (*KafkaRepository, error) {
	bootstrapServers = strings.Trim(bootstrapServers, "\"")
	log.WithField("kafka_servers", bootstrapServers).Info("Connecting to Kafka")

	configMap := &kafka.ConfigMap{
		"bootstrap.servers": bootstrapServers,
		"acks":              "all",
	}
	log.WithField("config", fmt.Sprintf("%+v", configMap)).Debug("Kafka producer config")

	producer, err := kafka.NewProducer(configMap)
	if err != nil {
		return nil, storageErr("create kafka producer", err)
	}

	go func() {
		for ev := range producer.Events() {
			if e, ok := ev.(kafka.Error); ok {
				log.WithError(e).Error("Kafka error")
			}
		}
	}()

	return &KafkaRepository{producer: producer}, nil
}

// DropCollection deletes the topic named after the collection. A topic that
// does not exist counts as dropped.
func (r *KafkaRepository) DropCollection(ctx context.Context, name string) error {
	log.WithField("topic", name).Info("Dropping topic")

	admin, err := kafka.NewAdminClientFromProducer(r.producer)
	if err != nil {
		return storageErr("create kafka admin client", err)
	}
	defer admin.Close()

	results, err := admin.DeleteTopics(ctx, []string{name}, kafka.SetAdminOperationTimeout(adminRequestTimeout))
	if err != nil {
		return storageErr(fmt.Sprintf("delete topic %s", name), err)
	}
	for _, res := range results {
		switch res.Error.Code() {
		case kafka.ErrNoError, kafka.ErrUnknownTopicOrPart:
		default:
			return storageErr(fmt.Sprintf("delete topic %s", res.Topic), res.Error)
		}
	}
	return nil
}

// BulkInsert produces the batch and waits until every message is acknowledged.
func (r *KafkaRepository) BulkInsert(ctx context.Context, collection string, docs []domain.FulfillmentDocument) error {
	if len(docs) == 0 {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return storageErr("bulk insert", err)
	}

	topic := collection
	deliveries := make(chan kafka.Event, len(docs))
	produced := 0
	for _, doc := range docs {
		payload, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("%w: encode document %s: %w", domain.ErrGeneration, doc.TransactionID(), err)
		}
		msg := &kafka.Message{
			TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
			Key:            []byte(doc.TransactionID()),
			Value:          payload,
		}
		if err := r.producer.Produce(msg, deliveries); err != nil {
			return storageErr(fmt.Sprintf("produce to %s", topic), err)
		}
		produced++
	}

	for confirmed := 0; confirmed < produced; {
		select {
		case <-ctx.Done():
			return storageErr("await delivery", ctx.Err())
		case ev := <-deliveries:
			m, ok := ev.(*kafka.Message)
			if !ok {
				continue
			}
			if m.TopicPartition.Error != nil {
				return storageErr(fmt.Sprintf("deliver to %s", topic), m.TopicPartition.Error)
			}
			confirmed++
		}
	}
	return nil
}

func (r *KafkaRepository) Close(context.Context) error {
	if remaining := r.producer.Flush(flushTimeoutMs); remaining > 0 {
		log.WithField("remaining", remaining).Warn("Kafka producer closed with undelivered messages")
	}
	r.producer.Close()
	return nil
}
