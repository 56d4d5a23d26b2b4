package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"airline-data-generator/internal/domain"
	"airline-data-generator/internal/progress"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// DocumentBuilder builds one independent document per call.
type DocumentBuilder interface {
	BuildDocument() (domain.FulfillmentDocument, error)
}

// BuilderFactory returns the builder used by the given worker.
type BuilderFactory func(worker int) DocumentBuilder

// DocumentStorage defines the storage operation the loader needs
type DocumentStorage interface {
	BulkInsert(ctx context.Context, collection string, docs []domain.FulfillmentDocument) error
}

type Options struct {
	Collection string
	// FlushPartialBatch inserts the trailing batch smaller than the batch size.
	// When false the remainder is generated but never stored.
	FlushPartialBatch bool
	// InsertTimeout bounds every bulk insert; zero disables the bound.
	// Failed inserts are never retried.
	InsertTimeout time.Duration
	// Workers > 1 generates documents concurrently; submission stays sequential.
	Workers int
}

type Loader struct {
	newBuilder BuilderFactory
	storage    DocumentStorage
	reporter   progress.Reporter
	opts       Options
	now        func() time.Time
}

func NewLoader(newBuilder BuilderFactory, storage DocumentStorage, reporter progress.Reporter, opts Options) *Loader {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Loader{
		newBuilder: newBuilder,
		storage:    storage,
		reporter:   reporter,
		opts:       opts,
		now:        time.Now,
	}
}

// Run generates total documents and inserts them in batches of batchSize.
// The first generation or storage error aborts the run; batches inserted
// before the failure stay in storage.
func (l *Loader) Run(ctx context.Context, total, batchSize int) (progress.Summary, error) {
	summary := progress.Summary{
		RunID:     uuid.NewString(),
		StartedAt: l.now(),
		Requested: total,
	}
	if batchSize <= 0 {
		return summary, fmt.Errorf("%w: batch size must be greater than 0", domain.ErrConfiguration)
	}

	logCtx := log.WithFields(log.Fields{
		"run_id":     summary.RunID,
		"collection": l.opts.Collection,
		"batch_size": batchSize,
		"workers":    l.opts.Workers,
	})
	logCtx.WithField("documents", total).Info("Starting load run")

	b := &batcher{loader: l, size: batchSize, summary: &summary}

	var err error
	if l.opts.Workers == 1 || total <= 1 {
		err = l.runSequential(ctx, total, b)
	} else {
		err = l.runConcurrent(ctx, total, b)
	}
	if err == nil && l.opts.FlushPartialBatch {
		err = b.flush(ctx)
	}
	if err == nil && len(b.pending) > 0 {
		logCtx.WithField("dropped", len(b.pending)).Warn("Trailing partial batch not inserted")
	}

	summary.EndedAt = l.now()
	if err != nil {
		logCtx.WithError(err).WithField("inserted", summary.Inserted).Error("Load run aborted")
		return summary, err
	}
	return summary, nil
}

func (l *Loader) runSequential(ctx context.Context, total int, b *batcher) error {
	builder := l.newBuilder(0)
	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		doc, err := builder.BuildDocument()
		if err != nil {
			return fmt.Errorf("build document %d: %w", i+1, err)
		}
		if err := b.add(ctx, doc); err != nil {
			return err
		}
	}
	return nil
}

// runConcurrent fans generation out to workers and funnels documents through a
// bounded channel into the single submission loop.
func (l *Loader) runConcurrent(ctx context.Context, total int, b *batcher) error {
	g, gctx := errgroup.WithContext(ctx)

	jobs := make(chan int)
	docs := make(chan domain.FulfillmentDocument, l.opts.Workers*2)

	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < total; i++ {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	var wg sync.WaitGroup
	for w := 0; w < l.opts.Workers; w++ {
		builder := l.newBuilder(w)
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			for i := range jobs {
				doc, err := builder.BuildDocument()
				if err != nil {
					return fmt.Errorf("build document %d: %w", i+1, err)
				}
				select {
				case docs <- doc:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		close(docs)
	}()

	g.Go(func() error {
		for doc := range docs {
			if err := b.add(gctx, doc); err != nil {
				return err
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// batcher accumulates documents and submits full batches. It is only used
// from one goroutine at a time.
type batcher struct {
	loader  *Loader
	size    int
	pending []domain.FulfillmentDocument
	summary *progress.Summary
}

func (b *batcher) add(ctx context.Context, doc domain.FulfillmentDocument) error {
	if b.pending == nil {
		b.pending = make([]domain.FulfillmentDocument, 0, b.size)
	}
	b.pending = append(b.pending, doc)
	b.summary.Generated++
	if len(b.pending) < b.size {
		return nil
	}
	return b.flush(ctx)
}

func (b *batcher) flush(ctx context.Context) error {
	if len(b.pending) == 0 {
		return nil
	}
	l := b.loader

	insertCtx := ctx
	if l.opts.InsertTimeout > 0 {
		var cancel context.CancelFunc
		insertCtx, cancel = context.WithTimeout(ctx, l.opts.InsertTimeout)
		defer cancel()
	}

	if err := l.storage.BulkInsert(insertCtx, l.opts.Collection, b.pending); err != nil {
		if !errors.Is(err, domain.ErrStorage) && !errors.Is(err, domain.ErrGeneration) {
			err = fmt.Errorf("%w: %w", domain.ErrStorage, err)
		}
		return fmt.Errorf("insert batch %d: %w", b.summary.Batches+1, err)
	}

	b.summary.Inserted += len(b.pending)
	b.summary.Batches++
	b.pending = nil
	l.reporter.BatchInserted(b.summary.Inserted)
	return nil
}
