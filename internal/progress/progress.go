package progress

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

// Reporter observes a load run. It never influences the run.
type Reporter interface {
	Started(total int)
	BatchInserted(inserted int)
	Completed(summary Summary)
}

type Summary struct {
	RunID     string
	StartedAt time.Time
	EndedAt   time.Time
	Requested int
	Generated int
	Inserted  int
	Batches   int
}

func (s Summary) Elapsed() time.Duration {
	return s.EndedAt.Sub(s.StartedAt)
}

// DocsPerSecond divides the requested count by the elapsed seconds, counting
// runs shorter than a second as one second.
func (s Summary) DocsPerSecond() float64 {
	secs := s.Elapsed().Seconds()
	if secs < 1 {
		secs = 1
	}
	return float64(s.Requested) / secs
}

func (s Summary) String() string {
	return fmt.Sprintf(
		"Run %s\nStarted: %s\nEnded: %s\nDocuments requested: %d\nDocuments inserted: %d\nBatches: %d\nTotal time elapsed (in seconds): %.3f\nDocs inserted per second: %.2f\n",
		s.RunID,
		s.StartedAt.Format(time.DateTime),
		s.EndedAt.Format(time.DateTime),
		s.Requested,
		s.Inserted,
		s.Batches,
		s.Elapsed().Seconds(),
		s.DocsPerSecond(),
	)
}

type LogReporter struct {
	logger log.FieldLogger
}

func NewLogReporter(logger log.FieldLogger) *LogReporter {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &LogReporter{logger: logger}
}

func (r *LogReporter) Started(total int) {
	r.logger.WithField("documents", total).Info("Begin generating airline documents")
}

func (r *LogReporter) BatchInserted(inserted int) {
	r.logger.WithField("inserted", inserted).Info("Docs inserted")
}

func (r *LogReporter) Completed(s Summary) {
	r.logger.WithFields(log.Fields{
		"run_id":          s.RunID,
		"requested":       s.Requested,
		"generated":       s.Generated,
		"inserted":        s.Inserted,
		"batches":         s.Batches,
		"elapsed_seconds": s.Elapsed().Seconds(),
		"docs_per_second": s.DocsPerSecond(),
	}).Info("Finished generating airline documents")
}
