package sender_test

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"airline-data-generator/internal/progress"
	"airline-data-generator/internal/sender"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	to, subject, body string
	err               error
}

func (s *recordingSender) SendEmail(_ context.Context, to, subject, body string) error {
	s.to, s.subject, s.body = to, subject, body
	return s.err
}

func TestReportNotifier_Notify(t *testing.T) {
	rec := &recordingSender{}
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	sender.NewReportNotifier(rec, "ops@example.com").Notify(context.Background(), progress.Summary{
		RunID:     "run-1",
		StartedAt: start,
		EndedAt:   start.Add(2 * time.Second),
		Requested: 2500,
		Inserted:  2500,
		Batches:   3,
	})

	assert.Equal(t, "ops@example.com", rec.to)
	assert.Equal(t, "Airline data load finished: 2500 documents", rec.subject)
	assert.Contains(t, rec.body, "Docs inserted per second: 1250.00")
}

func TestReportNotifier_SendFailureIsNotFatal(t *testing.T) {
	rec := &recordingSender{err: errors.New("smtp down")}
	assert.NotPanics(t, func() {
		sender.NewReportNotifier(rec, "ops@example.com").Notify(context.Background(), progress.Summary{})
	})
}

func TestSMTPEmailSender_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sender.NewSMTPEmailSender(sender.SMTPSettings{Host: "localhost", Port: "2525", From: "gen@example.com"}).
		SendEmail(ctx, "ops@example.com", "s", "b")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSMTPEmailSender_SilentServerHonoursDeadline(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	// Accept connections but never send the SMTP greeting.
	var conns []net.Conn
	var mu sync.Mutex
	go func() {
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			conns = append(conns, c)
			mu.Unlock()
		}
	}()
	t.Cleanup(func() {
		mu.Lock()
		defer mu.Unlock()
		for _, c := range conns {
			c.Close()
		}
	})

	host, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	started := time.Now()
	err = sender.NewSMTPEmailSender(sender.SMTPSettings{Host: host, Port: port, From: "gen@example.com"}).
		SendEmail(ctx, "ops@example.com", "s", "b")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(started), 2*time.Second)
}
