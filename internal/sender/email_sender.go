package sender

import (
	"context"
	"fmt"
	"net"
	"net/smtp"

	"airline-data-generator/internal/progress"

	"github.com/jordan-wright/email"
	log "github.com/sirupsen/logrus"
)

type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// SMTPSettings describes the relay used for run report mail. An empty User
// sends without authentication.
type SMTPSettings struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
}

type SMTPEmailSender struct {
	addr string
	auth smtp.Auth
	from string
}

func NewSMTPEmailSender(s SMTPSettings) *SMTPEmailSender {
	var auth smtp.Auth
	if s.User != "" {
		auth = smtp.PlainAuth("", s.User, s.Password, s.Host)
	}
	return &SMTPEmailSender{addr: net.JoinHostPort(s.Host, s.Port), auth: auth, from: s.From}
}

// SendEmail gives up when ctx is done. The SMTP exchange itself cannot be
// interrupted, so it finishes in the background and its result is dropped.
func (s *SMTPEmailSender) SendEmail(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e := email.NewEmail()
	e.From = s.from
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	done := make(chan error, 1)
	go func() { done <- e.Send(s.addr, s.auth) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send report to %s via %s: %w", to, s.addr, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("send report to %s via %s: %w", to, s.addr, ctx.Err())
	}
}

// ReportNotifier mails the summary of a finished load run.
type ReportNotifier struct {
	sender    EmailSender
	recipient string
}

func NewReportNotifier(sender EmailSender, recipient string) *ReportNotifier {
	return &ReportNotifier{sender: sender, recipient: recipient}
}

// Notify never fails the run; delivery problems are only logged.
func (n *ReportNotifier) Notify(ctx context.Context, summary progress.Summary) {
	subject := fmt.Sprintf("Airline data load finished: %d documents", summary.Inserted)
	if err := n.sender.SendEmail(ctx, n.recipient, subject, summary.String()); err != nil {
		log.WithError(err).WithField("email", n.recipient).Error("Failed to send run report via SMTP")
		return
	}
	log.WithField("email", n.recipient).Info("Run report sent successfully via SMTP")
}
