package service

import (
	"fmt"
	"time"

	"github.com/vishnumuthyalu/WorkLogger/internal/config"
	"github.com/vishnumuthyalu/WorkLogger/internal/export"
	"github.com/vishnumuthyalu/WorkLogger/internal/mail"
	"github.com/vishnumuthyalu/WorkLogger/internal/timeutil"
	"github.com/vishnumuthyalu/WorkLogger/internal/worklog"
)

// MailService sends a day's work log with its CSV and DOCX exports
// attached.
type MailService struct {
	dispatcher *mail.Dispatcher
	config     config.Config
}

// NewMailService creates a new MailService
func NewMailService(cfg config.Config) *MailService {
	return &MailService{
		dispatcher: mail.NewDispatcher(cfg.Email),
		config:     cfg,
	}
}

// NewMailServiceWithDispatcher creates a MailService with a custom
// dispatcher (useful for testing)
func NewMailServiceWithDispatcher(cfg config.Config, d *mail.Dispatcher) *MailService {
	return &MailService{
		dispatcher: d,
		config:     cfg,
	}
}

// DefaultTo returns the configured default recipient list.
func (s *MailService) DefaultTo() string { return s.config.Email.DefaultTo }

// DefaultCC returns the configured default CC list.
func (s *MailService) DefaultCC() string { return s.config.Email.DefaultCC }

// DefaultSubject expands the configured subject template for the date.
func (s *MailService) DefaultSubject(date time.Time) string {
	return s.config.Email.Subject(timeutil.FileDate(date))
}

// DefaultBody returns the standard body text for the date.
func (s *MailService) DefaultBody(date time.Time) string {
	return fmt.Sprintf("Please find attached the work log for %s.", timeutil.DisplayDate(date))
}

// SendDay builds the exports for the records and emails the CSV and DOCX
// as attachments. Blank to/cc/subject/body fall back to the configured
// defaults. The result is a (success, message) pair; failures are already
// humanized by the dispatcher.
func (s *MailService) SendDay(date time.Time, records []worklog.FlatRecord, to, cc, subject, body string) (bool, string) {
	if to == "" {
		to = s.DefaultTo()
	}
	if cc == "" {
		cc = s.DefaultCC()
	}
	if subject == "" {
		subject = s.DefaultSubject(date)
	}
	if body == "" {
		body = s.DefaultBody(date)
	}

	bundle, err := export.NewBundle(records, date)
	if err != nil {
		return false, fmt.Sprintf("Failed to build attachments: %v", err)
	}

	return s.dispatcher.Send(mail.Request{
		FromName: s.config.Email.SenderName,
		To:       to,
		CC:       cc,
		Subject:  subject,
		Body:     body,
		Attachments: []mail.Attachment{
			attachment(bundle.CSV),
			attachment(bundle.Docx),
		},
	})
}

func attachment(f export.File) mail.Attachment {
	return mail.Attachment{
		Data:      f.Data,
		MIMEMajor: f.MIMEMajor,
		MIMEMinor: f.MIMEMinor,
		Filename:  f.Name,
	}
}
