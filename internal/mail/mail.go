// Package mail sends a work log and its export attachments through an SMTP
// relay. Every failure is converted to a (success, message) result at this
// boundary; nothing is retried and nothing panics past it.
package mail

import (
	"bytes"
	"fmt"
	"strings"

	gomail "github.com/wneessen/go-mail"

	"github.com/vishnumuthyalu/WorkLogger/internal/config"
)

// Attachment is one file to append to the outgoing message.
type Attachment struct {
	Data      []byte
	MIMEMajor string
	MIMEMinor string
	Filename  string
}

// Request describes one message to send.
type Request struct {
	FromName    string
	To          string // one or more addresses, ';' or ',' separated
	CC          string // same format; may be empty
	Subject     string
	Body        string
	Attachments []Attachment
}

// Dispatcher sends messages using the configured relay. The transport is a
// swappable function so tests can assert that no connection is attempted.
type Dispatcher struct {
	cfg  config.Email
	send func(msg *gomail.Msg) error
}

// NewDispatcher creates a Dispatcher for the given relay settings.
func NewDispatcher(cfg config.Email) *Dispatcher {
	d := &Dispatcher{cfg: cfg}
	d.send = d.dialAndSend
	return d
}

// NewDispatcherWithTransport creates a Dispatcher that uses the given
// transport function instead of dialing the relay (for testing).
func NewDispatcherWithTransport(cfg config.Email, send func(msg *gomail.Msg) error) *Dispatcher {
	return &Dispatcher{cfg: cfg, send: send}
}

// SplitAddressList splits a recipient string on semicolons and commas,
// trims each address, and drops blanks.
func SplitAddressList(s string) []string {
	cleaned := strings.ReplaceAll(s, ";", ",")
	var out []string
	for _, part := range strings.Split(cleaned, ",") {
		if addr := strings.TrimSpace(part); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}

// Send builds and transmits one message to the union of To and the cleaned
// CC list. Preconditions are checked before any network activity; the
// returned message is always human-readable.
func (d *Dispatcher) Send(req Request) (bool, string) {
	if !d.cfg.IsConfigured() {
		return false, "SMTP password not configured. Set the credential in config.toml."
	}
	if strings.TrimSpace(req.To) == "" {
		return false, "Please provide at least one recipient email address."
	}

	msg := gomail.NewMsg()
	msg.Subject(req.Subject)

	if err := msg.FromFormat(req.FromName, d.cfg.User); err != nil {
		return false, fmt.Sprintf("Invalid sender address %q: %v", d.cfg.User, err)
	}

	toClean := SplitAddressList(req.To)
	if err := msg.To(toClean...); err != nil {
		return false, fmt.Sprintf("Invalid recipient address: %v", err)
	}

	// The Cc header is omitted entirely when the cleaned list is empty.
	ccClean := SplitAddressList(req.CC)
	if len(ccClean) > 0 {
		if err := msg.Cc(ccClean...); err != nil {
			return false, fmt.Sprintf("Invalid CC address: %v", err)
		}
	}

	msg.SetBodyString(gomail.TypeTextPlain, req.Body)

	for _, a := range req.Attachments {
		contentType := gomail.ContentType(a.MIMEMajor + "/" + a.MIMEMinor)
		if err := msg.AttachReader(a.Filename, bytes.NewReader(a.Data),
			gomail.WithFileContentType(contentType)); err != nil {
			return false, fmt.Sprintf("Failed to attach %s: %v", a.Filename, err)
		}
	}

	if err := d.send(msg); err != nil {
		return false, fmt.Sprintf("Failed to send email: %v", err)
	}

	return true, "Email sent successfully."
}

// dialAndSend opens one SSL connection to the relay, authenticates, sends
// the message, and closes the connection.
func (d *Dispatcher) dialAndSend(msg *gomail.Msg) error {
	client, err := gomail.NewClient(d.cfg.Server,
		gomail.WithPort(d.cfg.Port),
		gomail.WithSSL(),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(d.cfg.User),
		gomail.WithPassword(d.cfg.Password),
	)
	if err != nil {
		return err
	}
	return client.DialAndSend(msg)
}
