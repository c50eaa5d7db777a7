package mail

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	gomail "github.com/wneessen/go-mail"

	"github.com/vishnumuthyalu/WorkLogger/internal/config"
)

func configuredEmail() config.Email {
	return config.Email{
		Server:     "smtp.example.com",
		Port:       465,
		User:       "me@example.com",
		Password:   "secret",
		SenderName: "Daily Work Logger",
	}
}

// fakeDispatcher records transport invocations instead of dialing out.
func fakeDispatcher(cfg config.Email) (*Dispatcher, *[]*gomail.Msg) {
	d := NewDispatcher(cfg)
	var sent []*gomail.Msg
	d.send = func(msg *gomail.Msg) error {
		sent = append(sent, msg)
		return nil
	}
	return d, &sent
}

func TestSplitAddressList(t *testing.T) {
	got := SplitAddressList("a@x.com; b@y.com,, c@z.com")
	expected := []string{"a@x.com", "b@y.com", "c@z.com"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}

	if got := SplitAddressList(""); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
	if got := SplitAddressList(" ; , "); got != nil {
		t.Errorf("expected nil for blank-only input, got %v", got)
	}
}

func TestSend_UnconfiguredCredential(t *testing.T) {
	cfg := configuredEmail()
	cfg.Password = config.PasswordPlaceholder
	d, sent := fakeDispatcher(cfg)

	ok, msg := d.Send(Request{To: "a@x.com", Subject: "s", Body: "b"})
	if ok {
		t.Error("expected failure for placeholder credential")
	}
	if !strings.Contains(msg, "not configured") {
		t.Errorf("expected message to mention configuration, got %q", msg)
	}
	if len(*sent) != 0 {
		t.Errorf("expected zero connection attempts, got %d", len(*sent))
	}
}

func TestSend_MissingRecipient(t *testing.T) {
	d, sent := fakeDispatcher(configuredEmail())

	ok, msg := d.Send(Request{To: "   ", Subject: "s", Body: "b"})
	if ok {
		t.Error("expected failure for blank recipient")
	}
	if !strings.Contains(msg, "recipient") {
		t.Errorf("expected message to mention recipient, got %q", msg)
	}
	if len(*sent) != 0 {
		t.Errorf("expected zero connection attempts, got %d", len(*sent))
	}
}

func TestSend_Success(t *testing.T) {
	d, sent := fakeDispatcher(configuredEmail())

	ok, msg := d.Send(Request{
		FromName: "Daily Work Logger",
		To:       "a@x.com",
		CC:       "b@y.com; c@z.com",
		Subject:  "Friday_March_14_2025 Daily Work Log",
		Body:     "Please find attached the work log.",
		Attachments: []Attachment{
			{Data: []byte("Time,Meeting\n"), MIMEMajor: "text", MIMEMinor: "csv", Filename: "log.csv"},
		},
	})
	if !ok {
		t.Fatalf("expected success, got failure: %q", msg)
	}
	if len(*sent) != 1 {
		t.Fatalf("expected exactly one send, got %d", len(*sent))
	}

	var rendered bytes.Buffer
	if _, err := (*sent)[0].WriteTo(&rendered); err != nil {
		t.Fatalf("failed to render message: %v", err)
	}
	out := rendered.String()

	for _, expected := range []string{
		"Subject: Friday_March_14_2025 Daily Work Log",
		"To: <a@x.com>",
		"b@y.com",
		"c@z.com",
		"log.csv",
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("expected rendered message to contain %q", expected)
		}
	}
	if !strings.Contains(out, "me@example.com") {
		t.Error("expected login address in From header")
	}
}

func TestSend_OmitsEmptyCC(t *testing.T) {
	d, sent := fakeDispatcher(configuredEmail())

	ok, msg := d.Send(Request{To: "a@x.com", CC: " ; ", Subject: "s", Body: "b"})
	if !ok {
		t.Fatalf("expected success, got failure: %q", msg)
	}

	var rendered bytes.Buffer
	if _, err := (*sent)[0].WriteTo(&rendered); err != nil {
		t.Fatalf("failed to render message: %v", err)
	}
	if strings.Contains(rendered.String(), "Cc:") {
		t.Error("expected Cc header to be omitted for blank CC input")
	}
}

func TestSend_TransportFailure(t *testing.T) {
	d := NewDispatcher(configuredEmail())
	d.send = func(msg *gomail.Msg) error {
		return errors.New("535 authentication failed")
	}

	ok, msg := d.Send(Request{To: "a@x.com", Subject: "s", Body: "b"})
	if ok {
		t.Error("expected failure when transport errors")
	}
	if !strings.Contains(msg, "Failed to send email") || !strings.Contains(msg, "authentication failed") {
		t.Errorf("expected underlying reason in message, got %q", msg)
	}
}

func TestSend_InvalidRecipientAddress(t *testing.T) {
	d, sent := fakeDispatcher(configuredEmail())

	ok, msg := d.Send(Request{To: "not-an-address", Subject: "s", Body: "b"})
	if ok {
		t.Error("expected failure for malformed recipient")
	}
	if !strings.Contains(msg, "Invalid recipient") {
		t.Errorf("expected invalid recipient message, got %q", msg)
	}
	if len(*sent) != 0 {
		t.Errorf("expected zero connection attempts, got %d", len(*sent))
	}
}
