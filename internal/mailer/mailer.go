package mailer

import (
	"crypto/tls"
	"errors"
	"net"
	"syscall"

	"gopkg.in/gomail.v2"

	"github.com/meeraai/site-backend/internal/config"
)

// Message is one outbound email. AttachmentPath, when set, names a file
// on local disk that is attached under its base name.
type Message struct {
	To             string
	Subject        string
	HTML           string
	AttachmentPath string
}

// Mailer sends formatted messages through an external relay.
type Mailer interface {
	Send(msg Message) error
	// Verify checks that the relay is reachable. Failures are expected to
	// be logged by the caller, not treated as fatal.
	Verify() error
}

// SMTPMailer delivers mail through a configured SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer builds a mailer from SMTP settings. Port 465 switches to
// implicit SSL; self-signed relay certificates are accepted.
func NewSMTPMailer(smtp config.SMTPConfig, fromName string) *SMTPMailer {
	d := gomail.NewDialer(smtp.Host, smtp.Port, smtp.User, smtp.Password)
	d.SSL = smtp.Port == 465
	d.TLSConfig = &tls.Config{InsecureSkipVerify: true}
	m := gomail.NewMessage()
	return &SMTPMailer{dialer: d, from: m.FormatAddress(smtp.User, fromName)}
}

func (s *SMTPMailer) Send(msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)
	if msg.AttachmentPath != "" {
		m.Attach(msg.AttachmentPath)
	}
	return s.dialer.DialAndSend(m)
}

func (s *SMTPMailer) Verify() error {
	sc, err := s.dialer.Dial()
	if err != nil {
		return err
	}
	return sc.Close()
}

// IsConnectivityErr reports whether err is a transport-level failure
// (connection refused, unreachable host, dial timeout) as opposed to an
// SMTP protocol or message error.
func IsConnectivityErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.EHOSTUNREACH) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
