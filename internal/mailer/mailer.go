package mailer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/smtp"
	"time"

	"github.com/emersion/go-message/mail"
	"github.com/sirupsen/logrus"

	"rfp-procurement-go/internal/model"
)

// DeliveryError wraps any failure to build or transmit an RFP email.
// Missing credentials, connection failures and SMTP rejections all surface
// through this type.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("failed to send email: %v", e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// Sender delivers an RFP to a single recipient. Callers fan out across
// vendors themselves and collect per-recipient outcomes.
type Sender interface {
	SendRFP(ctx context.Context, toEmail, toName string, rfp *model.RFP) error
}

// Config holds mail submission settings
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPSender implements Sender over an authenticated SMTP submission
// connection (STARTTLS on the standard submission port).
type SMTPSender struct {
	cfg Config
}

// NewSMTPSender creates a new SMTP sender
func NewSMTPSender(cfg Config) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// SendRFP renders the RFP into plain-text and HTML bodies and submits the
// message to the configured SMTP server.
func (s *SMTPSender) SendRFP(ctx context.Context, toEmail, toName string, rfp *model.RFP) error {
	if s.cfg.Username == "" || s.cfg.Password == "" {
		return &DeliveryError{Err: fmt.Errorf("SMTP credentials not configured")}
	}

	if err := ctx.Err(); err != nil {
		return &DeliveryError{Err: err}
	}

	from := s.cfg.From
	if from == "" {
		from = s.cfg.Username
	}

	msg, err := buildMessage(from, toEmail, toName, rfp)
	if err != nil {
		return &DeliveryError{Err: err}
	}

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	if err := smtp.SendMail(addr, auth, from, []string{toEmail}, msg); err != nil {
		return &DeliveryError{Err: err}
	}

	logrus.Infof("Sent RFP %d to %s", rfp.ID, toEmail)
	return nil
}

// buildMessage assembles a multipart/alternative message with plain-text
// and HTML renderings of the RFP.
func buildMessage(from, toEmail, toName string, rfp *model.RFP) ([]byte, error) {
	var buf bytes.Buffer

	var h mail.Header
	h.SetDate(time.Now())
	h.SetAddressList("From", []*mail.Address{{Name: "Procurement Team", Address: from}})
	h.SetAddressList("To", []*mail.Address{{Name: toName, Address: toEmail}})
	h.SetSubject(fmt.Sprintf("Request for Proposal: %s", rfp.Title))

	mw, err := mail.CreateWriter(&buf, h)
	if err != nil {
		return nil, fmt.Errorf("failed to create message writer: %w", err)
	}

	iw, err := mw.CreateInline()
	if err != nil {
		return nil, fmt.Errorf("failed to create inline writer: %w", err)
	}

	var textHeader mail.InlineHeader
	textHeader.SetContentType("text/plain", map[string]string{"charset": "utf-8"})
	pw, err := iw.CreatePart(textHeader)
	if err != nil {
		return nil, fmt.Errorf("failed to create text part: %w", err)
	}
	io.WriteString(pw, RenderTextBody(toName, rfp))
	pw.Close()

	var htmlHeader mail.InlineHeader
	htmlHeader.SetContentType("text/html", map[string]string{"charset": "utf-8"})
	pw, err = iw.CreatePart(htmlHeader)
	if err != nil {
		return nil, fmt.Errorf("failed to create html part: %w", err)
	}
	io.WriteString(pw, RenderHTMLBody(toName, rfp))
	pw.Close()

	iw.Close()
	mw.Close()

	return buf.Bytes(), nil
}
