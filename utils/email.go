package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"
	"time"

	"circuithouse-backend/models"

	"github.com/rs/zerolog"
)

const (
	subjectBookingConfirmation  = "Room Booking Confirmation"
	subjectCheckoutConfirmation = "Checkout Confirmation"
)

// SMTPConfig carries the outbound mail settings. An incomplete config puts
// the mailer in mock mode: messages are logged instead of sent, which keeps
// local development working without a mail server.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	FromName string
}

func (c SMTPConfig) complete() bool {
	return c.Host != "" && c.Port != "" && c.Username != "" && c.Password != ""
}

// Mailer sends guest confirmation emails as multipart/alternative messages:
// an HTML body rendered from a template plus a plaintext fallback.
type Mailer struct {
	cfg       SMTPConfig
	hotelName string
	logger    zerolog.Logger
}

func NewMailer(cfg SMTPConfig, hotelName string, logger zerolog.Logger) *Mailer {
	if cfg.FromName == "" {
		cfg.FromName = hotelName
	}
	return &Mailer{cfg: cfg, hotelName: hotelName, logger: logger}
}

type emailData struct {
	GuestName  string
	HotelName  string
	RoomNumber string
	CheckIn    string
	CheckOut   string
	SentAt     string
}

var bookingEmailTmpl = template.Must(template.New("booking").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Booking Confirmation</title>
<style>
body { background:#f5f7fb; font-family:Arial, Helvetica, sans-serif; color:#222; }
.container { max-width:640px; margin:20px auto; }
.card { background:#fff; border:1px solid #e6eef6; padding:24px; border-radius:8px; }
.label { font-weight:700; width:140px; display:inline-block; vertical-align:top; }
</style>
</head>
<body>
<div class="container">
  <div class="card">
    <h2>Booking Confirmed</h2>
    <p>Dear {{.GuestName}},</p>
    <p>Your room booking at {{.HotelName}} is confirmed. We look forward to hosting you.</p>
    <p><span class="label">Room:</span> {{.RoomNumber}}</p>
    <p><span class="label">Check-In:</span> {{.CheckIn}}</p>
    <p><span class="label">Check-Out:</span> {{.CheckOut}}</p>
    <p>Best regards,<br>{{.HotelName}} Management</p>
    <p>{{.SentAt}}</p>
  </div>
</div>
</body>
</html>`))

var checkoutEmailTmpl = template.Must(template.New("checkout").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Checkout Confirmation</title>
<style>
body { background:#f5f7fb; font-family:Arial, Helvetica, sans-serif; color:#222; }
.container { max-width:640px; margin:20px auto; }
.card { background:#fff; border:1px solid #e6eef6; padding:24px; border-radius:8px; }
</style>
</head>
<body>
<div class="container">
  <div class="card">
    <h2>Checkout Complete</h2>
    <p>Dear {{.GuestName}},</p>
    <p>Your checkout at {{.HotelName}} has been recorded. Thank you for staying with us.</p>
    <p>Best regards,<br>{{.HotelName}} Management</p>
    <p>{{.SentAt}}</p>
  </div>
</div>
</body>
</html>`))

func (m *Mailer) emailData(guest models.Guest) emailData {
	data := emailData{
		GuestName: strings.TrimSpace(guest.Name),
		HotelName: m.hotelName,
		SentAt:    time.Now().Format("2006-01-02 15:04:05"),
	}
	if guest.Room.ID != 0 {
		data.RoomNumber = guest.Room.RoomNumber
	}
	if !guest.CheckInDate.IsZero() {
		data.CheckIn = guest.CheckInDate.Format("2006-01-02 15:04")
	}
	if !guest.CheckOutDate.IsZero() {
		data.CheckOut = guest.CheckOutDate.Format("2006-01-02 15:04")
	}
	return data
}

func (m *Mailer) renderBookingEmail(guest models.Guest) (plain, html string, err error) {
	data := m.emailData(guest)

	plain = fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your room booking at %s is confirmed. We look forward to hosting you.\n\n"+
			"Room: %s\nCheck-In: %s\nCheck-Out: %s\n\n"+
			"Best regards,\n%s Management\n%s\n",
		data.GuestName, data.HotelName, data.RoomNumber, data.CheckIn, data.CheckOut,
		data.HotelName, data.SentAt,
	)

	var buf bytes.Buffer
	if err := bookingEmailTmpl.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return plain, buf.String(), nil
}

func (m *Mailer) renderCheckoutEmail(guest models.Guest) (plain, html string, err error) {
	data := m.emailData(guest)

	plain = fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your checkout at %s has been recorded. Thank you for staying with us.\n\n"+
			"Best regards,\n%s Management\n%s\n",
		data.GuestName, data.HotelName, data.HotelName, data.SentAt,
	)

	var buf bytes.Buffer
	if err := checkoutEmailTmpl.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return plain, buf.String(), nil
}

// SendBookingConfirmation emails the guest that their stay is confirmed.
func (m *Mailer) SendBookingConfirmation(guest models.Guest) error {
	plain, html, err := m.renderBookingEmail(guest)
	if err != nil {
		return fmt.Errorf("render booking email: %w", err)
	}
	return m.send(guest.Email, subjectBookingConfirmation, plain, html)
}

// SendCheckoutConfirmation emails the guest that their checkout was recorded.
func (m *Mailer) SendCheckoutConfirmation(guest models.Guest) error {
	plain, html, err := m.renderCheckoutEmail(guest)
	if err != nil {
		return fmt.Errorf("render checkout email: %w", err)
	}
	return m.send(guest.Email, subjectCheckoutConfirmation, plain, html)
}

func (m *Mailer) send(recipient, subject, plainBody, htmlBody string) error {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return fmt.Errorf("recipient email is empty")
	}

	if !m.cfg.complete() {
		m.logger.Info().Str("to", recipient).Str("subject", subject).
			Msg("[MOCK EMAIL] SMTP not configured, message not sent")
		return nil
	}

	from := fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.Username)
	addr := fmt.Sprintf("%s:%s", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	boundary := "----=_CONFIRMATION_EMAIL_BOUNDARY"

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", recipient))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(plainBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(htmlBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	if err := smtp.SendMail(addr, auth, m.cfg.Username, []string{recipient}, []byte(sb.String())); err != nil {
		return fmt.Errorf("smtp send to %s: %w", recipient, err)
	}

	m.logger.Info().Str("to", recipient).Str("subject", subject).Msg("email sent")
	return nil
}
