package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/fisiomuv/preventa-api/internal/infra/queue"
	"github.com/fisiomuv/preventa-api/pkg/logging"
)

var nonDigits = regexp.MustCompile(`\D`)

func NewEmailSender(host string, port int, user, password, from, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
	}
}

func (s *EmailSender) enabled() bool {
	return s != nil && s.Host != "" && s.User != "" && s.Password != ""
}

// NotifyOperator mails the reservation details to the operator inbox.
func (s *EmailSender) NotifyOperator(payload queue.NotificationPayload) error {
	if !s.enabled() {
		logging.GetLogger().Debug("mail transport not configured, skipping operator alert")
		return nil
	}

	data := OperatorAlertData{
		LeadID:      payload.LeadID,
		Email:       payload.Email,
		Name:        payload.Name,
		Phone:       payload.Phone,
		Interest:    payload.Interest,
		Origin:      payload.Origin,
		SubmittedAt: formatInstant(payload.Timestamp),
		UTM:         payload.UTM,
		Referer:     payload.Referer,
	}
	if payload.Phone != "" {
		data.WhatsAppURL = "https://wa.me/" + nonDigits.ReplaceAllString(payload.Phone, "")
	}

	subject := fmt.Sprintf("🚀 Nueva Reserva de Preventa - %s", payload.Interest)
	return s.send(s.To, subject, "operator_alert.html", data)
}

// NotifyClient mails the confirmation to the lead's own address.
func (s *EmailSender) NotifyClient(payload queue.NotificationPayload) error {
	if !s.enabled() {
		logging.GetLogger().Debug("mail transport not configured, skipping client confirmation")
		return nil
	}

	data := ClientConfirmationData{
		Name:        payload.Name,
		Interest:    payload.Interest,
		SubmittedAt: formatInstant(payload.Timestamp),
		ContactMail: s.From,
	}

	subject := fmt.Sprintf("✅ Reserva Confirmada - %s", payload.Interest)
	return s.send(payload.Email, subject, "client_confirmation.html", data)
}

func (s *EmailSender) send(to, subject, templateName string, data interface{}) error {
	tmplPath := filepath.Join("templates", templateName)
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("failed to read email template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.From, "FisioMuv Recovery"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("SMTP send failed: %w", err)
	}

	return nil
}

func formatInstant(millis int64) string {
	return time.UnixMilli(millis).Format("02/01/2006 15:04")
}
