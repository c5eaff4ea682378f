package service

import (
	"context"
	"fmt"
	"net/smtp"
	"time"

	"telemed-backend/config"

	"github.com/sirupsen/logrus"
)

const mailSendTimeout = 10 * time.Second

// Mailer sends notification emails. Implementations must be safe for
// concurrent use; callers treat every send as best-effort.
type Mailer interface {
	SendAppointmentConfirmation(ctx context.Context, to, patientName, doctorName, specialization string, appointmentDate time.Time) error
}

type smtpMailer struct {
	cfg config.SMTPConfig
	log *logrus.Logger
}

func NewMailer(cfg config.SMTPConfig, log *logrus.Logger) Mailer {
	return &smtpMailer{cfg: cfg, log: log}
}

func (m *smtpMailer) SendAppointmentConfirmation(ctx context.Context, to, patientName, doctorName, specialization string, appointmentDate time.Time) error {
	subject := "Your appointment has been confirmed"
	body := fmt.Sprintf(
		"Dear %s,\r\n\r\nYour appointment with Dr. %s (%s) on %s has been confirmed.\r\n\r\nBest regards,\r\nTelemed",
		patientName, doctorName, specialization, appointmentDate.Format("02 January 2006 at 15:04"),
	)
	return m.send(ctx, to, subject, body)
}

func (m *smtpMailer) send(ctx context.Context, to, subject, body string) error {
	if !m.cfg.Enabled {
		m.log.Infof("Mailer disabled, skipping email to %s: %s", to, subject)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.cfg.From, to, subject, body))
	addr := fmt.Sprintf("%s:%s", m.cfg.Host, m.cfg.Port)

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	return nil
}

// SendConfirmationAsync fires the confirmation email on its own
// goroutine with a detached context. Failures are logged and never
// reach the caller; the triggering operation is already committed.
func SendConfirmationAsync(mailer Mailer, log *logrus.Logger, to, patientName, doctorName, specialization string, appointmentDate time.Time) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), mailSendTimeout)
		defer cancel()
		if err := mailer.SendAppointmentConfirmation(ctx, to, patientName, doctorName, specialization, appointmentDate); err != nil {
			log.Warnf("Failed to send appointment confirmation to %s (non-fatal): %+v", to, err)
		}
	}()
}
