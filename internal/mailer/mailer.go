// Package mailer delivers outbound mail over SMTP. Configuration comes
// from site settings, falling back to environment values when the admin
// has not filled in SMTP details.
package mailer

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"lorasite/internal/models"
)

// Config holds the SMTP connection parameters for one send.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Enabled reports whether enough configuration exists to attempt a send.
func (c Config) Enabled() bool {
	return c.Host != ""
}

// SettingsSource yields the current site settings. Implemented by the
// settings store.
type SettingsSource interface {
	Get() (*models.Settings, error)
}

// Mailer sends HTML mail. SMTP details from the settings row win over
// the environment config, so admins can change them without a restart.
// A mailer with neither configured silently drops messages, which keeps
// the forgot-password flow from failing in environments without SMTP.
type Mailer struct {
	env      Config
	settings SettingsSource
}

// New creates a Mailer with the given environment fallback configuration.
// settings may be nil, in which case only the environment values apply.
func New(env Config, settings SettingsSource) *Mailer {
	return &Mailer{env: env, settings: settings}
}

// config resolves the effective SMTP configuration for one send.
func (m *Mailer) config() Config {
	if m.settings == nil {
		return m.env
	}
	s, err := m.settings.Get()
	if err != nil {
		slog.Warn("settings lookup failed, using environment smtp config", "error", err)
		return m.env
	}
	if s.SMTPHost == "" {
		return m.env
	}
	return Config{
		Host:     s.SMTPHost,
		Port:     s.SMTPPort,
		Username: s.SMTPUser,
		Password: s.SMTPPassword,
		From:     s.SMTPFrom,
	}
}

// SendResetCode emails a password reset code to the address.
func (m *Mailer) SendResetCode(to, code string) error {
	subject := "Your password reset code"
	body := fmt.Sprintf(`<html><body style="font-family: Arial, sans-serif;">
<p>Use this code to reset your password:</p>
<p style="font-size: 28px; font-weight: bold; letter-spacing: 4px;">%s</p>
<p>The code expires in 10 minutes. If you did not request a reset, ignore this message.</p>
</body></html>`, code)
	return m.Send([]string{to}, subject, body)
}

// Send delivers an HTML message to the recipients. When SMTP is not
// configured the message is dropped with a warning rather than an error.
func (m *Mailer) Send(to []string, subject, body string) error {
	cfg := m.config()
	if !cfg.Enabled() {
		slog.Warn("smtp not configured, dropping mail", "to", to, "subject", subject)
		return nil
	}

	from := cfg.From
	if from == "" {
		from = cfg.Username
	}

	var message strings.Builder
	message.WriteString("From: " + from + "\r\n")
	message.WriteString("To: " + strings.Join(to, ",") + "\r\n")
	message.WriteString("Subject: " + subject + "\r\n")
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	message.WriteString("\r\n")
	message.WriteString(body)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	var auth smtp.Auth
	if cfg.Username != "" && cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, from, to, []byte(message.String())); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	slog.Info("mail sent", "to", to, "subject", subject)
	return nil
}
