package infra

import (
	"errors"
	"fmt"
	"net/smtp"

	"erpstore/internal/config"

	"github.com/jordan-wright/email"
)

// SMTPSettings is the resolved account used for one send. The runtime
// source of truth is the configuracion_empresa row; env vars are only a
// bootstrap fallback for fresh installs.
type SMTPSettings struct {
	Host     string
	Port     int
	User     string
	Password string
}

// Mailer sends plain-text mail over SMTP with per-send settings.
type Mailer struct {
	fallback SMTPSettings
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{fallback: SMTPSettings{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Password: cfg.SMTPPassword,
	}}
}

// Resolve fills empty settings fields from the bootstrap fallback.
func (m *Mailer) Resolve(s SMTPSettings) SMTPSettings {
	if s.Host == "" {
		s.Host = m.fallback.Host
	}
	if s.Port == 0 {
		s.Port = m.fallback.Port
	}
	if s.User == "" {
		s.User = m.fallback.User
	}
	if s.Password == "" {
		s.Password = m.fallback.Password
	}
	return s
}

// Send delivers a plain-text message, optionally attaching a file.
func (m *Mailer) Send(s SMTPSettings, to, subject, body, attachPath string) error {
	s = m.Resolve(s)
	if s.Host == "" || s.User == "" {
		return errors.New("smtp no configurado")
	}

	e := email.NewEmail()
	e.From = s.User
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	if attachPath != "" {
		if _, err := e.AttachFile(attachPath); err != nil {
			return fmt.Errorf("mailer: attach: %w", err)
		}
	}

	auth := smtp.PlainAuth("", s.User, s.Password, s.Host)
	return e.Send(fmt.Sprintf("%s:%d", s.Host, s.Port), auth)
}
