package worker

// email_worker.go
// Processes alert email jobs from QueueEmail. SMTP settings are resolved
// per send from the configuracion_empresa row, falling back to env vars.

import (
	"context"
	"encoding/json"
	"fmt"

	"erpstore/internal/infra"
	"erpstore/internal/repository"

	"github.com/rs/zerolog/log"
)

// EmailJobPayload is the job envelope sent to QueueEmail.
type EmailJobPayload struct {
	ToEmail    string `json:"to_email"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	AttachPath string `json:"attach_path,omitempty"`
}

// EmailWorker delivers queued mail over SMTP.
type EmailWorker struct {
	mailer     *infra.Mailer
	configRepo repository.ConfiguracionRepository
}

func NewEmailWorker(mailer *infra.Mailer, configRepo repository.ConfiguracionRepository) *EmailWorker {
	return &EmailWorker{mailer: mailer, configRepo: configRepo}
}

// Process sends one email job. A returned error means the attempt failed
// and the pool may retry.
func (w *EmailWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload EmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return nil // malformed jobs are not retryable
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("email_worker: empty to_email, skipping")
		return nil
	}

	settings := infra.SMTPSettings{}
	if w.configRepo != nil {
		empresa, err := w.configRepo.Find(ctx)
		if err != nil {
			return err
		}
		if empresa != nil {
			settings = infra.SMTPSettings{
				Host:     empresa.SmtpHost,
				Port:     empresa.SmtpPort,
				User:     empresa.SmtpUsuario,
				Password: empresa.SmtpPassword,
			}
		}
	}

	if err := w.mailer.Send(settings, payload.ToEmail, payload.Subject, payload.Body, payload.AttachPath); err != nil {
		return fmt.Errorf("email_worker: send: %w", err)
	}
	log.Info().Str("to", payload.ToEmail).Msg("email_worker: mail sent")
	return nil
}
