package email

import (
	"context"
	"log/slog"
	"strings"

	"github.com/wneessen/go-mail"

	"flight-report/pkg/apperr"
)

const plainFallback = "HTML report attached. Please view this email in an HTML-capable client."

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       []string
}

type ServiceInterface interface {
	Send(ctx context.Context, subject, htmlBody string) error
}

// Sender delivers HTML reports over SMTP. Port 465 opens an implicitly
// encrypted session; any other port requires a STARTTLS upgrade.
type Sender struct {
	cfg Config
	log *slog.Logger
}

func NewSender(cfg Config, log *slog.Logger) *Sender {
	return &Sender{cfg: cfg, log: log}
}

// Send delivers one multipart message: the HTML body with a plain-text
// fallback notice. It fails fast on incomplete settings, before opening a
// connection. No retry; transport failures propagate.
func (s *Sender) Send(ctx context.Context, subject, htmlBody string) error {
	if missing := s.missingSettings(); len(missing) > 0 {
		return apperr.New(apperr.CodeConfig,
			"SMTP configuration is incomplete; missing "+strings.Join(missing, ", "))
	}

	msg := mail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return apperr.Wrap(apperr.CodeConfig, "invalid sender address", err)
	}
	if err := msg.To(s.cfg.To...); err != nil {
		return apperr.Wrap(apperr.CodeConfig, "invalid recipient address", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, plainFallback)
	msg.AddAlternativeString(mail.TypeTextHTML, htmlBody)

	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.Username),
		mail.WithPassword(s.cfg.Password),
	}
	if s.cfg.Port == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}

	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return apperr.Wrap(apperr.CodeDelivery, "build SMTP client", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return apperr.Wrap(apperr.CodeDelivery, "send email", err)
	}

	s.log.Info("email sent", "to", strings.Join(s.cfg.To, ", "), "subject", subject)
	return nil
}

func (s *Sender) missingSettings() []string {
	var missing []string
	if s.cfg.Host == "" {
		missing = append(missing, "SMTP_HOST")
	}
	if s.cfg.Port == 0 {
		missing = append(missing, "SMTP_PORT")
	}
	if s.cfg.Username == "" {
		missing = append(missing, "SMTP_USER")
	}
	if s.cfg.Password == "" {
		missing = append(missing, "SMTP_PASS")
	}
	if s.cfg.From == "" {
		missing = append(missing, "EMAIL_FROM")
	}
	if len(s.cfg.To) == 0 {
		missing = append(missing, "EMAIL_TO")
	}
	return missing
}
