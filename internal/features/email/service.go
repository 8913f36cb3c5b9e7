package email

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"go-insights/internal/config"
	"go-insights/internal/features/contact"

	"go.uber.org/zap"
)

type EmailService interface {
	SendEmail(ctx context.Context, to []string, subject, body string) error
	SendContactNotification(ctx context.Context, c *contact.Contact) error
}

type EmailServiceImpl struct {
	Config *config.Config
	Repo   *EmailRepository
	Log    *zap.Logger
}

func NewEmailService(cfg *config.Config, repo *EmailRepository, log *zap.Logger) EmailService {
	return &EmailServiceImpl{Config: cfg, Repo: repo, Log: log}
}

func (s *EmailServiceImpl) SendEmail(ctx context.Context, to []string, subject, body string) error {
	cfg := s.Config
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return errors.New("SMTP configuration missing")
	}

	from := cfg.FromEmail
	if from == "" {
		from = cfg.SMTPUser
	}

	record := &Email{
		From:    from,
		To:      to,
		Subject: subject,
		Body:    body,
		Status:  EmailQueued,
	}
	if s.Repo != nil {
		_ = s.Repo.Create(ctx, record)
	}

	auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	addr := fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort)

	msg := []byte(fmt.Sprintf("To: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		strings.Join(to, ", "), subject, body))

	err := smtp.SendMail(addr, auth, from, to, msg)

	status := EmailSent
	errMsg := ""
	if err != nil {
		status = EmailFailed
		errMsg = err.Error()
	}
	if s.Repo != nil {
		_ = s.Repo.UpdateStatus(ctx, record.ID, status, errMsg)
	}

	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

// SendContactNotification delivers two messages for a new submission: a
// detailed notification to the configured owner address and an
// acknowledgement to the submitter. A failure on one does not stop the
// other; both outcomes are logged.
func (s *EmailServiceImpl) SendContactNotification(ctx context.Context, c *contact.Contact) error {
	if s.Config.NotifyEmail == "" {
		s.Log.Warn("NOTIFY_EMAIL not set, skipping contact notification")
		return nil
	}

	var errs []error

	if err := s.SendEmail(ctx, []string{s.Config.NotifyEmail}, ownerSubject(c), ownerBody(c)); err != nil {
		s.Log.Warn("owner notification failed", zap.Error(err))
		errs = append(errs, err)
	}

	if c.Email != "" {
		if err := s.SendEmail(ctx, []string{c.Email}, ackSubject(c), ackBody(c)); err != nil {
			s.Log.Warn("submitter acknowledgement failed", zap.Error(err))
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func ownerSubject(c *contact.Contact) string {
	subject := c.Subject
	if subject == "" {
		subject = "No subject"
	}
	return fmt.Sprintf("New contact: %s - %s", c.FullName, subject)
}

func ownerBody(c *contact.Contact) string {
	lines := []string{
		"You received a new contact submission:",
		"",
		"Full name: " + c.FullName,
		"Email: " + c.Email,
		"Phone: " + strings.TrimSpace(c.CountryCode+" "+c.Phone),
		"Company: " + orNA(c.Company),
		"Industry: " + orNA(c.Industry),
		"Subject: " + orNA(c.Subject),
		"",
		"Message:",
		c.Message,
		"",
		"Submitted at: " + c.CreatedAt.Format("2006-01-02 15:04:05 MST"),
	}
	return strings.Join(lines, "\n")
}

func ackSubject(c *contact.Contact) string {
	first, _, _ := strings.Cut(c.FullName, " ")
	return fmt.Sprintf("Thanks for contacting us, %s!", first)
}

func ackBody(c *contact.Contact) string {
	lines := []string{
		"Hi " + c.FullName + ",",
		"",
		"Thanks for reaching out. We received your message and someone from our team will get back to you soon.",
		"",
		"Summary of your submission:",
		"Subject: " + orNA(c.Subject),
		"Message:",
		c.Message,
		"",
		"Best regards,",
		"The Team",
	}
	return strings.Join(lines, "\n")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
