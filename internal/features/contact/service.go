package contact

import (
	"context"
	"strings"
	"time"

	"go-insights/internal/common/apperr"
	"go-insights/internal/common/models"
	"go-insights/pkg/utils"

	"go.uber.org/zap"
)

// Notifier delivers the outbound notification for a new submission. The
// send is fire-and-forget: the creating request never waits on it and never
// fails because of it.
type Notifier interface {
	SendContactNotification(ctx context.Context, contact *Contact) error
}

type ContactService interface {
	Create(ctx context.Context, contact *Contact) (*Contact, error)
	ListPage(ctx context.Context, from, to string, p models.Pagination) ([]Contact, models.Meta, error)
	GetByID(ctx context.Context, id string) (*Contact, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, from, to string) ([]Contact, error)
}

type ContactServiceImpl struct {
	Repo     ContactRepository
	Notifier Notifier
	Log      *zap.Logger
}

func NewContactService(repo ContactRepository, notifier Notifier, log *zap.Logger) ContactService {
	return &ContactServiceImpl{Repo: repo, Notifier: notifier, Log: log}
}

func (s *ContactServiceImpl) Create(ctx context.Context, contact *Contact) (*Contact, error) {
	contact.FullName = strings.TrimSpace(contact.FullName)
	contact.Email = strings.ToLower(strings.TrimSpace(contact.Email))
	contact.Message = strings.TrimSpace(contact.Message)

	if contact.FullName == "" || contact.Email == "" || contact.Message == "" {
		return nil, apperr.Validation("fullName, email, and message are required")
	}
	if !utils.IsValidEmail(contact.Email) {
		return nil, apperr.Validation("Invalid email")
	}

	if err := s.Repo.Create(ctx, contact); err != nil {
		s.Log.Error("create contact failed", zap.Error(err))
		return nil, apperr.Persistence("Failed to create contact", err)
	}

	// Dispatched after the write commits, on its own context so it survives
	// the request; failures are logged and swallowed.
	if s.Notifier != nil {
		go func(c Contact) {
			notifyCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := s.Notifier.SendContactNotification(notifyCtx, &c); err != nil {
				s.Log.Warn("contact notification failed",
					zap.String("contact_id", c.ID.Hex()),
					zap.Error(err))
			}
		}(*contact)
	}

	return contact, nil
}

func (s *ContactServiceImpl) ListPage(ctx context.Context, from, to string, p models.Pagination) ([]Contact, models.Meta, error) {
	filter := DateRangeFilter(from, to)

	contacts, err := s.Repo.FindPage(ctx, filter, p)
	if err != nil {
		s.Log.Error("list contacts failed", zap.Error(err))
		return nil, models.Meta{}, apperr.Persistence("Failed to fetch contacts", err)
	}

	total, err := s.Repo.Count(ctx, filter)
	if err != nil {
		s.Log.Error("count contacts failed", zap.Error(err))
		return nil, models.Meta{}, apperr.Persistence("Failed to fetch contacts", err)
	}

	return contacts, p.NewMeta(total), nil
}

func (s *ContactServiceImpl) GetByID(ctx context.Context, id string) (*Contact, error) {
	contact, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		s.Log.Error("get contact failed", zap.String("id", id), zap.Error(err))
		return nil, apperr.Persistence("Failed to fetch contact", err)
	}
	if contact == nil {
		return nil, apperr.NotFound("Contact not found")
	}
	return contact, nil
}

func (s *ContactServiceImpl) Delete(ctx context.Context, id string) error {
	deleted, err := s.Repo.Delete(ctx, id)
	if err != nil {
		s.Log.Error("delete contact failed", zap.String("id", id), zap.Error(err))
		return apperr.Persistence("Failed to delete contact", err)
	}
	if !deleted {
		return apperr.NotFound("Contact not found")
	}
	return nil
}

func (s *ContactServiceImpl) Export(ctx context.Context, from, to string) ([]Contact, error) {
	contacts, err := s.Repo.FindAll(ctx, DateRangeFilter(from, to))
	if err != nil {
		s.Log.Error("export contacts failed", zap.Error(err))
		return nil, apperr.Persistence("Failed to export contacts", err)
	}
	return contacts, nil
}
