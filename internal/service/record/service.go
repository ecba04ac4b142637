// Package record implements the contact, activity and settings operations
// exposed by the dispatcher.
package record

import (
	"context"
	"log/slog"
	"time"

	"github.com/contactdesk/backend/internal/domain"
)

// contactRepo defines the contact repository interface needed by the service.
type contactRepo interface {
	List(ctx context.Context) ([]domain.Contact, error)
	GetByID(ctx context.Context, id string) (*domain.Contact, error)
	Save(ctx context.Context, c domain.Contact) (created bool, err error)
	DeleteByID(ctx context.Context, id string) error
}

// activityRepo defines the activity repository interface needed by the service.
type activityRepo interface {
	List(ctx context.Context) ([]domain.Activity, error)
	Save(ctx context.Context, a domain.Activity) (created bool, err error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByContactID(ctx context.Context, contactID string) (int, error)
}

// settingRepo defines the settings repository interface needed by the service.
type settingRepo interface {
	Get(ctx context.Context, key string) (*domain.Setting, error)
	Save(ctx context.Context, s domain.Setting) error
}

// Service implements record operations over the three repositories.
type Service struct {
	log        *slog.Logger
	contacts   contactRepo
	activities activityRepo
	settings   settingRepo
	now        func() time.Time
}

// NewService creates a new record service instance.
func NewService(
	logger *slog.Logger,
	contacts contactRepo,
	activities activityRepo,
	settings settingRepo,
) *Service {
	return &Service{
		log:        logger.With("service", "record"),
		contacts:   contacts,
		activities: activities,
		settings:   settings,
		now:        time.Now,
	}
}

// timestamp returns the current time as an RFC 3339 UTC string with
// nanosecond precision. Saves issued in quick succession must stamp
// distinct, increasing lastModified values, so whole-second formatting
// is not enough here.
func (s *Service) timestamp() string {
	return s.now().UTC().Format(time.RFC3339Nano)
}
