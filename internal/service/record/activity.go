package record

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/contactdesk/backend/internal/domain"
)

// SaveActivity inserts or updates an activity by identifier. A missing
// identifier is generated server-side; a missing date defaults to now.
func (s *Service) SaveActivity(ctx context.Context, a domain.Activity) (*SaveResult, error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Date == "" {
		a.Date = s.timestamp()
	}

	created, err := s.activities.Save(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("record.SaveActivity: %w", err)
	}

	action := "updated"
	if created {
		action = "created"
	}

	s.log.InfoContext(ctx, "activity saved",
		slog.String("activity_id", a.ID),
		slog.String("contact_id", a.ContactID),
		slog.String("action", action),
	)

	return &SaveResult{ID: a.ID, Action: action}, nil
}

// DeleteActivity removes a single activity by identifier.
func (s *Service) DeleteActivity(ctx context.Context, id string) (*DeleteResult, error) {
	if err := s.activities.DeleteByID(ctx, id); err != nil {
		return nil, fmt.Errorf("record.DeleteActivity: %w", err)
	}

	s.log.InfoContext(ctx, "activity deleted", slog.String("activity_id", id))

	return &DeleteResult{ID: id, Action: "deleted"}, nil
}

// ListAll returns every contact and every activity, the full-scan read used
// by the read entry point.
func (s *Service) ListAll(ctx context.Context) ([]domain.Contact, []domain.Activity, error) {
	contacts, err := s.contacts.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("record.ListAll: %w", err)
	}
	activities, err := s.activities.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("record.ListAll: %w", err)
	}
	return contacts, activities, nil
}
