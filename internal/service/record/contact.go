package record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/contactdesk/backend/internal/domain"
)

// SaveResult reports the identifier and the outcome of a save.
type SaveResult struct {
	ID     string `json:"id"`
	Action string `json:"action"`
}

// DeleteResult reports the outcome of a delete. For contacts it includes the
// number of cascade-deleted activities; Warning is set when the cascade
// failed after the primary delete succeeded.
type DeleteResult struct {
	ID                string `json:"id"`
	Action            string `json:"action"`
	ActivitiesDeleted int    `json:"activitiesDeleted,omitempty"`
	Warning           string `json:"warning,omitempty"`
}

// BulkUpdateInput names the contacts to patch and the fields to apply.
type BulkUpdateInput struct {
	ContactIDs []string       `json:"contactIds"`
	Updates    map[string]any `json:"updates"`
}

// BulkUpdateItem is the per-contact outcome of a bulk update.
type BulkUpdateItem struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
	Action  string `json:"action,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SaveContact inserts or updates a contact by identifier. A missing
// identifier is generated server-side. LastModified is set on every save;
// DateAdded only when the input carries none (first save).
func (s *Service) SaveContact(ctx context.Context, c domain.Contact) (*SaveResult, error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}

	now := s.timestamp()
	c.LastModified = now
	if c.DateAdded == "" {
		c.DateAdded = now
	}

	created, err := s.contacts.Save(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("record.SaveContact: %w", err)
	}

	action := "updated"
	if created {
		action = "created"
	}

	s.log.InfoContext(ctx, "contact saved",
		slog.String("contact_id", c.ID),
		slog.String("action", action),
	)

	return &SaveResult{ID: c.ID, Action: action}, nil
}

// DeleteContact removes a contact and cascade-deletes its activities. The
// cascade is best effort: a cascade failure is logged and reported as a
// warning in the result, never rolled into the primary delete.
func (s *Service) DeleteContact(ctx context.Context, id string) (*DeleteResult, error) {
	if err := s.contacts.DeleteByID(ctx, id); err != nil {
		return nil, fmt.Errorf("record.DeleteContact: %w", err)
	}

	result := &DeleteResult{ID: id, Action: "deleted"}

	deleted, err := s.activities.DeleteByContactID(ctx, id)
	if err != nil {
		s.log.WarnContext(ctx, "activity cascade failed",
			slog.String("contact_id", id),
			slog.String("error", err.Error()),
		)
		result.Warning = fmt.Sprintf("contact deleted but activity cleanup failed: %v", err)
		return result, nil
	}
	result.ActivitiesDeleted = deleted

	s.log.InfoContext(ctx, "contact deleted",
		slog.String("contact_id", id),
		slog.Int("activities_deleted", deleted),
	)

	return result, nil
}

// BulkUpdateContacts applies the same shallow patch to each listed contact
// independently: a missing contact yields a per-item failure and the batch
// continues. The identifier itself is immutable and cannot be patched.
func (s *Service) BulkUpdateContacts(ctx context.Context, input BulkUpdateInput) ([]BulkUpdateItem, error) {
	results := make([]BulkUpdateItem, 0, len(input.ContactIDs))

	for _, id := range input.ContactIDs {
		current, err := s.contacts.GetByID(ctx, id)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("record.BulkUpdateContacts: %w", err)
			}
			results = append(results, BulkUpdateItem{
				ID:    id,
				Error: fmt.Sprintf("contact %s: not found", id),
			})
			continue
		}

		patched, err := patchContact(*current, input.Updates)
		if err != nil {
			results = append(results, BulkUpdateItem{ID: id, Error: err.Error()})
			continue
		}

		saved, err := s.SaveContact(ctx, patched)
		if err != nil {
			results = append(results, BulkUpdateItem{ID: id, Error: err.Error()})
			continue
		}
		results = append(results, BulkUpdateItem{ID: id, Success: true, Action: saved.Action})
	}

	return results, nil
}

// patchContact shallow-merges updates onto the contact: patched fields
// overwrite, absent fields are preserved, the identifier never changes.
func patchContact(c domain.Contact, updates map[string]any) (domain.Contact, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return c, fmt.Errorf("encode contact %s: %w", c.ID, err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return c, fmt.Errorf("encode contact %s: %w", c.ID, err)
	}

	for k, v := range updates {
		m[k] = v
	}
	m["id"] = c.ID

	b, err = json.Marshal(m)
	if err != nil {
		return c, fmt.Errorf("patch contact %s: %w", c.ID, err)
	}
	var patched domain.Contact
	if err := json.Unmarshal(b, &patched); err != nil {
		return c, fmt.Errorf("patch contact %s: %w", c.ID, err)
	}
	return patched, nil
}
