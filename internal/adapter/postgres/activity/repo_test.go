package activity_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/contactdesk/backend/internal/adapter/postgres/activity"
	"github.com/contactdesk/backend/internal/adapter/postgres/testhelper"
	"github.com/contactdesk/backend/internal/domain"
)

func newRepo(t *testing.T) *activity.Repo {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return activity.New(pool)
}

func buildActivity(contactID string) domain.Activity {
	return domain.Activity{
		ID:        uuid.NewString(),
		ContactID: contactID,
		Type:      "call",
		Notes:     "intro call",
		Date:      "2026-02-01T10:00:00Z",
		User:      "sam",
		Metadata:  map[string]any{"duration": float64(30)},
	}
}

func TestRepo_Save_Insert(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	a := buildActivity(uuid.NewString())

	created, err := repo.Save(ctx, a)
	if err != nil {
		t.Fatalf("Save: unexpected error: %v", err)
	}
	if !created {
		t.Error("expected created=true for a new activity")
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	var found *domain.Activity
	for i := range got {
		if got[i].ID == a.ID {
			found = &got[i]
			break
		}
	}
	if found == nil {
		t.Fatal("saved activity not present in list")
	}
	if found.User != "sam" {
		t.Errorf("User mismatch: got %q", found.User)
	}
	if found.Metadata["duration"] != float64(30) {
		t.Errorf("Metadata[duration] mismatch: got %v", found.Metadata["duration"])
	}
	if found.Date != a.Date {
		t.Errorf("Date mismatch: got %q, want %q", found.Date, a.Date)
	}
}

func TestRepo_Save_Update(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	a := buildActivity(uuid.NewString())
	if _, err := repo.Save(ctx, a); err != nil {
		t.Fatalf("Save insert: %v", err)
	}

	a.Notes = "follow-up scheduled"
	created, err := repo.Save(ctx, a)
	if err != nil {
		t.Fatalf("Save update: %v", err)
	}
	if created {
		t.Error("expected created=false for an existing activity")
	}
}

func TestRepo_DeleteByID(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	a := buildActivity(uuid.NewString())
	if _, err := repo.Save(ctx, a); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := repo.DeleteByID(ctx, a.ID); err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}

	err := repo.DeleteByID(ctx, a.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got: %v", err)
	}
}

func TestRepo_DeleteByContactID(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	contactID := uuid.NewString()
	for range 3 {
		if _, err := repo.Save(ctx, buildActivity(contactID)); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}
	other := buildActivity(uuid.NewString())
	if _, err := repo.Save(ctx, other); err != nil {
		t.Fatalf("Save other: %v", err)
	}

	n, err := repo.DeleteByContactID(ctx, contactID)
	if err != nil {
		t.Fatalf("DeleteByContactID: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 deleted, got %d", n)
	}

	// Unrelated activity survives.
	if err := repo.DeleteByID(ctx, other.ID); err != nil {
		t.Errorf("unrelated activity should still exist: %v", err)
	}
}

func TestRepo_DeleteByContactID_NoMatches(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	n, err := repo.DeleteByContactID(ctx, uuid.NewString())
	if err != nil {
		t.Fatalf("DeleteByContactID: %v", err)
	}
	if n != 0 {
		t.Errorf("expected 0 deleted, got %d", n)
	}
}
