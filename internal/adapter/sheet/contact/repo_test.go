package contact_test

import (
	"context"
	"errors"
	"testing"

	"github.com/contactdesk/backend/internal/adapter/sheet"
	"github.com/contactdesk/backend/internal/adapter/sheet/contact"
	"github.com/contactdesk/backend/internal/domain"
)

func newRepo(rows ...[]string) *contact.Repo {
	src := sheet.NewMemorySource(sheet.Contacts, rows...)
	return contact.New(sheet.NewTable(sheet.Contacts, src))
}

func buildContact(id string) domain.Contact {
	return domain.Contact{
		ID:             id,
		Type:           domain.ContactTypeIndividual,
		Name:           "Ada Lovelace",
		Email:          "ada@example.com",
		Status:         "New",
		Score:          42.5,
		ScoreBreakdown: map[string]float64{"seniority": 30},
		Tags:           []string{"vip"},
		DateAdded:      "2026-01-10T09:00:00Z",
		LastModified:   "2026-01-10T09:00:00Z",
	}
}

func TestRepo_Save_ThenGetByID(t *testing.T) {
	t.Parallel()
	repo := newRepo()
	ctx := context.Background()

	c := buildContact("c1")
	created, err := repo.Save(ctx, c)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !created {
		t.Error("expected created=true for new contact")
	}

	got, err := repo.GetByID(ctx, "c1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Ada Lovelace" {
		t.Errorf("Name mismatch: got %q", got.Name)
	}
	if got.Score != 42.5 {
		t.Errorf("Score mismatch: got %v", got.Score)
	}
	if got.ScoreBreakdown["seniority"] != 30 {
		t.Errorf("ScoreBreakdown mismatch: got %v", got.ScoreBreakdown)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "vip" {
		t.Errorf("Tags mismatch: got %v", got.Tags)
	}
}

func TestRepo_Save_Overwrite(t *testing.T) {
	t.Parallel()
	repo := newRepo()
	ctx := context.Background()

	c := buildContact("c1")
	if _, err := repo.Save(ctx, c); err != nil {
		t.Fatalf("Save: %v", err)
	}

	c.Status = "Contacted"
	created, err := repo.Save(ctx, c)
	if err != nil {
		t.Fatalf("Save overwrite: %v", err)
	}
	if created {
		t.Error("expected created=false for existing contact")
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(all))
	}
	if all[0].Status != "Contacted" {
		t.Errorf("Status mismatch: got %q", all[0].Status)
	}
}

func TestRepo_List_PreservesAppendOrder(t *testing.T) {
	t.Parallel()
	repo := newRepo()
	ctx := context.Background()

	for _, id := range []string{"c1", "c2", "c3"} {
		if _, err := repo.Save(ctx, buildContact(id)); err != nil {
			t.Fatalf("Save %s: %v", id, err)
		}
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 contacts, got %d", len(got))
	}
	for i, id := range []string{"c1", "c2", "c3"} {
		if got[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	repo := newRepo()

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestRepo_DeleteByID(t *testing.T) {
	t.Parallel()
	repo := newRepo()
	ctx := context.Background()

	if _, err := repo.Save(ctx, buildContact("c1")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := repo.DeleteByID(ctx, "c1"); err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}

	err := repo.DeleteByID(ctx, "c1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got: %v", err)
	}
}

func TestRepo_List_LegacyRows(t *testing.T) {
	t.Parallel()
	// A hand-edited short row with a malformed composite cell must still load.
	repo := newRepo([]string{"c9", "", "Individual", "Grace Hopper", "", "", "", "", "", "", "", "", "", "", "", "bad-number", "{broken"})

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(got))
	}
	if got[0].Name != "Grace Hopper" {
		t.Errorf("Name mismatch: got %q", got[0].Name)
	}
	if got[0].Score != 0 {
		t.Errorf("malformed score should decode to 0, got %v", got[0].Score)
	}
	if got[0].ScoreBreakdown == nil || len(got[0].ScoreBreakdown) != 0 {
		t.Errorf("malformed breakdown should decode to empty map, got %v", got[0].ScoreBreakdown)
	}
	if got[0].Tags == nil || len(got[0].Tags) != 0 {
		t.Errorf("missing tags cell should decode to empty slice, got %v", got[0].Tags)
	}
}
