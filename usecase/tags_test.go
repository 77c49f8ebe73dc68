package usecase

import (
	"context"
	"errors"
	"testing"
)

func TestCreateTagValidation(t *testing.T) {
	env := newTestEnv(t)

	tag := env.mustCreateTag(t, "work")
	if tag.ID == 0 || tag.Name != "work" {
		t.Errorf("Unexpected tag %+v", tag)
	}

	if _, err := env.tags.CreateTag(context.Background(), "   "); !errors.Is(err, ErrNameRequired) {
		t.Errorf("Expected ErrNameRequired for blank name, got %v", err)
	}
	if _, err := env.tags.CreateTag(context.Background(), "work"); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("Expected ErrAlreadyExists for duplicate name, got %v", err)
	}
}

func TestRenameTag(t *testing.T) {
	env := newTestEnv(t)
	work := env.mustCreateTag(t, "work")
	env.mustCreateTag(t, "home")

	renamed, err := env.tags.RenameTag(context.Background(), work.ID, "office")
	if err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	if renamed.Name != "office" {
		t.Errorf("Expected office, got %s", renamed.Name)
	}

	if _, err := env.tags.RenameTag(context.Background(), work.ID, "home"); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("Expected ErrAlreadyExists for taken name, got %v", err)
	}
	if _, err := env.tags.RenameTag(context.Background(), 9999, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for missing tag, got %v", err)
	}
}

func TestDeleteTagDetachesNotes(t *testing.T) {
	env := newTestEnv(t)
	alice := env.mustRegister(t, "alice")
	note := env.mustCreateNote(t, alice, "tagged", true)
	work := env.mustCreateTag(t, "work")

	if _, err := env.notes.AddTags(context.Background(), alice, note.ID, []int64{work.ID}); err != nil {
		t.Fatalf("AddTags failed: %v", err)
	}

	if err := env.tags.DeleteTag(context.Background(), work.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	// The note survives, the association does not
	current, err := env.notes.GetNote(context.Background(), alice, note.ID)
	if err != nil {
		t.Fatalf("Get after tag delete failed: %v", err)
	}
	if len(current.Tags) != 0 {
		t.Errorf("Expected association removed, got %v", current.Tags)
	}

	if err := env.tags.DeleteTag(context.Background(), work.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}
}
