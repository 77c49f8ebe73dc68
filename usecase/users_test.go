package usecase

import (
	"context"
	"errors"
	"testing"

	"quicknotes/model"
	"quicknotes/repository"
)

func TestRegisterUser(t *testing.T) {
	env := newTestEnv(t)

	user := env.mustRegister(t, "alice")
	if user.ID == 0 {
		t.Error("Expected user id to be populated")
	}
	if user.Role != model.RoleSimpleUser {
		t.Errorf("Expected role %s, got %s", model.RoleSimpleUser, user.Role)
	}
	if user.PasswordHash == "pass12!!" {
		t.Error("Expected password to be hashed")
	}

	if _, err := env.users.Register(context.Background(), "alice", "other7!!"); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("Expected ErrAlreadyExists for taken username, got %v", err)
	}
}

func TestAuthenticateOpaqueFailure(t *testing.T) {
	env := newTestEnv(t)
	env.mustRegister(t, "alice")

	user, err := env.users.Authenticate(context.Background(), "alice", "pass12!!")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("Expected alice, got %s", user.Username)
	}

	// Wrong password and unknown username are indistinguishable
	_, wrongPass := env.users.Authenticate(context.Background(), "alice", "nope")
	_, unknownUser := env.users.Authenticate(context.Background(), "mallory", "pass12!!")
	if !errors.Is(wrongPass, ErrUnauthenticated) {
		t.Errorf("Expected ErrUnauthenticated for wrong password, got %v", wrongPass)
	}
	if !errors.Is(unknownUser, ErrUnauthenticated) {
		t.Errorf("Expected ErrUnauthenticated for unknown user, got %v", unknownUser)
	}
	if !errors.Is(wrongPass, unknownUser) {
		t.Error("Expected identical error for both failure modes")
	}
}

func TestRenameUser(t *testing.T) {
	env := newTestEnv(t)
	alice := env.mustRegister(t, "alice")
	env.mustRegister(t, "bob")

	renamed, err := env.users.RenameUser(context.Background(), alice.ID, "alice2")
	if err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	if renamed.Username != "alice2" {
		t.Errorf("Expected alice2, got %s", renamed.Username)
	}

	if _, err := env.users.RenameUser(context.Background(), alice.ID, "bob"); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("Expected ErrAlreadyExists for taken username, got %v", err)
	}
	if _, err := env.users.RenameUser(context.Background(), 9999, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for missing user, got %v", err)
	}
}

func TestDeleteUserCascadesNotes(t *testing.T) {
	env := newTestEnv(t)
	alice := env.mustRegister(t, "alice")
	note := env.mustCreateNote(t, alice, "goes with me", true)

	if err := env.users.DeleteUser(context.Background(), alice.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := env.users.GetUser(context.Background(), alice.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for deleted user, got %v", err)
	}
	if _, err := env.notes.NotesRepo.GetNote(context.Background(), note.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Expected note removed by cascade, got %v", err)
	}

	if err := env.users.DeleteUser(context.Background(), alice.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}
}
