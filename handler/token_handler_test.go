package handler

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestIssueToken(t *testing.T) {
	env := newHandlerEnv(t)
	env.register(t, "alice", "pass12!!")

	// No credentials at all
	w := env.request(t, http.MethodGet, "/auth/token", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without credentials, got %d", w.Code)
	}

	// Bad password
	w = env.request(t, http.MethodGet, "/auth/token", "", asUser("alice", "wrong"))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for bad password, got %d", w.Code)
	}

	w = env.request(t, http.MethodGet, "/auth/token", "", asUser("alice", "pass12!!"))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Token     string `json:"token"`
		ExpiresIn int64  `json:"expires_in"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode token response: %v", err)
	}
	if body.Token == "" {
		t.Fatal("Expected a token")
	}
	if body.ExpiresIn != 600 {
		t.Errorf("Expected expires_in 600, got %d", body.ExpiresIn)
	}
}

func TestBearerTokenAuthenticates(t *testing.T) {
	env := newHandlerEnv(t)
	env.register(t, "alice", "pass12!!")

	w := env.request(t, http.MethodGet, "/auth/token", "", asUser("alice", "pass12!!"))
	if w.Code != http.StatusOK {
		t.Fatalf("Token issuance failed: %d %s", w.Code, w.Body.String())
	}
	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode token response: %v", err)
	}

	// The token stands in for the password on protected routes
	w = env.request(t, http.MethodPost, "/notes", `{"text":"via token"}`, asBearer(body.Token))
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201 with bearer token, got %d: %s", w.Code, w.Body.String())
	}
	note := decodeNote(t, w)
	if note.Author == nil || note.Author.Username != "alice" {
		t.Errorf("Expected author alice, got %+v", note.Author)
	}

	w = env.request(t, http.MethodGet, "/notes", "", asBearer("not-a-token"))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for garbage token, got %d", w.Code)
	}
}
