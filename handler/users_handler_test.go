package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"quicknotes/dto"
)

func TestRegisterEndpoint(t *testing.T) {
	env := newHandlerEnv(t)

	w := env.request(t, http.MethodPost, "/users", `{"username":"alice","password":"pass12!!"}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var user dto.UserResponse
	if err := json.Unmarshal(w.Body.Bytes(), &user); err != nil {
		t.Fatalf("Failed to decode user: %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("Expected alice, got %s", user.Username)
	}

	tests := []struct {
		name string
		body string
	}{
		{"username too short", `{"username":"al","password":"pass12!!"}`},
		{"password too weak", `{"username":"carol","password":"aaaaaa"}`},
		{"missing password", `{"username":"carol"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.request(t, http.MethodPost, "/users", tt.body, nil)
			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}

	// Taken username
	w = env.request(t, http.MethodPost, "/users", `{"username":"alice","password":"pass12!!"}`, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for duplicate username, got %d", w.Code)
	}
}

func TestAdminRoutes(t *testing.T) {
	env := newHandlerEnv(t)
	alice := env.register(t, "alice", "pass12!!")
	env.registerAdmin(t, "root", "admin9!!")
	asAlice := asUser("alice", "pass12!!")
	asAdmin := asUser("root", "admin9!!")

	userURL := fmt.Sprintf("/users/%d", alice.ID)

	// Simple users cannot manage accounts
	w := env.request(t, http.MethodPut, userURL, `{"username":"hacked"}`, asAlice)
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected 403 for simple user, got %d", w.Code)
	}

	w = env.request(t, http.MethodPut, userURL, `{"username":"alice2"}`, asAdmin)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var user dto.UserResponse
	if err := json.Unmarshal(w.Body.Bytes(), &user); err != nil {
		t.Fatalf("Failed to decode user: %v", err)
	}
	if user.Username != "alice2" {
		t.Errorf("Expected alice2, got %s", user.Username)
	}

	w = env.request(t, http.MethodDelete, userURL, "", asAdmin)
	if w.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d: %s", w.Code, w.Body.String())
	}

	w = env.request(t, http.MethodGet, userURL, "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 after delete, got %d", w.Code)
	}
}
