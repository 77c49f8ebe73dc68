package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"quicknotes/dto"
	"quicknotes/middleware"
	"quicknotes/model"
	"quicknotes/repository"
	"quicknotes/services"
	"quicknotes/usecase"
	"quicknotes/utils"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.InitValidator()
	services.InitJWT("handler-test-secret")
}

type handlerEnv struct {
	router *gin.Engine
	users  *usecase.UserService
	notes  *usecase.NoteService
	tags   *usecase.TagService
	images *repository.ImagesRepo
}

// newHandlerEnv wires the full routing table, with real auth middleware,
// over an in-memory database. No rate limiter, same as running without
// redis.
func newHandlerEnv(t *testing.T) *handlerEnv {
	t.Helper()

	db, err := repository.Open(":memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	usersRepo := repository.GetUsersRepo(db)
	notesRepo := repository.GetNotesRepo(db)
	tagsRepo := repository.GetTagsRepo(db)
	imagesRepo := repository.GetImagesRepo(db)

	userService := &usecase.UserService{UsersRepo: usersRepo}
	noteService := &usecase.NoteService{NotesRepo: notesRepo}
	tagService := &usecase.TagService{TagsRepo: tagsRepo}

	usersHandler := NewUsersHandler(userService)
	notesHandler := NewNotesHandler(noteService)
	tagsHandler := NewTagsHandler(tagService)
	tokenHandler := NewTokenHandler(userService, nil, 10*time.Minute)
	uploadsHandler := NewUploadsHandler(imagesRepo, t.TempDir(), "/uploads")
	statsHandler := NewStatsHandler(usersRepo, notesRepo, tagsRepo)

	router := gin.New()
	router.GET("/auth/token", tokenHandler.IssueToken)
	router.POST("/users", usersHandler.Register)
	router.GET("/users", usersHandler.ListUsers)
	router.GET("/users/:id", usersHandler.GetUser)
	router.GET("/tags", tagsHandler.ListTags)
	router.GET("/tags/:id", tagsHandler.GetTag)
	router.PUT("/uploads", uploadsHandler.UploadImage)

	protected := router.Group("", middleware.RequireAuth(userService))
	{
		notes := protected.Group("/notes")
		{
			notes.GET("", notesHandler.ListNotes)
			notes.POST("", notesHandler.CreateNote)
			notes.GET("/:id", notesHandler.GetNote)
			notes.PUT("/:id", notesHandler.EditNote)
			notes.DELETE("/:id", notesHandler.DeleteNote)
			notes.PUT("/:id/restore", notesHandler.RestoreNote)
			notes.PUT("/:id/tags", notesHandler.AddTags)
			notes.DELETE("/:id/tags", notesHandler.RemoveTags)
		}

		protected.POST("/tags", tagsHandler.CreateTag)
		protected.PUT("/tags/:id", tagsHandler.RenameTag)
		protected.DELETE("/tags/:id", tagsHandler.DeleteTag)

		admin := protected.Group("", middleware.RequireRole(model.RoleAdmin))
		{
			admin.PUT("/users/:id", usersHandler.RenameUser)
			admin.DELETE("/users/:id", usersHandler.DeleteUser)
			admin.GET("/stats", statsHandler.GetStats)
		}
	}

	return &handlerEnv{router: router, users: userService, notes: noteService, tags: tagService, images: imagesRepo}
}

func (env *handlerEnv) register(t *testing.T, username, password string) *model.User {
	t.Helper()
	user, err := env.users.Register(context.Background(), username, password)
	if err != nil {
		t.Fatalf("Failed to register %s: %v", username, err)
	}
	return user
}

// registerAdmin seeds an admin account directly; the open registration
// endpoint only ever creates simple users.
func (env *handlerEnv) registerAdmin(t *testing.T, username, password string) *model.User {
	t.Helper()
	hash, err := services.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	user := &model.User{Username: username, PasswordHash: hash, Role: model.RoleAdmin, IsStaff: true}
	if err := env.users.UsersRepo.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("Failed to create admin %s: %v", username, err)
	}
	return user
}

func (env *handlerEnv) request(t *testing.T, method, target, body string, auth func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != nil {
		auth(req)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func asUser(username, password string) func(*http.Request) {
	return func(req *http.Request) {
		req.SetBasicAuth(username, password)
	}
}

func asBearer(token string) func(*http.Request) {
	return func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func decodeNote(t *testing.T, w *httptest.ResponseRecorder) dto.NoteResponse {
	t.Helper()
	var note dto.NoteResponse
	if err := json.Unmarshal(w.Body.Bytes(), &note); err != nil {
		t.Fatalf("Failed to decode note response %q: %v", w.Body.String(), err)
	}
	return note
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode error response %q: %v", w.Body.String(), err)
	}
	return body.Error
}
