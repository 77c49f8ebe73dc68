package handler

import (
	"net/http"
	"strconv"

	"quicknotes/dto"
	"quicknotes/middleware"
	"quicknotes/model"
	"quicknotes/usecase"
	"quicknotes/utils"

	"github.com/gin-gonic/gin"
)

type NotesHandler struct {
	notes *usecase.NoteService
}

func NewNotesHandler(notes *usecase.NoteService) *NotesHandler {
	return &NotesHandler{notes: notes}
}

// ListNotes returns the caller's notes, narrowed by the optional query
// filters tag, private, username and archived.
func (h *NotesHandler) ListNotes(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	opts := usecase.NoteListOptions{
		Tag:      c.Query("tag"),
		Username: c.Query("username"),
	}
	if raw, exists := c.GetQuery("private"); exists {
		private, err := strconv.ParseBool(raw)
		if err != nil {
			utils.BadRequest(c, "Invalid private filter")
			return
		}
		opts.Private = &private
	}
	if raw, exists := c.GetQuery("archived"); exists {
		opts.IncludeArchived, _ = strconv.ParseBool(raw)
	}

	notes, err := h.notes.ListNotes(c.Request.Context(), actor, opts)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToNoteResponses(notes))
}

func (h *NotesHandler) GetNote(c *gin.Context) {
	noteID, ok := parseID(c)
	if !ok {
		return
	}

	note, err := h.notes.GetNote(c.Request.Context(), middleware.CurrentUser(c), noteID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToNoteResponse(note))
}

func (h *NotesHandler) CreateNote(c *gin.Context) {
	var req model.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	// Notes are private unless the request says otherwise
	private := true
	if req.Private != nil {
		private = *req.Private
	}

	note, err := h.notes.CreateNote(c.Request.Context(), middleware.CurrentUser(c), req.Text, private)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToNoteResponse(note))
}

func (h *NotesHandler) EditNote(c *gin.Context) {
	noteID, ok := parseID(c)
	if !ok {
		return
	}

	var req model.EditNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note, err := h.notes.EditNote(c.Request.Context(), middleware.CurrentUser(c), noteID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToNoteResponse(note))
}

// DeleteNote archives the note (logical delete); the archived note is
// returned so the caller can still see what it removed.
func (h *NotesHandler) DeleteNote(c *gin.Context) {
	noteID, ok := parseID(c)
	if !ok {
		return
	}

	note, err := h.notes.ArchiveNote(c.Request.Context(), middleware.CurrentUser(c), noteID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToNoteResponse(note))
}

func (h *NotesHandler) RestoreNote(c *gin.Context) {
	noteID, ok := parseID(c)
	if !ok {
		return
	}

	note, err := h.notes.RestoreNote(c.Request.Context(), middleware.CurrentUser(c), noteID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToNoteResponse(note))
}

func (h *NotesHandler) AddTags(c *gin.Context) {
	noteID, ok := parseID(c)
	if !ok {
		return
	}

	var req model.NoteTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note, err := h.notes.AddTags(c.Request.Context(), middleware.CurrentUser(c), noteID, req.Tags)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToNoteResponse(note))
}

func (h *NotesHandler) RemoveTags(c *gin.Context) {
	noteID, ok := parseID(c)
	if !ok {
		return
	}

	var req model.NoteTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note, err := h.notes.RemoveTags(c.Request.Context(), middleware.CurrentUser(c), noteID, req.Tags)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToNoteResponse(note))
}
