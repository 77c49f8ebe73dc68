package handler

import (
	"net/http"

	"quicknotes/dto"
	"quicknotes/model"
	"quicknotes/usecase"
	"quicknotes/utils"

	"github.com/gin-gonic/gin"
)

type TagsHandler struct {
	tags *usecase.TagService
}

func NewTagsHandler(tags *usecase.TagService) *TagsHandler {
	return &TagsHandler{tags: tags}
}

func (h *TagsHandler) ListTags(c *gin.Context) {
	tags, err := h.tags.ListTags(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTagResponses(tags))
}

func (h *TagsHandler) GetTag(c *gin.Context) {
	tagID, ok := parseID(c)
	if !ok {
		return
	}

	tag, err := h.tags.GetTag(c.Request.Context(), tagID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTagResponse(tag))
}

func (h *TagsHandler) CreateTag(c *gin.Context) {
	var req model.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	tag, err := h.tags.CreateTag(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToTagResponse(tag))
}

func (h *TagsHandler) RenameTag(c *gin.Context) {
	tagID, ok := parseID(c)
	if !ok {
		return
	}

	var req model.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	tag, err := h.tags.RenameTag(c.Request.Context(), tagID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTagResponse(tag))
}

// DeleteTag detaches the tag from every note that carries it; notes are
// never cascade-deleted.
func (h *TagsHandler) DeleteTag(c *gin.Context) {
	tagID, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.tags.DeleteTag(c.Request.Context(), tagID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
