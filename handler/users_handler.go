package handler

import (
	"net/http"

	"quicknotes/dto"
	"quicknotes/model"
	"quicknotes/usecase"
	"quicknotes/utils"

	"github.com/gin-gonic/gin"
)

type UsersHandler struct {
	users *usecase.UserService
}

func NewUsersHandler(users *usecase.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// Register creates a simple_user account. Open endpoint.
func (h *UsersHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *UsersHandler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

func (h *UsersHandler) GetUser(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.users.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// RenameUser is admin-only; the route is gated by RequireRole.
func (h *UsersHandler) RenameUser(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		return
	}

	var req model.RenameUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.users.RenameUser(c.Request.Context(), userID, req.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteUser is admin-only; the user's notes are removed with the account.
func (h *UsersHandler) DeleteUser(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.users.DeleteUser(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
