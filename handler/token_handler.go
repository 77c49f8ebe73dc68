package handler

import (
	"log"
	"net/http"
	"time"

	"quicknotes/services"
	"quicknotes/usecase"
	"quicknotes/utils"

	"github.com/gin-gonic/gin"
	"github.com/mileusna/useragent"
)

type TokenHandler struct {
	users    *usecase.UserService
	limiter  *services.LoginLimiter
	tokenTTL time.Duration
}

func NewTokenHandler(users *usecase.UserService, limiter *services.LoginLimiter, tokenTTL time.Duration) *TokenHandler {
	return &TokenHandler{users: users, limiter: limiter, tokenTTL: tokenTTL}
}

// IssueToken exchanges Basic credentials for a short-lived bearer token.
// Verification of the issued token is stateless; nothing is stored
// server-side.
func (h *TokenHandler) IssueToken(c *gin.Context) {
	username, password, ok := c.Request.BasicAuth()
	if !ok {
		utils.Unauthorized(c, "Missing or invalid credentials")
		return
	}

	if !h.limiter.Allow(c.Request.Context(), username) {
		utils.TooManyRequests(c, "Too many login attempts")
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		respondError(c, err)
		return
	}
	h.limiter.Reset(c.Request.Context(), username)

	token, err := services.GenerateToken(user.ID, h.tokenTTL)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}

	ua := useragent.Parse(c.Request.UserAgent())
	log.Printf("token issued: user=%s client=%s/%s ip=%s", user.Username, ua.Name, ua.OS, c.ClientIP())

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_in": int64(h.tokenTTL.Seconds()),
	})
}
