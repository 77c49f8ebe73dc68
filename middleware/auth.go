package middleware

import (
	"strings"

	"quicknotes/model"
	"quicknotes/services"
	"quicknotes/usecase"
	"quicknotes/utils"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "current_user"

// RequireAuth resolves the request's credential to an acting user and makes
// it available to handlers. Two schemes are accepted: HTTP Basic and a
// Bearer token previously issued by /auth/token. Every failure is the same
// opaque 401.
func RequireAuth(users *usecase.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		switch {
		case strings.HasPrefix(authHeader, "Bearer "):
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			userID, ok := services.VerifyToken(tokenString)
			if !ok {
				utils.TrackAuthAttempt("failure", "token")
				utils.Unauthorized(c, "Missing or invalid credentials")
				c.Abort()
				return
			}
			user, err := users.GetUser(c.Request.Context(), userID)
			if err != nil {
				utils.TrackAuthAttempt("failure", "token")
				utils.Unauthorized(c, "Missing or invalid credentials")
				c.Abort()
				return
			}
			utils.TrackAuthAttempt("success", "token")
			setCurrentUser(c, user)

		case strings.HasPrefix(authHeader, "Basic "):
			username, password, ok := c.Request.BasicAuth()
			if !ok {
				utils.Unauthorized(c, "Missing or invalid credentials")
				c.Abort()
				return
			}
			user, err := users.Authenticate(c.Request.Context(), username, password)
			if err != nil {
				utils.Unauthorized(c, "Missing or invalid credentials")
				c.Abort()
				return
			}
			setCurrentUser(c, user)

		default:
			utils.Unauthorized(c, "Missing or invalid credentials")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireRole restricts access to a role, exact match. Must run after
// RequireAuth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			utils.Unauthorized(c, "Missing or invalid credentials")
			c.Abort()
			return
		}
		if user.Role != role {
			utils.Forbidden(c, "Forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}

func setCurrentUser(c *gin.Context, user *model.User) {
	c.Set(currentUserKey, user)
	c.Set("user_id", user.ID)
	c.Set("user_role", user.Role)
}

// CurrentUser returns the acting user resolved by RequireAuth, or nil.
func CurrentUser(c *gin.Context) *model.User {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil
	}
	user, _ := value.(*model.User)
	return user
}

// SetCurrentUser injects an acting user directly, for tests that bypass
// RequireAuth.
func SetCurrentUser(c *gin.Context, user *model.User) {
	setCurrentUser(c, user)
}
