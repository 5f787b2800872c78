package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/KoruApps/courseboard-go/internal/auth"
	"github.com/KoruApps/courseboard-go/internal/models"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token       string    `json:"token"`
	UserID      uuid.UUID `json:"user_id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	IsAdmin     bool      `json:"is_admin"`
}

// UserDirectory resolves login usernames to accounts.
type UserDirectory interface {
	FindByUsername(username string) (models.User, bool)
}

// Login authenticates a board user and returns a JWT token
func Login(jwtService *auth.JWTService, users UserDirectory) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
			return
		}

		// Normalize username to lowercase
		username := strings.ToLower(strings.TrimSpace(req.Username))

		user, ok := users.FindByUsername(username)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}

		if !user.LoginEnabled {
			c.JSON(http.StatusForbidden, gin.H{"error": "Login is disabled for this user"})
			return
		}

		if user.PasswordHash == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Password authentication not configured for this user"})
			return
		}

		// Verify password
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}

		// Generate JWT token
		token, err := jwtService.GenerateToken(user.ID, user.Username, user.DisplayName, user.IsAdmin)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(http.StatusOK, LoginResponse{
			Token:       token,
			UserID:      user.ID,
			Username:    user.Username,
			DisplayName: user.DisplayName,
			IsAdmin:     user.IsAdmin,
		})
	}
}

// StaticUserDirectory is an in-memory UserDirectory for the demo server.
type StaticUserDirectory struct {
	byUsername map[string]models.User
}

// NewStaticUserDirectory indexes the given accounts by username.
func NewStaticUserDirectory(users []models.User) *StaticUserDirectory {
	d := &StaticUserDirectory{byUsername: make(map[string]models.User, len(users))}
	for _, u := range users {
		d.byUsername[strings.ToLower(u.Username)] = u
	}
	return d
}

func (d *StaticUserDirectory) FindByUsername(username string) (models.User, bool) {
	u, ok := d.byUsername[strings.ToLower(username)]
	return u, ok
}
