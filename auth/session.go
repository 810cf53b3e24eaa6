package auth

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// SessionCookie carries the encrypted admin session.
	SessionCookie = "store316_session"
	// SessionTTL matches the original seven-day admin session.
	SessionTTL = 7 * 24 * time.Hour
)

type loginInput struct {
	Password string `json:"password" form:"password"`
}

// Login checks the shared admin password and, on success, sets the session
// cookie. Failures feed the injected attempt store; five consecutive
// failures lock the client out for the cooldown window.
func Login(attempts AttemptStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := c.ClientIP()

		if remaining, err := attempts.LockedFor(c.Request.Context(), clientID); err == nil && remaining > 0 {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":            "Too many failed attempts. Try again later.",
				"retry_after_secs": int(remaining.Seconds()) + 1,
			})
			return
		}

		var input loginInput
		if err := c.ShouldBind(&input); err != nil || input.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
			return
		}

		adminPassword := os.Getenv("ADMIN_PASSWORD")
		if adminPassword == "" || input.Password != adminPassword {
			count, _ := attempts.RecordFailure(c.Request.Context(), clientID)
			if count >= MaxLoginAttempts {
				c.JSON(http.StatusTooManyRequests, gin.H{
					"error":            "Too many failed attempts. Try again later.",
					"retry_after_secs": int(LockoutWindow.Seconds()),
				})
				return
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect admin password. Access denied."})
			return
		}

		_ = attempts.Reset(c.Request.Context(), clientID)

		token, err := issueSessionToken()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		setSessionCookie(c, token, int(SessionTTL.Seconds()))
		c.JSON(http.StatusOK, gin.H{"message": "Logged in", "is_admin": true})
	}
}

// Logout destroys the session cookie.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		setSessionCookie(c, "", -1)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

func issueSessionToken() (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET is not set")
	}
	claims := jwt.MapClaims{
		"is_logged_in": true,
		"is_admin":     true,
		"exp":          time.Now().Add(SessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	secure := os.Getenv("GIN_MODE") == "release"
	c.SetCookie(SessionCookie, value, maxAge, "/", "", secure, true)
}
