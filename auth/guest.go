package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
)

// POST /auth/guest
// Mints an anonymous guest id. The id keys the guest's server-side cart; no
// account or credential is attached to it.
func CreateGuest() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"guest_id": "guest_" + randomHex(16)})
	}
}

func randomHex(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "fallback_guest"
	}
	return hex.EncodeToString(bytes)
}
