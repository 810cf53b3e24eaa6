package routes

import (
	"github.com/Jgaps7/store316/auth"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, attempts auth.AttemptStore) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.Login(attempts))
		authGroup.POST("/logout", auth.Logout())
		authGroup.POST("/guest", auth.CreateGuest())
	}
}
