package routes

import (
	"github.com/Jgaps7/store316/auth"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public catalog,
// cart, auth and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, attempts auth.AttemptStore) {
	// Public auth (login lockout, guest ids)
	SetupAuthRoutes(r, attempts)

	// Public storefront
	SetupPublicRoutes(r, db)

	// Guest cart + checkout handoff
	SetupCartRoutes(r, db)

	// Admin dashboard (session-cookie protected)
	SetupAdminRoutes(r, db)
}
