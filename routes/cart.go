package routes

import (
	cartControllers "github.com/Jgaps7/store316/controllers/cart"
	checkoutControllers "github.com/Jgaps7/store316/controllers/checkout"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCartRoutes registers the guest cart endpoints. Carts are keyed by the
// guest_id minted at /auth/guest.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", cartControllers.GetCart(db))
		cartGroup.POST("/items", cartControllers.AddItem(db))
		cartGroup.PUT("/items", cartControllers.SetQuantity(db))
		cartGroup.DELETE("/items/:product_id", cartControllers.RemoveItem(db))
		cartGroup.DELETE("", cartControllers.ClearCart(db))
		cartGroup.POST("/panel", cartControllers.SetPanel(db))
		cartGroup.GET("/checkout", checkoutControllers.GetCheckoutLink(db))
	}
}
