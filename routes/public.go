package routes

import (
	productcontroller "github.com/Jgaps7/store316/controllers/product"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers the storefront catalog endpoints. No auth:
// this is the public shop window.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/home", productcontroller.GetHomeGrouped(db))
	r.GET("/products", productcontroller.GetPublicProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))
	r.GET("/categories", productcontroller.GetAllCategories(db))
	r.GET("/categories/:slug/products", productcontroller.GetProductsByCategorySlug(db))
	r.GET("/settings/global-discount", productcontroller.GetGlobalDiscount(db))
}
