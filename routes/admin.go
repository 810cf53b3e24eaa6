package routes

import (
	productcontroller "github.com/Jgaps7/store316/controllers/product"
	"github.com/Jgaps7/store316/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints behind the session
// cookie check. Every mutating entry point runs the same authorization
// check; nothing relies on the dashboard hiding buttons.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin)
	{
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productcontroller.GetAdminProducts(db))
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.POST("/merge", productcontroller.MergeProducts(db))
			productAdmin.POST("/import-csv", productcontroller.ImportProductsFromCSV(db))
			productAdmin.GET("/export", productcontroller.ExportProductsToExcel(db))
		}

		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.GET("", productcontroller.GetAllCategories(db))
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		adminGroup.PUT("/settings/global-discount", productcontroller.SetGlobalDiscount(db))
	}
}
