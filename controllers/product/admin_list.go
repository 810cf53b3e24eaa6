package productcontroller

import (
	"net/http"

	"github.com/Jgaps7/store316/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAdminProducts lists the full inventory (active or not), newest first,
// then applies the in-memory search/category filter. The inventory is small
// enough that filtering in memory keeps the predicate identical to the one
// the dashboard uses.
// GET /admin/products?search=&category_id=
func GetAdminProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Category").
			Order("created_at DESC, id DESC").
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		filtered := models.FilterProducts(products, c.Query("search"), c.Query("category_id"))
		for i := range filtered {
			rewriteImages(&filtered[i])
		}
		c.JSON(http.StatusOK, filtered)
	}
}
