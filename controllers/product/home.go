package productcontroller

import (
	"net/http"

	"github.com/Jgaps7/store316/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type categoryGroup struct {
	Category models.Category  `json:"category"`
	Products []models.Product `json:"products"`
}

// GetHomeGrouped returns, per category, the three newest active products.
// Categories without any active product are omitted.
// GET /home
func GetHomeGrouped(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("name").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		groups := make([]categoryGroup, 0, len(categories))
		for _, cat := range categories {
			var products []models.Product
			if err := db.Preload("Category").
				Where("category_id = ? AND is_active = ?", cat.ID, true).
				Order("created_at DESC").
				Limit(3).
				Find(&products).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
				return
			}
			if len(products) == 0 {
				continue
			}
			for i := range products {
				rewriteImages(&products[i])
			}
			groups = append(groups, categoryGroup{Category: cat, Products: products})
		}

		c.JSON(http.StatusOK, groups)
	}
}
