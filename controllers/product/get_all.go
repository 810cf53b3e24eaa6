package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/Jgaps7/store316/models"
	"github.com/Jgaps7/store316/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// rewriteImages swaps Google Drive share links for direct-view URLs before a
// product leaves the API.
func rewriteImages(p *models.Product) {
	for i, u := range p.ImageURLs {
		p.ImageURLs[i] = utils.DirectDriveLink(u)
	}
}

// GetPublicProducts returns the active storefront catalog, newest first.
// GET /products?search=&category_id=&min_price=&max_price=
func GetPublicProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		categoryID := c.Query("category_id")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")

		query := db.Model(&models.Product{}).
			Preload("Category").
			Where("is_active = ?", true)

		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("name ILIKE ? OR description ILIKE ?", likePattern, likePattern)
		}
		if categoryID != "" {
			query = query.Where("category_id = ?", categoryID)
		}
		if minPriceStr != "" {
			if mp, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
				query = query.Where("price >= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
		}
		if maxPriceStr != "" {
			if mp, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
				query = query.Where("price <= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
		}

		var products []models.Product
		if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		for i := range products {
			rewriteImages(&products[i])
		}
		c.JSON(http.StatusOK, products)
	}
}
