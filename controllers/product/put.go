package productcontroller

import (
	"net/http"
	"strings"

	"github.com/Jgaps7/store316/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateProductInput struct {
	Name            *string   `json:"name,omitempty"`
	Description     *string   `json:"description,omitempty"`
	Price           *float64  `json:"price,omitempty"`
	CategoryID      *string   `json:"category_id,omitempty"`
	ImageURLs       *[]string `json:"image_urls,omitempty"`
	Sizes           *[]string `json:"sizes,omitempty"`
	DiscountPercent *float64  `json:"discount_percent,omitempty"`
	IsActive        *bool     `json:"is_active,omitempty"`
}

// UpdateProduct applies a partial update to an existing product. There is no
// version check: concurrent admin edits are last-write-wins.
// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Name != nil {
			name := strings.TrimSpace(*input.Name)
			if name == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "name must not be empty"})
				return
			}
			product.Name = name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Price != nil {
			if *input.Price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
				return
			}
			product.Price = *input.Price
		}
		if input.CategoryID != nil {
			if *input.CategoryID == "" {
				product.CategoryID = nil
			} else {
				var category models.Category
				if err := db.First(&category, "id = ?", *input.CategoryID).Error; err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
					return
				}
				product.CategoryID = &category.ID
			}
		}
		if input.ImageURLs != nil {
			product.ImageURLs = cleanList(*input.ImageURLs)
		}
		if input.Sizes != nil {
			product.Sizes = cleanList(*input.Sizes)
		}
		if input.DiscountPercent != nil {
			product.DiscountPercent = models.NormalizeDiscount(*input.DiscountPercent)
		}
		if input.IsActive != nil {
			product.IsActive = *input.IsActive
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
