package productcontroller

import (
	"net/http"
	"strings"

	"github.com/Jgaps7/store316/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateProductInput struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           *float64 `json:"price"`
	CategoryID      string   `json:"category_id"`
	ImageURLs       []string `json:"image_urls"`
	Sizes           []string `json:"sizes"`
	DiscountPercent float64  `json:"discount_percent"`
	IsActive        *bool    `json:"is_active"`
}

func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// CreateProduct creates a catalog entry. Name, price and category are
// required; everything else defaults.
// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		input.Name = strings.TrimSpace(input.Name)
		if input.Name == "" || input.Price == nil || input.CategoryID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, price and category_id are required"})
			return
		}
		if *input.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
			return
		}

		var category models.Category
		if err := db.First(&category, "id = ?", input.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
			return
		}

		active := true
		if input.IsActive != nil {
			active = *input.IsActive
		}

		product := models.Product{
			ID:              uuid.NewString(),
			Name:            input.Name,
			Description:     input.Description,
			Price:           *input.Price,
			CategoryID:      &category.ID,
			ImageURLs:       cleanList(input.ImageURLs),
			Sizes:           cleanList(input.Sizes),
			DiscountPercent: models.NormalizeDiscount(input.DiscountPercent),
			IsActive:        active,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
