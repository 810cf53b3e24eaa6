package productcontroller

import (
	"net/http"

	"github.com/Jgaps7/store316/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MergeInput struct {
	ProductIDs []string `json:"product_ids" binding:"required"`
}

// MergeProducts consolidates duplicate listings. The main product is the
// first of the selection in inventory-list order (created_at DESC, id DESC) —
// not simply the first id in the request body — and it absorbs the union of
// every selected product's images; the rest are deleted. Update and deletes
// run in one transaction, so a failed merge changes nothing.
// POST /admin/products/merge
func MergeProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input MergeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if len(input.ProductIDs) < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Select at least two products to merge"})
			return
		}

		var selected []models.Product
		if err := db.Where("id IN ?", input.ProductIDs).
			Order("created_at DESC, id DESC").
			Find(&selected).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		if len(selected) != len(input.ProductIDs) {
			c.JSON(http.StatusNotFound, gin.H{"error": "One or more selected products no longer exist"})
			return
		}

		main := selected[0]
		secondaries := selected[1:]

		imageLists := make([][]string, 0, len(selected))
		imageLists = append(imageLists, main.ImageURLs)
		for _, s := range secondaries {
			imageLists = append(imageLists, s.ImageURLs)
		}
		merged := models.MergeImageLists(imageLists...)

		deletedIDs := make([]string, 0, len(secondaries))
		err := db.Transaction(func(tx *gorm.DB) error {
			// The main product keeps its own name, price, description,
			// category, sizes and discount; only the image list changes.
			main.ImageURLs = merged
			if err := tx.Save(&main).Error; err != nil {
				return err
			}
			for _, s := range secondaries {
				if err := tx.Delete(&models.Product{}, "id = ?", s.ID).Error; err != nil {
					return err
				}
				deletedIDs = append(deletedIDs, s.ID)
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to merge products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"main_id":     main.ID,
			"image_count": len(merged),
			"deleted_ids": deletedIDs,
			"refresh":     true,
		})
	}
}
