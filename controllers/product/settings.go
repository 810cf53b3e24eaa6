package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/Jgaps7/store316/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GlobalDiscountInput struct {
	Percent *float64 `json:"percent" binding:"required"`
}

// GetGlobalDiscount exposes the store-wide discount override. The override
// never mutates per-product discounts; it only wins over them for display
// and checkout pricing while set.
// GET /settings/global-discount
func GetGlobalDiscount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"percent": models.GetGlobalDiscount(db)})
	}
}

// SetGlobalDiscount sets the override; zero clears it.
// PUT /admin/settings/global-discount
func SetGlobalDiscount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input GlobalDiscountInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "percent is required"})
			return
		}

		pct := models.NormalizeDiscount(*input.Percent)
		setting := models.Setting{
			Key:   models.SettingGlobalDiscount,
			Value: strconv.FormatFloat(pct, 'f', -1, 64),
		}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).Create(&setting).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save setting"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"percent": pct})
	}
}
