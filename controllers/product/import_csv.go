package productcontroller

import (
	"fmt"
	"net/http"

	"github.com/Jgaps7/store316/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ImportLogEntry is one human-readable line of the import report.
type ImportLogEntry struct {
	Type    string `json:"type"` // "info", "success" or "error"
	Message string `json:"message"`
}

// ImportProductsFromCSV bulk-creates products from an uploaded CSV. Rows
// that fail category resolution are reported and skipped; every resolved row
// goes into a single bulk insert, so the valid subset is all-or-nothing.
// POST /admin/products/import-csv
func ImportProductsFromCSV(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "CSV file is required"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open CSV file"})
			return
		}
		defer file.Close()

		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		toInsert, rowErrors, err := ParseProductsCSV(file, CategoryNameMap(categories))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		log := []ImportLogEntry{{Type: "info", Message: "Sincronizando categorias e preparando dados..."}}

		if len(toInsert) > 0 {
			if err := db.Create(&toInsert).Error; err != nil {
				// Terminal storage failure replaces the log wholesale; none
				// of the resolved rows were persisted.
				c.JSON(http.StatusOK, gin.H{
					"log":           []ImportLogEntry{{Type: "error", Message: "Erro ao inserir produtos: " + err.Error()}},
					"created_count": 0,
					"error_count":   len(rowErrors),
				})
				return
			}
			log = []ImportLogEntry{{
				Type:    "success",
				Message: fmt.Sprintf("%d itens importados com sucesso.", len(toInsert)),
			}}
		}

		if len(rowErrors) > 0 {
			errorEntries := make([]ImportLogEntry, 0, len(rowErrors))
			for _, msg := range rowErrors {
				errorEntries = append(errorEntries, ImportLogEntry{Type: "error", Message: msg})
			}
			if len(toInsert) == 0 {
				log = errorEntries
			} else {
				// Partial outcome: row errors are reported on top of the
				// success entry.
				log = append(errorEntries, log...)
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"log":           log,
			"created_count": len(toInsert),
			"error_count":   len(rowErrors),
		})
	}
}
