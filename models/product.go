package models

import (
	"strings"
	"time"
)

type Product struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"not null" json:"name"`
	Description     string    `json:"description"`
	Price           float64   `gorm:"not null" json:"price"`
	ImageURLs       []string  `gorm:"serializer:json" json:"image_urls"` // index 0 is the cover image
	Sizes           []string  `gorm:"serializer:json" json:"sizes"`
	DiscountPercent float64   `json:"discount_percent"`
	CategoryID      *string   `json:"category_id"`
	Category        *Category `gorm:"foreignKey:CategoryID" json:"categories,omitempty"`
	IsActive        bool      `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Category struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"unique;not null" json:"name"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
}

// FilterProducts applies the admin inventory filter: case-insensitive
// substring match on the product name AND category equality when a category
// is selected. Empty search plus empty/"all" category returns the input
// unchanged.
func FilterProducts(products []Product, search, categoryID string) []Product {
	search = strings.ToLower(strings.TrimSpace(search))
	allCategories := categoryID == "" || categoryID == "all"
	if search == "" && allCategories {
		return products
	}

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if !allCategories {
			if p.CategoryID == nil || *p.CategoryID != categoryID {
				continue
			}
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// MergeImageLists unions image lists preserving first-seen order, dropping
// duplicates and empty entries. Used by the listing merge to carry every
// secondary's photos onto the surviving product.
func MergeImageLists(lists ...[]string) []string {
	seen := make(map[string]bool)
	var merged []string
	for _, list := range lists {
		for _, url := range list {
			url = strings.TrimSpace(url)
			if url == "" || seen[url] {
				continue
			}
			seen[url] = true
			merged = append(merged, url)
		}
	}
	return merged
}

// NormalizeDiscount clamps a discount percent into the 0-100 range.
func NormalizeDiscount(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
