package models

import (
	"strconv"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Setting is a key/value row for store-wide knobs. The only key in use is
// the global discount override.
type Setting struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `json:"value"`
}

const SettingGlobalDiscount = "global_discount"

// GetGlobalDiscount reads the store-wide discount override. Missing or
// unparseable values mean no override.
func GetGlobalDiscount(db *gorm.DB) float64 {
	var s Setting
	if err := db.First(&s, "key = ?", SettingGlobalDiscount).Error; err != nil {
		return 0
	}
	pct, err := strconv.ParseFloat(s.Value, 64)
	if err != nil {
		return 0
	}
	return NormalizeDiscount(pct)
}

// EffectiveDiscount is the global override percent when positive, otherwise
// the item's own discount percent.
func EffectiveDiscount(global, own float64) float64 {
	if global > 0 {
		return global
	}
	return own
}

// DiscountedPrice applies a discount percent to a unit price, rounded to
// cents.
func DiscountedPrice(price, pct float64) float64 {
	if pct <= 0 {
		return price
	}
	p := decimal.NewFromFloat(price)
	factor := decimal.NewFromFloat(1).Sub(decimal.NewFromFloat(pct).Div(decimal.NewFromInt(100)))
	out, _ := p.Mul(factor).Round(2).Float64()
	return out
}
