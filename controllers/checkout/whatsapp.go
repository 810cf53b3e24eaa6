package checkoutControllers

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/Jgaps7/store316/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const defaultPhone = "5561984611083"

// BuildOrderMessage renders the WhatsApp order text: one block per line item
// with name, size, unit price after the effective discount, quantity and
// subtotal, then the order total. Returns the message and the discounted
// total.
func BuildOrderMessage(items []models.CartItem, globalDiscount float64) (string, decimal.Decimal) {
	var b strings.Builder
	b.WriteString("🛒 *NOVO PEDIDO - STORE 316*\n\n")

	total := decimal.Zero
	for _, item := range items {
		pct := models.EffectiveDiscount(globalDiscount, item.DiscountPercent)
		unit := decimal.NewFromFloat(models.DiscountedPrice(item.ProductPrice, pct))
		subtotal := unit.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
		total = total.Add(subtotal)

		b.WriteString(fmt.Sprintf("• *%s*\n", item.ProductName))
		b.WriteString(fmt.Sprintf("  *Tamanho: %s*\n", item.SelectedSize))
		b.WriteString(fmt.Sprintf("  Qtd: %d | Preço un.: R$ %s | Subtotal: R$ %s\n\n",
			item.Quantity, FormatBRL(unit), FormatBRL(subtotal)))
	}

	b.WriteString(fmt.Sprintf("*TOTAL DO PEDIDO: R$ %s*\n", FormatBRL(total)))
	b.WriteString("----------------------------------\n")
	b.WriteString("👤 *NOME:* \n")
	b.WriteString("📍 *ENDEREÇO:* ")

	return b.String(), total
}

// CheckoutLink builds the wa.me deep link carrying the order message.
// Fire-and-forget: nothing is awaited from the other side.
func CheckoutLink(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(message))
}

// FormatBRL renders a decimal in pt-BR money notation ("1.234,56").
func FormatBRL(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}
	return grouped.String() + "," + fracPart
}

// GET /cart/checkout
func GetCheckoutLink(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := c.Query("guest_id")
		if guestID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("guest_id = ?", guestID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}
		if len(cart.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		phone := os.Getenv("WHATSAPP_PHONE")
		if phone == "" {
			phone = defaultPhone
		}

		message, total := BuildOrderMessage(cart.Items, models.GetGlobalDiscount(db))
		totalValue, _ := total.Float64()
		c.JSON(http.StatusOK, gin.H{
			"url":   CheckoutLink(phone, message),
			"total": totalValue,
		})
	}
}
