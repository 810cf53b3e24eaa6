package cartControllers

import (
	"log"
	"net/http"

	"github.com/Jgaps7/store316/models"
	"github.com/Jgaps7/store316/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddItemInput struct {
	ProductID    string `json:"product_id" binding:"required"`
	SelectedSize string `json:"selected_size" binding:"required"`
	Quantity     int    `json:"quantity"`
}

type SetQuantityInput struct {
	ProductID    string `json:"product_id" binding:"required"`
	SelectedSize string `json:"selected_size" binding:"required"`
	Quantity     int    `json:"quantity"`
}

type PanelInput struct {
	Open bool `json:"open"`
}

type cartItemView struct {
	models.CartItem
	EffectiveDiscount float64 `json:"effective_discount"`
	DisplayPrice      float64 `json:"display_price"`
}

// loadCart fetches the guest's cart, creating one on first use. A cart whose
// items cannot be read hydrates as an empty cart with a logged warning; a
// broken cart must never block the shopper.
func loadCart(db *gorm.DB, guestID string) (*models.Cart, error) {
	var cart models.Cart
	err := db.Where("guest_id = ?", guestID).First(&cart).Error
	if err == gorm.ErrRecordNotFound {
		cart = models.Cart{GuestID: guestID}
		if err := db.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}

	if err := db.Where("cart_id = ?", cart.CartID).Order("added_at").Find(&cart.Items).Error; err != nil {
		log.Printf("⚠️ Failed to hydrate cart %d, starting empty: %v", cart.CartID, err)
		cart.Items = nil
	}
	return &cart, nil
}

// saveCart persists the whole line-item sequence on every mutation, the same
// wholesale write the browser cart did against local storage.
func saveCart(db *gorm.DB, cart *models.Cart) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		for i := range cart.Items {
			cart.Items[i].ID = 0
			cart.Items[i].CartID = cart.CartID
		}
		if len(cart.Items) > 0 {
			if err := tx.Create(&cart.Items).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Cart{}).Where("cart_id = ?", cart.CartID).
			Update("panel_open", cart.PanelOpen).Error
	})
}

func guestID(c *gin.Context) (string, bool) {
	id := c.Query("guest_id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
		return "", false
	}
	return id, true
}

func cartResponse(db *gorm.DB, cart *models.Cart) gin.H {
	global := models.GetGlobalDiscount(db)
	items := make([]cartItemView, 0, len(cart.Items))
	for _, item := range cart.Items {
		pct := models.EffectiveDiscount(global, item.DiscountPercent)
		item.ProductImage = utils.DirectDriveLink(item.ProductImage)
		items = append(items, cartItemView{
			CartItem:          item,
			EffectiveDiscount: pct,
			DisplayPrice:      models.DiscountedPrice(item.ProductPrice, pct),
		})
	}
	return gin.H{
		"guest_id":   cart.GuestID,
		"items":      items,
		"total":      cart.Total(), // pre-discount by design
		"cart_count": cart.Count(),
		"panel_open": cart.PanelOpen,
	}
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := guestID(c)
		if !ok {
			return
		}
		cart, err := loadCart(db, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cartResponse(db, cart))
	}
}

// POST /cart/items
func AddItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := guestID(c)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate product"
			if err == gorm.ErrRecordNotFound {
				status = http.StatusBadRequest
				errMsg = "Product does not exist"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}

		cart, err := loadCart(db, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		cart.AddItem(product, input.SelectedSize, input.Quantity)
		if err := saveCart(db, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, cartResponse(db, cart))
	}
}

// PUT /cart/items
// Sets a line item's quantity exactly. Quantity below 1 removes the item.
func SetQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := guestID(c)
		if !ok {
			return
		}

		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := loadCart(db, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		cart.SetQuantity(input.ProductID, input.SelectedSize, input.Quantity)
		if err := saveCart(db, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, cartResponse(db, cart))
	}
}

// DELETE /cart/items/:product_id?size=
// Removing an item that is not in the cart is a no-op, not an error.
func RemoveItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := guestID(c)
		if !ok {
			return
		}

		cart, err := loadCart(db, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		cart.RemoveItem(c.Param("product_id"), c.Query("size"))
		if err := saveCart(db, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, cartResponse(db, cart))
	}
}

// DELETE /cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := guestID(c)
		if !ok {
			return
		}

		cart, err := loadCart(db, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		cart.Clear()
		if err := saveCart(db, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, cartResponse(db, cart))
	}
}

// POST /cart/panel
func SetPanel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := guestID(c)
		if !ok {
			return
		}

		var input PanelInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		cart, err := loadCart(db, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		cart.PanelOpen = input.Open
		if err := db.Model(&models.Cart{}).Where("cart_id = ?", cart.CartID).
			Update("panel_open", input.Open).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"panel_open": input.Open})
	}
}
