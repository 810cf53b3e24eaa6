package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	GuestID   string     `gorm:"uniqueIndex" json:"guest_id"` // one cart per guest
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	PanelOpen bool       `json:"panel_open"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem snapshots the product at the time of add. The snapshot price may
// drift from the canonical product record; that staleness is accepted.
type CartItem struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CartID          uint      `gorm:"index:idx_cart_product_size,unique" json:"-"`
	ProductID       string    `gorm:"index:idx_cart_product_size,unique" json:"product_id"`
	SelectedSize    string    `gorm:"index:idx_cart_product_size,unique" json:"selected_size"`
	Quantity        int       `json:"quantity"`
	ProductName     string    `json:"product_name"`
	ProductPrice    float64   `json:"product_price"`
	ProductImage    string    `json:"product_image"`
	DiscountPercent float64   `json:"discount_percent"`
	AddedAt         time.Time `json:"added_at"`
}

func (c *Cart) find(productID, size string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID && c.Items[i].SelectedSize == size {
			return i
		}
	}
	return -1
}

// AddItem adds a product in the chosen size. Adding the same (product, size)
// pair again increments the existing line item instead of duplicating it.
// The cart panel opens as a side effect.
func (c *Cart) AddItem(p Product, size string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	if i := c.find(p.ID, size); i >= 0 {
		c.Items[i].Quantity += quantity
		c.Items[i].AddedAt = time.Now()
	} else {
		image := ""
		if len(p.ImageURLs) > 0 {
			image = p.ImageURLs[0]
		}
		c.Items = append(c.Items, CartItem{
			CartID:          c.CartID,
			ProductID:       p.ID,
			SelectedSize:    size,
			Quantity:        quantity,
			ProductName:     p.Name,
			ProductPrice:    p.Price,
			ProductImage:    image,
			DiscountPercent: p.DiscountPercent,
			AddedAt:         time.Now(),
		})
	}
	c.PanelOpen = true
}

// SetQuantity sets a line item's quantity exactly. A quantity below 1 is
// treated as removal.
func (c *Cart) SetQuantity(productID, size string, quantity int) {
	if quantity < 1 {
		c.RemoveItem(productID, size)
		return
	}
	if i := c.find(productID, size); i >= 0 {
		c.Items[i].Quantity = quantity
	}
}

// RemoveItem removes the matching line item. Removing an absent item is a
// no-op, not an error.
func (c *Cart) RemoveItem(productID, size string) {
	if i := c.find(productID, size); i >= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
}

func (c *Cart) Clear() {
	c.Items = nil
}

// Total is the pre-discount sum of price x quantity across line items.
// Discounts apply only to per-item display prices and the checkout message,
// never here.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.ProductPrice * float64(item.Quantity)
	}
	return total
}

// Count is the sum of all line item quantities.
func (c *Cart) Count() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}
