package cart

import (
	"encoding/json"
	"errors"
	"math"

	"github.com/CT070144/HostingWebsite-FE-sub001/internal/session"
)

// VATRate applies to every cart subtotal.
const VATRate = 0.10

// DedicatedIPFee is the monthly surcharge for the dedicated-IP option.
const DedicatedIPFee = 5.0

// Item is the single cart entry; the storefront checkout holds at most one.
type Item struct {
	ProductID   uint    `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Cycle       int     `json:"cycle"`
	DedicatedIP bool    `json:"dedicatedIp"`
	Subtotal    float64 `json:"subtotal"`
	VAT         float64 `json:"vat"`
	Total       float64 `json:"total"`
}

// Cart persists the single item under its fixed storage key. Adding while an
// item exists replaces it.
type Cart struct {
	store session.Store
}

func New(store session.Store) *Cart {
	return &Cart{store: store}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Add computes the totals for a plan at the chosen payment cycle (months)
// and persists the item, replacing any previous one.
func (c *Cart) Add(productID uint, name string, monthlyPrice float64, cycle int, dedicatedIP bool) (Item, error) {
	if cycle < 1 {
		cycle = 1
	}

	subtotal := monthlyPrice * float64(cycle)
	if dedicatedIP {
		subtotal += DedicatedIPFee * float64(cycle)
	}
	subtotal = round2(subtotal)
	vat := round2(subtotal * VATRate)

	item := Item{
		ProductID:   productID,
		ProductName: name,
		Price:       monthlyPrice,
		Cycle:       cycle,
		DedicatedIP: dedicatedIP,
		Subtotal:    subtotal,
		VAT:         vat,
		Total:       round2(subtotal + vat),
	}

	data, err := json.Marshal(item)
	if err != nil {
		return Item{}, err
	}
	if err := c.store.Set(session.KeyCart, data); err != nil {
		return Item{}, err
	}
	return item, nil
}

// Get returns the stored item, or nil when the cart is empty.
func (c *Cart) Get() (*Item, error) {
	data, err := c.store.Get(session.KeyCart)
	if errors.Is(err, session.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var item Item
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Remove empties the cart by deleting the persisted entry.
func (c *Cart) Remove() error {
	return c.store.Delete(session.KeyCart)
}
