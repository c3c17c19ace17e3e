package model

// Line is one persisted cart entry: a distinct product and its
// quantity. Price is a snapshot taken when the line was first created;
// later catalog views never re-price it.
type Line struct {
	ID       ID     `json:"id"`
	Title    string `json:"title"`
	Price    Cents  `json:"price_cents"`
	Image    string `json:"image,omitempty"`
	Quantity int    `json:"quantity"`
}

// Subtotal is price times quantity for this line.
func (l Line) Subtotal() Cents {
	return l.Price * Cents(l.Quantity)
}

// Cart is an ordered sequence of lines; new products append and the
// order is never re-sorted.
type Cart []Line

// IndexOf returns the position of the line with the given identity
// key, or -1.
func (c Cart) IndexOf(key ID) int {
	for i, l := range c {
		if l.ID == key {
			return i
		}
	}
	return -1
}

// Totals are derived on every render and never persisted.
type Totals struct {
	Items    int
	Subtotal Cents
}

// Totals recomputes the item count and subtotal from scratch.
func (c Cart) Totals() Totals {
	var t Totals
	for _, l := range c {
		t.Items += l.Quantity
		t.Subtotal += l.Subtotal()
	}
	return t
}
