package model

import "encoding/json"

// Product is one catalog record as served by the menu endpoint.
// Every field except the title is optional on the wire; defaults are
// applied when a product is first placed in the cart, not here.
type Product struct {
	ID          ID       `json:"id,omitempty"`
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Image       string   `json:"image,omitempty"`
	Description string   `json:"description,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
}

// Key is the identity used to merge a product into an existing cart
// line: the id when present, the title otherwise.
func (p Product) Key() ID {
	if p.ID != "" {
		return p.ID
	}
	return ID(p.Title)
}

// ID accepts both JSON strings and bare numbers; json-server style
// catalogs use numeric ids.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}
