// Package cart owns the persisted shopping cart and every mutation on
// it. Each operation re-reads the persisted state immediately before
// mutating and writes immediately after, so no write is ever based on
// a stale in-memory copy.
package cart

import (
	"encoding/json"
	"errors"

	"github.com/balcao-cafe/balcao/internal/model"
)

// storageKey is the single persisted-store key holding the cart.
const storageKey = "cart"

var (
	// ErrInvalidQuantity rejects a quantity that is not a positive
	// integer; the stored quantity is left unchanged.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	// ErrIndexOutOfRange rejects a line index that does not exist.
	ErrIndexOutOfRange = errors.New("cart index out of range")
)

// Store is the durable key/value backend the engine persists into.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// Engine is a CRUD layer over the one persisted cart aggregate.
type Engine struct {
	store  Store
	notify func(items int)
}

// NewEngine returns an engine persisting through store.
func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// OnCountChange registers the item-count sink. It fires after every
// successful persist; this is the single point where count indicators
// are resynchronized, so anything mirroring the count must hook here.
func (e *Engine) OnCountChange(fn func(items int)) {
	e.notify = fn
}

// Load reads the persisted cart. A missing key or malformed document
// yields an empty cart; persistence problems never surface here.
func (e *Engine) Load() model.Cart {
	b, ok, err := e.store.Get(storageKey)
	if err != nil || !ok {
		return model.Cart{}
	}
	var c model.Cart
	if err := json.Unmarshal(b, &c); err != nil {
		return model.Cart{}
	}
	return c
}

// Save persists the cart and fires the count-refresh hook.
func (e *Engine) Save(c model.Cart) error {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if err := e.store.Set(storageKey, b); err != nil {
		return err
	}
	e.countChanged(c.Totals().Items)
	return nil
}

// Add merges the product into the cart: an existing line with the same
// identity key has its quantity bumped by one and keeps its original
// price, title and image; otherwise a new line is appended with
// quantity 1. Missing product fields are absorbed by defaults, so Add
// only fails if persisting does.
func (e *Engine) Add(p model.Product) (model.Cart, error) {
	c := e.Load()
	key := p.Key()
	if i := c.IndexOf(key); i >= 0 {
		c[i].Quantity++
	} else {
		c = append(c, model.Line{
			ID:       key,
			Title:    p.Title,
			Price:    model.ToCents(p.Price),
			Image:    p.Image,
			Quantity: 1,
		})
	}
	if err := e.Save(c); err != nil {
		return nil, err
	}
	return c, nil
}

// SetQuantity sets the quantity of the line at index. A non-positive
// value is rejected with ErrInvalidQuantity and the stored quantity is
// retained; callers reflect the prior value back to the input control.
func (e *Engine) SetQuantity(index, qty int) (model.Cart, error) {
	c := e.Load()
	if index < 0 || index >= len(c) {
		return c, ErrIndexOutOfRange
	}
	if qty < 1 {
		return c, ErrInvalidQuantity
	}
	c[index].Quantity = qty
	if err := e.Save(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Remove deletes the line at index; an out-of-range index is a no-op.
func (e *Engine) Remove(index int) (model.Cart, error) {
	c := e.Load()
	if index < 0 || index >= len(c) {
		return c, nil
	}
	c = append(c[:index], c[index+1:]...)
	if err := e.Save(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Clear deletes the persisted cart entirely. A later Load yields an
// empty cart, same as saving an empty one.
func (e *Engine) Clear() error {
	if err := e.store.Delete(storageKey); err != nil {
		return err
	}
	e.countChanged(0)
	return nil
}

// Count is the current item count, read fresh from persisted state.
func (e *Engine) Count() int {
	return e.Load().Totals().Items
}

func (e *Engine) countChanged(items int) {
	if e.notify != nil {
		e.notify(items)
	}
}
