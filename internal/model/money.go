package model

import (
	"fmt"
	"math"
)

// Cents is a BRL amount in integer centavos, so cart subtotals stay
// exact no matter how many lines are summed.
type Cents int64

// ToCents converts a catalog price (decimal on the wire) to centavos.
func ToCents(price float64) Cents {
	return Cents(math.Round(price * 100))
}

func (c Cents) String() string {
	return fmt.Sprintf("R$ %d.%02d", c/100, c%100)
}
