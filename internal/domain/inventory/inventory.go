package inventory

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

var (
	ErrEmptyName       = errors.New("inventory: item name must not be empty")
	ErrNotFound        = errors.New("inventory: item not found")
	ErrInvalidQuantity = errors.New("inventory: quantity must be an integer")
)

// DefaultLowStockThreshold is applied when the caller does not supply one.
const DefaultLowStockThreshold = 5

// Inventory maps item names to their current stock quantity. An item driven
// to zero or below by removal is deleted outright; quantities never persist
// as zero or negative.
type Inventory map[string]int

func New() Inventory {
	return make(Inventory)
}

// Add increases the quantity of name by qty, creating the item if absent.
func (inv Inventory) Add(name string, qty int) error {
	if name == "" {
		return ErrEmptyName
	}
	inv[name] += qty
	return nil
}

// Removal describes the outcome of a successful Remove.
type Removal struct {
	Remaining int
	Depleted  bool
}

// Remove decreases the quantity of name by qty. When the result drops to
// zero or below, the item is deleted and Depleted is set.
func (inv Inventory) Remove(name string, qty int) (Removal, error) {
	if qty <= 0 {
		return Removal{}, ErrInvalidQuantity
	}
	current, ok := inv[name]
	if !ok {
		return Removal{}, ErrNotFound
	}
	remaining := current - qty
	if remaining <= 0 {
		delete(inv, name)
		return Removal{Remaining: 0, Depleted: true}, nil
	}
	inv[name] = remaining
	return Removal{Remaining: remaining}, nil
}

// QuantityOf returns the stored quantity, or 0 when the item is absent.
func (inv Inventory) QuantityOf(name string) int {
	return inv[name]
}

// LowStock returns the names of items whose quantity is at or below
// threshold, in sorted name order.
func (inv Inventory) LowStock(threshold int) []string {
	var low []string
	for name, qty := range inv {
		if qty <= threshold {
			low = append(low, name)
		}
	}
	sort.Strings(low)
	return low
}

// Items returns the item names in sorted order.
func (inv Inventory) Items() []string {
	names := make([]string, 0, len(inv))
	for name := range inv {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Report renders a line-per-item listing suitable for printing.
func (inv Inventory) Report() string {
	var b strings.Builder
	b.WriteString("--- Items Report ---\n")
	if len(inv) == 0 {
		b.WriteString("Inventory is empty.\n")
	} else {
		for _, name := range inv.Items() {
			fmt.Fprintf(&b, "%s: %d\n", name, inv[name])
		}
	}
	b.WriteString("--------------------")
	return b.String()
}

// Clone returns an independent copy of the inventory.
func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	for name, qty := range inv {
		out[name] = qty
	}
	return out
}

// AsQuantity coerces an untyped value arriving at a trust boundary into an
// integer quantity. Fractional numbers and non-numeric values are rejected
// with ErrInvalidQuantity.
func AsQuantity(v any) (int, error) {
	switch q := v.(type) {
	case int:
		return q, nil
	case int32:
		return int(q), nil
	case int64:
		return int(q), nil
	case float64:
		if q != math.Trunc(q) {
			return 0, fmt.Errorf("%w: got %v", ErrInvalidQuantity, q)
		}
		return int(q), nil
	case json.Number:
		n, err := q.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: got %q", ErrInvalidQuantity, q.String())
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: got %T", ErrInvalidQuantity, v)
	}
}
