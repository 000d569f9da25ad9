package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrEmptyCustomer   = errors.New("customer name must not be empty")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrInvalidCost     = errors.New("declared cost must be a non-negative amount")
)

// Identity of a delivery record: the (customer, item) pair.
// Two keys are equal only when both fields match exactly, case included.
type Key struct {
	Customer string
	Item     string
}

func (k Key) String() string { return k.Customer + " / " + k.Item }

// Represents one customer's cargo entry on the airship manifest.
type Delivery struct {
	Customer string
	Item     string
	Quantity int
	Cost     float64
}

func (d Delivery) Key() Key { return Key{Customer: d.Customer, Item: d.Item} }

// Matches reports whether d is identified by the given customer and item.
func (d Delivery) Matches(customer, item string) bool {
	return d.Customer == customer && d.Item == item
}

// Validate checks the input rules the game applies before a record reaches the manifest.
// The manifest itself stores whatever it is given.
func (d Delivery) Validate() error {
	if strings.TrimSpace(d.Customer) == "" {
		return ErrEmptyCustomer
	}
	if d.Quantity <= 0 {
		return fmt.Errorf("validate delivery %q: %w", d.Key(), ErrInvalidQuantity)
	}
	if d.Cost < 0 || math.IsNaN(d.Cost) || math.IsInf(d.Cost, 0) {
		return fmt.Errorf("validate delivery %q: %w", d.Key(), ErrInvalidCost)
	}
	return nil
}

// Single-record view of a delivery together with its 1-based manifest position.
type Entry struct {
	Position int
	Delivery
}
