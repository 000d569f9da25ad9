// Package manifest holds the airship's ordered delivery records.
//
// Records keep insertion order. Lookups scan from the front and always resolve
// to the earliest record whose (customer, item) key matches exactly, so a
// duplicate key stays hidden until the records before it are removed.
// A missing key is reported through a bool, never an error.
package manifest

import (
	"airship-delivery/internal/domain"
	"iter"
	"slices"
)

// Manifest is an ordered, slice-backed collection of deliveries.
// It is not safe for concurrent use.
type Manifest struct {
	records []domain.Delivery
}

func New() *Manifest {
	return &Manifest{}
}

// Add appends a delivery to the end of the manifest. Arguments are stored as given.
func (m *Manifest) Add(customer, item string, qty int, cost float64) {
	m.records = append(m.records, domain.Delivery{
		Customer: customer,
		Item:     item,
		Quantity: qty,
		Cost:     cost,
	})
}

// index returns the position of the first record matching the key, or -1.
func (m *Manifest) index(customer, item string) int {
	return slices.IndexFunc(m.records, func(d domain.Delivery) bool {
		return d.Matches(customer, item)
	})
}

// Find returns a copy of the first delivery matching the key.
func (m *Manifest) Find(customer, item string) (domain.Delivery, bool) {
	i := m.index(customer, item)
	if i < 0 {
		return domain.Delivery{}, false
	}
	return m.records[i], true
}

// Locate is Find plus the record's 1-based position, for single-record display.
func (m *Manifest) Locate(customer, item string) (domain.Entry, bool) {
	i := m.index(customer, item)
	if i < 0 {
		return domain.Entry{}, false
	}
	return domain.Entry{Position: i + 1, Delivery: m.records[i]}, true
}

// Modify overwrites quantity and cost of the first matching delivery.
// The key is never changed.
func (m *Manifest) Modify(customer, item string, qty int, cost float64) bool {
	i := m.index(customer, item)
	if i < 0 {
		return false
	}
	m.records[i].Quantity = qty
	m.records[i].Cost = cost
	return true
}

// Remove splices out the first matching delivery.
func (m *Manifest) Remove(customer, item string) bool {
	i := m.index(customer, item)
	if i < 0 {
		return false
	}
	m.records = slices.Delete(m.records, i, i+1)
	return true
}

// All yields (1-based position, delivery) pairs in insertion order.
// The sequence can be ranged over any number of times.
func (m *Manifest) All() iter.Seq2[int, domain.Delivery] {
	return func(yield func(int, domain.Delivery) bool) {
		for i, d := range m.records {
			if !yield(i+1, d) {
				return
			}
		}
	}
}

// Records returns a snapshot of the manifest in insertion order.
func (m *Manifest) Records() []domain.Delivery {
	return slices.Clone(m.records)
}

func (m *Manifest) Len() int { return len(m.records) }
