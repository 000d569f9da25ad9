package ports

import (
	"airship-delivery/internal/domain"
	"iter"
)

// Port: the ordered delivery manifest the game flow drives.
// Keyed operations resolve to the earliest record whose (customer, item) key
// matches exactly; a missing key is reported via the bool result.
type DeliveryStore interface {
	// Append a delivery to the end of the manifest.
	Add(customer, item string, qty int, cost float64)
	// Return a copy of the first matching delivery.
	Find(customer, item string) (domain.Delivery, bool)
	// Return the first matching delivery together with its 1-based position.
	Locate(customer, item string) (domain.Entry, bool)
	// Overwrite quantity and cost of the first matching delivery.
	Modify(customer, item string, qty int, cost float64) bool
	// Unlink the first matching delivery.
	Remove(customer, item string) bool
	// Enumerate all deliveries in insertion order.
	All() iter.Seq2[int, domain.Delivery]
	Len() int
}
