package ports

import "airship-delivery/internal/domain"

// Contract for the read-only narrative script.
type SceneProvider interface {
	// Return the text for a scene.
	Scene(id domain.SceneID) (string, error)
	// Name of the customer whose package is the fraud.
	FraudCustomer() string
}
