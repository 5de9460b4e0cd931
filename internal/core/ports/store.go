package ports

import "go.trai.ch/wasmtc/internal/core/domain"

// FingerprintStore defines the interface for storing and retrieving action fingerprints.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type FingerprintStore interface {
	// Get retrieves the fingerprint recorded for an artifact.
	// Returns nil, nil if not found.
	Get(artifact string) (*domain.Fingerprint, error)

	// Put stores the fingerprint.
	Put(fp domain.Fingerprint) error

	// Close releases the underlying database.
	Close() error
}
