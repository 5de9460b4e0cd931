package ports

import (
	"context"

	"go.trai.ch/wasmtc/internal/core/domain"
)

// Hasher defines the interface for computing action fingerprints.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// HashFiles computes content hashes for the given files concurrently.
	// Missing files are omitted from the result.
	HashFiles(ctx context.Context, paths []string) (map[string]string, error)

	// ActionKey derives the key of an action from its command, environment and the hashes of
	// its prerequisites. inputs maps prerequisite paths to content hashes or producer keys.
	ActionKey(action *domain.Action, inputs map[string]string) string
}
