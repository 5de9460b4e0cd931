package ports

import "go.trai.ch/wasmtc/internal/core/domain"

// OptionStore is a read-only view over the layered platform configuration.
// A missing key is reported through the second return value and is never an error.
//
//go:generate mockgen -source=option_store.go -destination=mocks/mock_option_store.go -package=mocks
type OptionStore interface {
	// GetBool returns the boolean value of key in section.
	GetBool(section, key string) (bool, bool)

	// GetString returns the string value of key in section.
	GetString(section, key string) (string, bool)
}

// OptionStoreLoader builds an OptionStore from the configuration layers of a workspace.
type OptionStoreLoader interface {
	// Load merges the configuration layers of ws. Missing layers are skipped.
	Load(ws domain.Workspace) (OptionStore, error)
}
