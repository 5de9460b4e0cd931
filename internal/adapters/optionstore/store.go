// Package optionstore provides the layered platform configuration backed by viper.
package optionstore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"go.trai.ch/wasmtc/internal/core/domain"
	"go.trai.ch/wasmtc/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultPlatform is used when the workspace names no platform.
const DefaultPlatform = "HTML5"

// KeyDelimiter separates a section from a key. Section names contain dots, so viper's
// default delimiter cannot be used.
const KeyDelimiter = "::"

// Extensions are the configuration formats recognised for every layer, in probe order.
var Extensions = []string{"yml", "yaml", "json", "toml"}

// Store is an OptionStore over the merged configuration layers.
type Store struct {
	v      *viper.Viper
	layers []string
}

var _ ports.OptionStore = (*Store)(nil)

// GetBool returns the boolean value of key in section.
func (s *Store) GetBool(section, key string) (bool, bool) {
	k := section + KeyDelimiter + key
	if !s.v.IsSet(k) {
		return false, false
	}
	return s.v.GetBool(k), true
}

// GetString returns the string value of key in section.
func (s *Store) GetString(section, key string) (string, bool) {
	k := section + KeyDelimiter + key
	if !s.v.IsSet(k) {
		return "", false
	}
	return s.v.GetString(k), true
}

// Layers returns the configuration files that were merged, lowest precedence first.
func (s *Store) Layers() []string {
	return s.layers
}

// Loader builds stores from the configuration directories of a workspace.
type Loader struct{}

var _ ports.OptionStoreLoader = (*Loader)(nil)

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LayerBases returns the layer paths of ws without extension, lowest precedence first.
func LayerBases(ws domain.Workspace) []string {
	platform := ws.Platform
	if platform == "" {
		platform = DefaultPlatform
	}

	var bases []string
	if ws.EngineDir != "" {
		bases = append(bases,
			filepath.Join(ws.EngineDir, "Config", "BaseEngine"),
			filepath.Join(ws.EngineDir, "Config", platform, platform+"Engine"),
		)
	}
	if ws.ProjectDir != "" {
		bases = append(bases,
			filepath.Join(ws.ProjectDir, "Config", "DefaultEngine"),
			filepath.Join(ws.ProjectDir, "Config", platform, platform+"Engine"),
		)
	}
	return bases
}

// Load merges every configuration layer of ws that exists. Later layers override earlier ones.
func (l *Loader) Load(ws domain.Workspace) (ports.OptionStore, error) {
	v := viper.NewWithOptions(viper.KeyDelimiter(KeyDelimiter))
	store := &Store{v: v}

	for _, base := range LayerBases(ws) {
		for _, ext := range Extensions {
			path := base + "." + ext
			if _, err := os.Stat(path); err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					continue
				}
				return nil, zerr.With(zerr.Wrap(err, domain.ErrOptionStoreReadFailed.Error()), "path", path)
			}

			v.SetConfigFile(path)
			if err := v.MergeInConfig(); err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrOptionStoreReadFailed.Error()), "path", path)
			}
			store.layers = append(store.layers, path)
		}
	}

	return store, nil
}
