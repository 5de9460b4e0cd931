// Package options resolves the immutable toolchain options from the layered platform configuration.
package options

import (
	"go.trai.ch/wasmtc/internal/core/domain"
	"go.trai.ch/wasmtc/internal/core/ports"
	"go.trai.ch/zerr"
)

// Section is the configuration section holding the platform target settings.
const Section = "/Script/HTML5PlatformEditor.HTML5TargetSettings"

// Keys read from Section.
const (
	KeyMultithreading    = "EnableMultithreading"
	KeyOffscreenCanvas   = "OffscreenCanvas"
	KeyTracing           = "EnableTracing"
	KeyProfilerMode      = "EmscriptenProfilerMode"
	KeySessionStorageKey = "SessionStorageCommandLineKey"
)

// Resolve reads the platform options once. Missing keys fall back to their defaults
// (false, none, empty). It fails only when the SDK is not installed.
// SIMD has no configuration key and is always disabled.
func Resolve(sdk domain.SDKInfo, store ports.OptionStore) (domain.ToolchainOptions, error) {
	if !sdk.Installed {
		return domain.ToolchainOptions{}, zerr.With(domain.ErrSDKNotInstalled, "sdk_root", sdk.Root)
	}

	var opts domain.ToolchainOptions
	if store == nil {
		return opts, nil
	}

	opts.Multithreading = boolOption(store, KeyMultithreading)
	opts.OffscreenCanvas = boolOption(store, KeyOffscreenCanvas)
	opts.Tracing = boolOption(store, KeyTracing)

	if mode, ok := store.GetString(Section, KeyProfilerMode); ok {
		opts.Profiler = domain.ParseProfilerMode(mode)
	}
	if key, ok := store.GetString(Section, KeySessionStorageKey); ok {
		opts.SessionStorageKey = key
	}

	return opts, nil
}

func boolOption(store ports.OptionStore, key string) bool {
	v, ok := store.GetBool(Section, key)
	return ok && v
}
