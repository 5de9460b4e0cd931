package domain

import "strings"

// ProfilerMode selects the browser-side profiler injected into linked modules.
type ProfilerMode int

const (
	// ProfilerNone disables profiler injection.
	ProfilerNone ProfilerMode = iota
	// ProfilerCPU injects the CPU profiler.
	ProfilerCPU
	// ProfilerMemory injects the memory profiler.
	ProfilerMemory
	// ProfilerThread injects the thread profiler. It only has effect with multithreading.
	ProfilerThread
)

// ParseProfilerMode maps a configured value onto a ProfilerMode.
// Matching is case-insensitive; unknown or empty values map to ProfilerNone.
func ParseProfilerMode(s string) ProfilerMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cpu":
		return ProfilerCPU
	case "memory":
		return ProfilerMemory
	case "thread":
		return ProfilerThread
	default:
		return ProfilerNone
	}
}

// String returns the lower-case name of the profiler mode.
func (p ProfilerMode) String() string {
	switch p {
	case ProfilerCPU:
		return "cpu"
	case ProfilerMemory:
		return "memory"
	case ProfilerThread:
		return "thread"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p ProfilerMode) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ToolchainOptions is the immutable set of platform options resolved once per toolchain.
type ToolchainOptions struct {
	Multithreading    bool         `json:"multithreading"`
	OffscreenCanvas   bool         `json:"offscreenCanvas"`
	Tracing           bool         `json:"tracing"`
	Profiler          ProfilerMode `json:"profiler"`
	SIMD              bool         `json:"simd"`
	SessionStorageKey string       `json:"sessionStorageKey,omitempty"`
}

// ThreadProfilerActive reports whether the thread profiler should actually be injected.
func (o ToolchainOptions) ThreadProfilerActive() bool {
	return o.Profiler == ProfilerThread && o.Multithreading
}

// LibraryDir returns the directory name holding third-party libraries prebuilt for the given
// SDK version and threading model.
func (o ToolchainOptions) LibraryDir(sdkVersion string) string {
	dir := "lib-" + sdkVersion + "-up"
	if o.Multithreading {
		dir += "-mt"
	}
	return dir
}
