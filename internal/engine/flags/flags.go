// Package flags composes compiler and linker flag sequences from the toolchain options and a
// build environment. Every function is pure: the same inputs always yield the same sequence.
package flags

import (
	"path/filepath"
	"strings"

	"go.trai.ch/wasmtc/internal/core/domain"
	"go.trai.ch/zerr"
)

// sharedWarnings are passed to every compile and link, in this order.
var sharedWarnings = []string{
	"-Wdelete-non-virtual-dtor",
	"-Wno-switch",
	"-Wno-tautological-constant-out-of-range-compare",
	"-Wno-tautological-compare",
	"-Wno-tautological-undefined-compare",
	"-Wno-inconsistent-missing-override",
	"-Wno-undefined-var-template",
	"-Wno-invalid-offsetof",
	"-Wno-gnu-string-literal-operator-template",
	"-Wno-final-dtor-non-final-class",
	"-Wno-implicit-int-float-conversion",
	"-Wno-single-bit-bitfield-constant-conversion",
	"-Wno-invalid-unevaluated-string",
	"-Wno-deprecated-builtins",
	"-Wno-shadow",
	"-Wno-deprecated-literal-operator",
	"-Wno-nontrivial-memaccess",
}

// cppStandardFlags maps each supported standard to its language flag.
// A standard missing from the table is rejected instead of silently defaulted.
var cppStandardFlags = map[domain.CppStandard]string{
	domain.CppStandard14:      "-std=c++14",
	domain.CppStandard17:      "-std=c++17",
	domain.CppStandardLatest:  "-std=c++17",
	domain.CppStandardDefault: "-std=c++14",
}

// ExportedFunctions is the native symbol surface the browser glue calls into.
const ExportedFunctions = `-s EXPORTED_FUNCTIONS="['_main', '_on_fatal', '_emscripten_webgl_get_current_context', ` +
	`'_emscripten_webgl_make_context_current', '_htons', '_ntohs', '_malloc','_free','_sendue']"`

// ExtraExportedRuntimeMethods are runtime helpers kept alive for the browser glue.
const ExtraExportedRuntimeMethods = `-s EXTRA_EXPORTED_RUNTIME_METHODS="['Pointer_stringify', ` +
	`'writeAsciiToMemory', 'stackTrace','ccall','cwrap']"`

// ExportedRuntimeMethods are additional runtime helpers exported by name.
const ExportedRuntimeMethods = `-s EXPORTED_RUNTIME_METHODS="['stringToAscii']"`

// SharedOptions are the per-environment switches of the shared flag set.
type SharedOptions struct {
	UndefinedIdentifierWarnings bool
	UseInlining                 bool
}

// Composer builds flag sequences for one set of toolchain options.
type Composer struct {
	opts domain.ToolchainOptions
	ws   domain.Workspace
}

// NewComposer creates a Composer.
func NewComposer(opts domain.ToolchainOptions, ws domain.Workspace) *Composer {
	return &Composer{opts: opts, ws: ws}
}

// Options returns the toolchain options the composer was built with.
func (c *Composer) Options() domain.ToolchainOptions {
	return c.opts
}

// OptimizationFlag returns the single optimization flag for a build.
// Debug wins over size optimization, which wins over the configuration default.
func OptimizationFlag(build domain.BuildConfiguration) string {
	switch {
	case build.Configuration == domain.ConfigurationDebug:
		return "-O0"
	case build.OptimizeForSize:
		return "-Oz"
	case build.Configuration == domain.ConfigurationDevelopment:
		return "-O1"
	default:
		return "-O3"
	}
}

// DescribeOptimization returns the one-line summary of the optimization level of a build.
func DescribeOptimization(build domain.BuildConfiguration) string {
	flag := OptimizationFlag(build)
	var note string
	switch flag {
	case "-O0":
		note = "faster compile time"
	case "-Oz":
		note = "favor size over speed"
	case "-O1":
		note = "fast compile time"
	default:
		note = "favor speed over size"
	}
	return build.Configuration.String() + " " + flag + " " + note
}

// Shared returns the flags common to compiling and linking.
func (c *Composer) Shared(build domain.BuildConfiguration, so SharedOptions) []string {
	out := make([]string, 0, len(sharedWarnings)+10)
	out = append(out, "-fdiagnostics-format=msvc", "-fno-exceptions")
	out = append(out, sharedWarnings...)

	if so.UndefinedIdentifierWarnings {
		out = append(out, "-Wundef")
	}

	out = append(out, OptimizationFlag(build))

	if !so.UseInlining {
		out = append(out, "-fno-inline-functions")
	}

	if c.opts.SIMD {
		out = append(out, "-s SIMD=1")
	}

	if c.opts.Multithreading {
		rhiThread := "1"
		if c.opts.OffscreenCanvas {
			rhiThread = "0"
		}
		out = append(out, "-s USE_PTHREADS=1", "-DEXPERIMENTAL_OPENGL_RHITHREAD="+rhiThread)
	}

	if build.Configuration == domain.ConfigurationShipping && c.opts.SessionStorageKey != "" {
		out = append(out, "-DUE_ALLOW_MAP_OVERRIDE_IN_SHIPPING=1")
	}

	return out
}

// Global returns the shared flags of a compile environment.
func (c *Composer) Global(env *domain.CompileEnvironment) []string {
	return c.Shared(env.Build, SharedOptions{
		UndefinedIdentifierWarnings: env.UndefinedIdentifierWarnings,
		UseInlining:                 env.UseInlining,
	})
}

// TranslationUnit returns the include, definition and forced-include flags shared by every
// source file of a compile environment, in input order.
func (c *Composer) TranslationUnit(env *domain.CompileEnvironment) []string {
	out := make([]string, 0, len(env.UserIncludePaths)+len(env.SystemIncludePaths)+len(env.Definitions)+len(env.ForceIncludeFiles)+1)

	for _, p := range env.UserIncludePaths {
		out = append(out, "-I"+domain.Quote(c.ws.IncludePath(p)))
	}
	for _, p := range env.SystemIncludePaths {
		out = append(out, "-I"+domain.Quote(c.ws.IncludePath(p)))
	}
	for _, d := range env.Definitions {
		out = append(out, "-D"+d)
	}
	if c.opts.Tracing {
		out = append(out, "-D__EMSCRIPTEN_TRACING__")
	}
	for _, f := range env.ForceIncludeFiles {
		out = append(out, "-include "+domain.Quote(f))
	}

	return out
}

// IsPlainC reports whether a source file is compiled as C rather than C++.
func IsPlainC(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".c")
}

// Language returns the language flags for a source file. Plain C files get none; C++ files
// get exactly one standard flag.
func Language(path string, standard domain.CppStandard) ([]string, error) {
	if IsPlainC(path) {
		return nil, nil
	}
	flag, ok := cppStandardFlags[standard]
	if !ok {
		err := zerr.With(domain.ErrUnsupportedCppStandard, "standard", standard.String())
		return nil, zerr.With(err, "source", path)
	}
	return []string{flag}, nil
}

// Link returns the full linker flag sequence of a link environment.
func (c *Composer) Link(env *domain.LinkEnvironment) []string {
	out := c.Shared(env.Build, SharedOptions{})
	cfg := env.Build.Configuration

	if cfg == domain.ConfigurationDebug || env.CreateDebugInfo || cfg == domain.ConfigurationDevelopment {
		out = append(out, "--profiling-funcs")
	}

	out = append(out, "--emit-symbol-map")

	if cfg.HasAssertions() {
		out = append(out, "-s ASSERTIONS=1", "-s GL_ASSERTIONS=1", "-g1")
		out = append(out, c.profilerFlags()...)
	}

	if c.opts.Tracing {
		out = append(out, "--tracing")
	}

	out = append(out, c.memoryFlags()...)
	out = append(out, "-s STACK_SIZE=5MB")
	out = append(out, "-s USE_WEBGL2=1")

	if c.opts.Multithreading {
		if c.opts.OffscreenCanvas {
			out = append(out, "-s OFFSCREENCANVAS_SUPPORT=1")
		} else {
			out = append(out, "-s OFFSCREEN_FRAMEBUFFER=1")
		}
		out = append(out, "-s PROXY_TO_PTHREAD=1")
	}

	out = append(out,
		"-s MIN_WEBGL_VERSION=2",
		"-s MAX_WEBGL_VERSION=2",
		"-s GL_PREINITIALIZED_CONTEXT=1",
		ExportedFunctions,
		ExtraExportedRuntimeMethods,
		ExportedRuntimeMethods,
		"-s ERROR_ON_UNDEFINED_SYMBOLS=1",
		"-s NO_EXIT_RUNTIME=1",
		"-s LLD_REPORT_UNDEFINED",
		"-s CASE_INSENSITIVE_FS=1",
		"-s FORCE_FILESYSTEM=1",
	)

	return out
}

func (c *Composer) profilerFlags() []string {
	switch c.opts.Profiler {
	case domain.ProfilerCPU:
		return []string{"--cpuprofiler"}
	case domain.ProfilerMemory:
		return []string{"--memoryprofiler"}
	case domain.ProfilerThread:
		if c.opts.ThreadProfilerActive() {
			return []string{"--threadprofiler"}
		}
	}
	return nil
}

func (c *Composer) memoryFlags() []string {
	if c.opts.Multithreading {
		return []string{
			"-s ALLOW_MEMORY_GROWTH=0",
			"-s INITIAL_MEMORY=600MB",
			"-s PTHREAD_POOL_SIZE=4",
		}
	}
	return []string{
		"-s ALLOW_MEMORY_GROWTH=1",
		"-s INITIAL_MEMORY=32MB",
	}
}
