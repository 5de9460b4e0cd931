// Package sdk locates the WebAssembly SDK and computes the environment its tools need.
package sdk

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/wasmtc/internal/core/domain"
	"go.trai.ch/wasmtc/internal/core/ports"
)

const (
	// EnvSDKDir overrides SDK discovery.
	EnvSDKDir = "WASMTC_SDK_DIR"
	// EnvEMSDK is set by the SDK's own activation scripts.
	EnvEMSDK = "EMSDK"

	versionFile = "emscripten-version.txt"
)

// compilerDirs are the locations of the compiler scripts relative to the SDK root.
var compilerDirs = []string{
	"emscripten",
	filepath.Join("upstream", "emscripten"),
}

// Detector implements ports.SDKDetector on the local filesystem.
type Detector struct {
	getenv   func(string) string
	lookPath func(string) (string, error)
	hostOS   string
	tempDir  string
}

var _ ports.SDKDetector = (*Detector)(nil)

// Option configures a Detector.
type Option func(*Detector)

// WithGetenv replaces the environment lookup.
func WithGetenv(fn func(string) string) Option {
	return func(d *Detector) { d.getenv = fn }
}

// WithLookPath replaces the executable search used to find a system Python.
func WithLookPath(fn func(string) (string, error)) Option {
	return func(d *Detector) { d.lookPath = fn }
}

// WithHostOS sets the host operating system the environment is computed for.
func WithHostOS(goos string) Option {
	return func(d *Detector) { d.hostOS = goos }
}

// WithTempDir sets the base of the scratch directories handed to the compiler.
func WithTempDir(dir string) Option {
	return func(d *Detector) { d.tempDir = dir }
}

// NewDetector creates a Detector for the current process.
func NewDetector(opts ...Option) *Detector {
	d := &Detector{
		getenv:   os.Getenv,
		lookPath: exec.LookPath,
		hostOS:   runtime.GOOS,
		tempDir:  os.TempDir(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect finds the SDK at dir, or at the first of WASMTC_SDK_DIR and EMSDK that is set.
func (d *Detector) Detect(dir string) (domain.SDKInfo, error) {
	root := dir
	if root == "" {
		root = d.getenv(EnvSDKDir)
	}
	if root == "" {
		root = d.getenv(EnvEMSDK)
	}
	if root == "" {
		return domain.SDKInfo{}, nil
	}

	info := domain.SDKInfo{Root: root}

	compilerDir, ok := findCompilerDir(root)
	if !ok {
		return info, nil
	}

	python, err := d.findPython(root)
	if err != nil {
		return info, nil //nolint:nilerr // a missing interpreter means the SDK is unusable, not an error
	}

	info.Installed = true
	info.Python = python
	info.Compiler = filepath.Join(compilerDir, "emcc.py")
	info.Version = readVersion(filepath.Join(compilerDir, versionFile))
	info.Environment = d.environment(root)

	return info, nil
}

func findCompilerDir(root string) (string, bool) {
	for _, rel := range compilerDirs {
		dir := filepath.Join(root, rel)
		if fileExists(filepath.Join(dir, "emcc.py")) {
			return dir, true
		}
	}
	return "", false
}

func (d *Detector) findPython(root string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(root, "python", "*", "bin", "python3"))
	if err == nil && len(matches) > 0 {
		return matches[len(matches)-1], nil
	}
	return d.lookPath("python3")
}

func readVersion(path string) string {
	data, err := os.ReadFile(path) //nolint:gosec // path is inside the SDK root
	if err != nil {
		return ""
	}
	return strings.Trim(strings.TrimSpace(string(data)), `"`)
}

// environment returns the variables every compiler invocation must see. The SDK's own
// configuration is used as-is when it was activated through its scripts.
func (d *Detector) environment(root string) map[string]string {
	env := map[string]string{
		"EMCC_WASM_BACKEND":      "1",
		"EMCC_SKIP_SANITY_CHECK": "1",
	}

	scratch := filepath.Join(d.tempDir, "wasmtc")
	if d.getenv(EnvEMSDK) == "" {
		env["EM_CONFIG"] = filepath.Join(root, ".emscripten")
		env["EM_CACHE"] = filepath.Join(root, "cache")
		env["EMCC_TEMP_DIR"] = scratch
	}

	switch d.hostOS {
	case "linux":
		env["HOME"] = scratch
	case "windows":
		env["HOME"] = ""
	}

	return env
}

func fileExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}
