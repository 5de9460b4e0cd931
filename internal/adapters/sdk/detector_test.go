package sdk_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wasmtc/internal/adapters/sdk"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func noPython(string) (string, error) {
	return "", errors.New("not found")
}

func newSDK(t *testing.T, layout string) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, layout, "emcc.py"), "")
	writeFile(t, filepath.Join(root, layout, "emscripten-version.txt"), "\"3.1.8\"\n")
	writeFile(t, filepath.Join(root, "python", "3.9.2_64bit", "bin", "python3"), "")
	return root
}

func TestDetect_NotConfigured(t *testing.T) {
	d := sdk.NewDetector(sdk.WithGetenv(env(nil)))
	info, err := d.Detect("")
	require.NoError(t, err)
	assert.False(t, info.Installed)
	assert.Empty(t, info.Root)
}

func TestDetect_MissingCompiler(t *testing.T) {
	root := t.TempDir()
	d := sdk.NewDetector(sdk.WithGetenv(env(nil)))
	info, err := d.Detect(root)
	require.NoError(t, err)
	assert.False(t, info.Installed)
	assert.Equal(t, root, info.Root)
}

func TestDetect_MissingPython(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "emscripten", "emcc.py"), "")

	d := sdk.NewDetector(sdk.WithGetenv(env(nil)), sdk.WithLookPath(noPython))
	info, err := d.Detect(root)
	require.NoError(t, err)
	assert.False(t, info.Installed)
}

func TestDetect_BundledLayout(t *testing.T) {
	root := newSDK(t, "emscripten")
	tmp := t.TempDir()

	d := sdk.NewDetector(
		sdk.WithGetenv(env(map[string]string{sdk.EnvSDKDir: root})),
		sdk.WithLookPath(noPython),
		sdk.WithHostOS("linux"),
		sdk.WithTempDir(tmp),
	)
	info, err := d.Detect("")
	require.NoError(t, err)

	require.True(t, info.Installed)
	assert.Equal(t, root, info.Root)
	assert.Equal(t, "3.1.8", info.Version)
	assert.Equal(t, filepath.Join(root, "emscripten", "emcc.py"), info.Compiler)
	assert.Equal(t, filepath.Join(root, "python", "3.9.2_64bit", "bin", "python3"), info.Python)

	assert.Equal(t, map[string]string{
		"EMCC_WASM_BACKEND":      "1",
		"EMCC_SKIP_SANITY_CHECK": "1",
		"EM_CONFIG":              filepath.Join(root, ".emscripten"),
		"EM_CACHE":               filepath.Join(root, "cache"),
		"EMCC_TEMP_DIR":          filepath.Join(tmp, "wasmtc"),
		"HOME":                   filepath.Join(tmp, "wasmtc"),
	}, info.Environment)
}

func TestDetect_ActivatedSDK(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "upstream", "emscripten", "emcc.py"), "")

	d := sdk.NewDetector(
		sdk.WithGetenv(env(map[string]string{sdk.EnvEMSDK: root})),
		sdk.WithLookPath(func(string) (string, error) { return "/usr/bin/python3", nil }),
		sdk.WithHostOS("windows"),
	)
	info, err := d.Detect("")
	require.NoError(t, err)

	require.True(t, info.Installed)
	assert.Equal(t, "/usr/bin/python3", info.Python)
	assert.Empty(t, info.Version)
	assert.Equal(t, filepath.Join(root, "upstream", "emscripten", "emcc.py"), info.Compiler)
	assert.Equal(t, map[string]string{
		"EMCC_WASM_BACKEND":      "1",
		"EMCC_SKIP_SANITY_CHECK": "1",
		"HOME":                   "",
	}, info.Environment)
}

func TestDetect_ExplicitDirWins(t *testing.T) {
	root := newSDK(t, "emscripten")
	other := t.TempDir()

	d := sdk.NewDetector(
		sdk.WithGetenv(env(map[string]string{sdk.EnvSDKDir: other})),
		sdk.WithHostOS("darwin"),
	)
	info, err := d.Detect(root)
	require.NoError(t, err)
	assert.Equal(t, root, info.Root)
	assert.NotContains(t, info.Environment, "HOME")
}
