package domain

import (
	"path/filepath"
	"strings"
)

// Workspace locates the engine and project trees a job builds against.
type Workspace struct {
	EngineDir       string
	EngineSourceDir string
	ProjectDir      string
	Platform        string
}

// IncludePath returns the form of an include path used on command lines.
// Paths under the engine directory become relative to the engine source directory, which is the
// working directory of every compile action.
func (w Workspace) IncludePath(path string) string {
	if w.EngineDir == "" || w.EngineSourceDir == "" {
		return path
	}
	if !isUnder(path, w.EngineDir) {
		return path
	}
	rel, err := filepath.Rel(w.EngineSourceDir, path)
	if err != nil {
		return path
	}
	return rel
}

func isUnder(path, dir string) bool {
	path = filepath.Clean(path)
	dir = filepath.Clean(dir)
	if path == dir {
		return true
	}
	return strings.HasPrefix(path, dir+string(filepath.Separator))
}

const (
	// DefaultStateDir holds incremental planning state, relative to the working directory.
	DefaultStateDir = ".wasmtc"
	// FingerprintDBFile is the fingerprint database inside the state directory.
	FingerprintDBFile = "fingerprints.db"

	// DirPerm is the permission used for directories created by the tool.
	DirPerm = 0o750
	// FilePerm is the permission used for generated files.
	FilePerm = 0o644
	// PrivateFilePerm is the permission used for state databases.
	PrivateFilePerm = 0o600
)
