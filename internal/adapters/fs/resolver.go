package fs

import (
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"go.trai.ch/wasmtc/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InputResolver = (*Resolver)(nil)

// SourceExtensions are the file extensions picked up when a directory is listed as input.
var SourceExtensions = []string{".c", ".cc", ".cpp", ".cxx"}

// Resolver implements the InputResolver interface using filepath.Glob and the Walker.
type Resolver struct {
	walker *Walker
}

// NewResolver creates a new Resolver.
func NewResolver(walker *Walker) *Resolver {
	return &Resolver{walker: walker}
}

// ResolveInputs resolves the given input entries to a list of concrete file paths.
// Relative entries are joined with root. A directory expands to every source file below it.
// An entry matching nothing is an error.
func (r *Resolver) ResolveInputs(inputs []string, root string) ([]string, error) {
	seen := make(map[string]struct{})
	var result []string

	add := func(paths []string) {
		sort.Strings(paths)
		for _, p := range paths {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			result = append(result, p)
		}
	}

	for _, input := range inputs {
		path := input
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, input)
		}

		if info, err := os.Stat(path); err == nil {
			if info.IsDir() {
				add(r.sourcesUnder(path))
			} else {
				add([]string{path})
			}
			continue
		}

		matches, err := filepath.Glob(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", path)
		}
		if len(matches) == 0 {
			return nil, zerr.With(zerr.New("input not found"), "path", path)
		}
		add(matches)
	}

	return result, nil
}

func (r *Resolver) sourcesUnder(dir string) []string {
	var out []string
	for file := range r.walker.WalkFiles(dir, nil) {
		if slices.Contains(SourceExtensions, strings.ToLower(filepath.Ext(file))) {
			out = append(out, file)
		}
	}
	return out
}
