package domain

import (
	"encoding/json"
	"unique"
)

// Artifact is an interned file path consumed or produced by an action.
// Paths repeat heavily across a graph (every object file is produced once and consumed by the
// link), so they are stored as unique handles.
type Artifact struct {
	h unique.Handle[string]
}

// NewArtifact creates a new Artifact from a path.
func NewArtifact(path string) Artifact {
	return Artifact{
		h: unique.Make(path),
	}
}

// String returns the underlying path.
func (a Artifact) String() string {
	var zero unique.Handle[string]
	if a.h == zero {
		return ""
	}
	return a.h.Value()
}

// IsZero reports whether the artifact was never assigned a path.
func (a Artifact) IsZero() bool {
	var zero unique.Handle[string]
	return a.h == zero
}

// MarshalText implements encoding.TextMarshaler.
func (a Artifact) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Artifact) UnmarshalText(text []byte) error {
	a.h = unique.Make(string(text))
	return nil
}

// ArtifactSet is an insertion-ordered set of artifacts.
type ArtifactSet struct {
	items []Artifact
	index map[Artifact]struct{}
}

// Add inserts the artifacts that are not yet present, preserving first-insertion order.
func (s *ArtifactSet) Add(artifacts ...Artifact) {
	if s.index == nil {
		s.index = make(map[Artifact]struct{}, len(artifacts))
	}
	for _, a := range artifacts {
		if _, ok := s.index[a]; ok {
			continue
		}
		s.index[a] = struct{}{}
		s.items = append(s.items, a)
	}
}

// AddPaths is a convenience wrapper around Add for raw paths.
func (s *ArtifactSet) AddPaths(paths ...string) {
	for _, p := range paths {
		s.Add(NewArtifact(p))
	}
}

// Contains reports whether the artifact is in the set.
func (s *ArtifactSet) Contains(a Artifact) bool {
	_, ok := s.index[a]
	return ok
}

// Len returns the number of artifacts in the set.
func (s *ArtifactSet) Len() int {
	return len(s.items)
}

// Items returns the artifacts in insertion order.
func (s *ArtifactSet) Items() []Artifact {
	out := make([]Artifact, len(s.items))
	copy(out, s.items)
	return out
}

// Paths returns the artifact paths in insertion order.
func (s *ArtifactSet) Paths() []string {
	out := make([]string, len(s.items))
	for i, a := range s.items {
		out[i] = a.String()
	}
	return out
}

// MarshalJSON renders the set as a list of paths.
func (s ArtifactSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Paths())
}
