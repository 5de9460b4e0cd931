package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// BinaryKind is the kind of binary a link produces.
type BinaryKind int

const (
	// BinaryExecutable is a runnable module.
	BinaryExecutable BinaryKind = iota
	// BinaryDynamicLibrary is a side module loaded at run time.
	BinaryDynamicLibrary
	// BinaryStaticLibrary is an archive consumed by later links.
	BinaryStaticLibrary
)

// String returns the canonical name of the kind.
func (k BinaryKind) String() string {
	switch k {
	case BinaryDynamicLibrary:
		return "dynamic"
	case BinaryStaticLibrary:
		return "static"
	default:
		return "executable"
	}
}

// ParseBinaryKind parses a binary kind name.
func ParseBinaryKind(s string) (BinaryKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "executable", "exe":
		return BinaryExecutable, nil
	case "dynamic", "dynamiclibrary", "shared":
		return BinaryDynamicLibrary, nil
	case "static", "staticlibrary":
		return BinaryStaticLibrary, nil
	default:
		return 0, zerr.With(ErrUnsupportedBinaryKind, "kind", s)
	}
}

// Binary is a linked output together with its kind.
type Binary struct {
	Kind       BinaryKind
	OutputPath string
}

// BuildProductType classifies files declared by a build.
type BuildProductType int

const (
	// ProductExecutable is the primary binary.
	ProductExecutable BuildProductType = iota
	// ProductRequiredResource must be deployed next to the binary.
	ProductRequiredResource
)

// String returns the name of the product type.
func (t BuildProductType) String() string {
	if t == ProductRequiredResource {
		return "required-resource"
	}
	return "executable"
}

// MarshalText implements encoding.TextMarshaler.
func (t BuildProductType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// BuildProduct is a file declared as output of the build.
type BuildProduct struct {
	Path string           `json:"path"`
	Type BuildProductType `json:"type"`
}

// BuildProducts is an insertion-ordered set of build products keyed by path.
type BuildProducts struct {
	items []BuildProduct
	seen  map[string]struct{}
}

// Add registers a product. It returns an error if the path is already registered.
func (p *BuildProducts) Add(path string, typ BuildProductType) error {
	if p.seen == nil {
		p.seen = make(map[string]struct{})
	}
	if _, ok := p.seen[path]; ok {
		return zerr.With(ErrDuplicateBuildProduct, "path", path)
	}
	p.seen[path] = struct{}{}
	p.items = append(p.items, BuildProduct{Path: path, Type: typ})
	return nil
}

// Items returns the registered products in insertion order.
func (p *BuildProducts) Items() []BuildProduct {
	out := make([]BuildProduct, len(p.items))
	copy(out, p.items)
	return out
}

// Len returns the number of registered products.
func (p *BuildProducts) Len() int {
	return len(p.items)
}
