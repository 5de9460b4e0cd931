package ports

// InputResolver defines the interface for resolving source inputs.
//
//go:generate mockgen -destination=mocks/resolver_mock.go -package=mocks -source=resolver.go
type InputResolver interface {
	// ResolveInputs expands globs and directories in inputs, relative to root, into concrete
	// file paths. Order follows the input entries; matches within one entry are sorted.
	ResolveInputs(inputs []string, root string) ([]string, error)
}
