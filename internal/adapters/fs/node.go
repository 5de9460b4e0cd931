package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wasmtc/internal/core/ports"
)

const (
	// WalkerNodeID is the Graft node for the directory walker.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// ResolverNodeID is the Graft node for the input resolver.
	ResolverNodeID graft.ID = "adapter.fs.resolver"
	// HasherNodeID is the Graft node for the hasher.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// VerifierNodeID is the Graft node for the output verifier.
	VerifierNodeID graft.ID = "adapter.fs.verifier"
	// WriterNodeID is the Graft node for the intermediate file writer.
	WriterNodeID graft.ID = "adapter.fs.writer"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.InputResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.InputResolver, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(walker), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.Verifier]{
		ID:        VerifierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Verifier, error) {
			return NewVerifier(), nil
		},
	})

	graft.Register(graft.Node[ports.IntermediateFileWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.IntermediateFileWriter, error) {
			return NewWriter(), nil
		},
	})
}
