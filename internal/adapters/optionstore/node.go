package optionstore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wasmtc/internal/core/ports"
)

// NodeID is the unique identifier for the option store loader Graft node.
const NodeID graft.ID = "adapter.option_store_loader"

func init() {
	graft.Register(graft.Node[ports.OptionStoreLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.OptionStoreLoader, error) {
			return NewLoader(), nil
		},
	})
}
