package sdk

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wasmtc/internal/core/ports"
)

// NodeID is the unique identifier for the SDK detector Graft node.
const NodeID graft.ID = "adapter.sdk_detector"

func init() {
	graft.Register(graft.Node[ports.SDKDetector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SDKDetector, error) {
			return NewDetector(), nil
		},
	})
}
