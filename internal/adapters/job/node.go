package job

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wasmtc/internal/core/ports"
)

// NodeID is the unique identifier for the job loader Graft node.
const NodeID graft.ID = "adapter.job_loader"

func init() {
	graft.Register(graft.Node[ports.JobLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.JobLoader, error) {
			return NewLoader(), nil
		},
	})
}
