package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wasmtc/internal/adapters/fs"          //nolint:depguard // Wired in app layer
	"go.trai.ch/wasmtc/internal/adapters/job"         //nolint:depguard // Wired in app layer
	"go.trai.ch/wasmtc/internal/adapters/logger"      //nolint:depguard // Wired in app layer
	"go.trai.ch/wasmtc/internal/adapters/optionstore" //nolint:depguard // Wired in app layer
	"go.trai.ch/wasmtc/internal/adapters/sdk"         //nolint:depguard // Wired in app layer
	"go.trai.ch/wasmtc/internal/adapters/store"       //nolint:depguard // Wired in app layer
	"go.trai.ch/wasmtc/internal/adapters/telemetry"   //nolint:depguard // Wired in app layer
	"go.trai.ch/wasmtc/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			job.NodeID,
			optionstore.NodeID,
			sdk.NodeID,
			fs.ResolverNodeID,
			fs.HasherNodeID,
			fs.VerifierNodeID,
			fs.WriterNodeID,
			store.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log}, nil
		},
	})
}

//nolint:cyclop // dependency fan-in
func runAppNode(ctx context.Context) (*App, error) {
	jobs, err := graft.Dep[ports.JobLoader](ctx)
	if err != nil {
		return nil, err
	}
	options, err := graft.Dep[ports.OptionStoreLoader](ctx)
	if err != nil {
		return nil, err
	}
	sdks, err := graft.Dep[ports.SDKDetector](ctx)
	if err != nil {
		return nil, err
	}
	resolver, err := graft.Dep[ports.InputResolver](ctx)
	if err != nil {
		return nil, err
	}
	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}
	verifier, err := graft.Dep[ports.Verifier](ctx)
	if err != nil {
		return nil, err
	}
	fingerprints, err := graft.Dep[ports.FingerprintStore](ctx)
	if err != nil {
		return nil, err
	}
	writer, err := graft.Dep[ports.IntermediateFileWriter](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(jobs, options, sdks, resolver, hasher, verifier, fingerprints, writer, tracer, log), nil
}
