// Package toolchain is the WebAssembly toolchain: it resolves the platform options once and
// turns compile and link environments into actions, response files and build products.
package toolchain

import (
	"sync"

	"go.trai.ch/wasmtc/internal/core/domain"
	"go.trai.ch/wasmtc/internal/core/ports"
	"go.trai.ch/wasmtc/internal/engine/actions"
	"go.trai.ch/wasmtc/internal/engine/flags"
	"go.trai.ch/wasmtc/internal/engine/options"
	"go.trai.ch/wasmtc/internal/engine/products"
	"go.trai.ch/wasmtc/internal/engine/response"
)

// Toolchain plans compile and link actions for one SDK and one set of platform options.
type Toolchain struct {
	sdk     domain.SDKInfo
	opts    domain.ToolchainOptions
	builder *actions.Builder
	logger  ports.Logger

	reportOnce sync.Once
}

// New resolves the platform options and creates a Toolchain.
// It fails when the SDK is not installed.
func New(sdk domain.SDKInfo, store ports.OptionStore, ws domain.Workspace, logger ports.Logger) (*Toolchain, error) {
	opts, err := options.Resolve(sdk, store)
	if err != nil {
		return nil, err
	}

	return &Toolchain{
		sdk:     sdk,
		opts:    opts,
		builder: actions.NewBuilder(flags.NewComposer(opts, ws), sdk, ws),
		logger:  logger,
	}, nil
}

// Options returns the resolved platform options.
func (t *Toolchain) Options() domain.ToolchainOptions {
	return t.opts
}

// SDK returns the SDK the toolchain invokes.
func (t *Toolchain) SDK() domain.SDKInfo {
	return t.sdk
}

// CompileFiles creates the compile actions of env. The optimization level of the first
// compiled environment is reported once per toolchain.
func (t *Toolchain) CompileFiles(env *domain.CompileEnvironment) (actions.CompileOutput, error) {
	t.reportOnce.Do(func() {
		if t.logger != nil {
			t.logger.Info("wasmtc toolchain: " + flags.DescribeOptimization(env.Build))
		}
	})
	return t.builder.Compile(env)
}

// LinkFiles creates the link action of env together with its response file.
func (t *Toolchain) LinkFiles(env *domain.LinkEnvironment) (*domain.Action, domain.ResponseFile, error) {
	plan, err := t.builder.Link(env)
	if err != nil {
		return nil, domain.ResponseFile{}, err
	}
	rf, err := response.Emit(&plan)
	if err != nil {
		return nil, domain.ResponseFile{}, err
	}
	return plan.Action, rf, nil
}

// ModifyBuildProducts declares the files that accompany bin.
func (t *Toolchain) ModifyBuildProducts(bin domain.Binary, out *domain.BuildProducts) error {
	return products.Register(bin, out)
}
