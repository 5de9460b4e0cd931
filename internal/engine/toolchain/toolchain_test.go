package toolchain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wasmtc/internal/core/domain"
	"go.trai.ch/wasmtc/internal/core/ports/mocks"
	"go.trai.ch/wasmtc/internal/engine/options"
	"go.trai.ch/wasmtc/internal/engine/toolchain"
	"go.uber.org/mock/gomock"
)

var sdk = domain.SDKInfo{
	Installed: true,
	Python:    "/sdk/python3",
	Compiler:  "/sdk/emcc.py",
}

func newStore(ctrl *gomock.Controller, multithreading bool) *mocks.MockOptionStore {
	store := mocks.NewMockOptionStore(ctrl)
	store.EXPECT().GetBool(options.Section, options.KeyMultithreading).Return(multithreading, true).AnyTimes()
	store.EXPECT().GetBool(options.Section, gomock.Any()).Return(false, false).AnyTimes()
	store.EXPECT().GetString(options.Section, gomock.Any()).Return("", false).AnyTimes()
	return store
}

func TestNew_SDKMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, err := toolchain.New(domain.SDKInfo{}, newStore(ctrl, false), domain.Workspace{}, mocks.NewMockLogger(ctrl))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrSDKNotInstalled.Error())
}

func TestCompileFiles_ReportsOptimizationOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info("wasmtc toolchain: Shipping -Oz favor size over speed").Times(1)

	tc, err := toolchain.New(sdk, newStore(ctrl, true), domain.Workspace{}, logger)
	require.NoError(t, err)
	assert.True(t, tc.Options().Multithreading)

	env := &domain.CompileEnvironment{
		Build:       domain.BuildConfiguration{Configuration: domain.ConfigurationShipping, OptimizeForSize: true},
		SourceFiles: []string{"/src/a.cpp"},
		OutputDir:   "/obj",
	}
	for range 3 {
		out, err := tc.CompileFiles(env)
		require.NoError(t, err)
		require.Len(t, out.Actions, 1)
		assert.Contains(t, out.Actions[0].Arguments, "-s USE_PTHREADS=1")
	}
}

func TestLinkFiles_AttachesResponseFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	tc, err := toolchain.New(sdk, newStore(ctrl, false), domain.Workspace{}, mocks.NewMockLogger(ctrl))
	require.NoError(t, err)

	action, rf, err := tc.LinkFiles(&domain.LinkEnvironment{
		Build:           domain.BuildConfiguration{Configuration: domain.ConfigurationDebug},
		ObjectFiles:     []string{"/obj/a.cpp.o"},
		OutputPath:      "/out/game.js",
		IntermediateDir: "/obj",
	})
	require.NoError(t, err)

	assert.Equal(t, "/obj/game.js.response", rf.Path)
	assert.Equal(t, []string{`"/sdk/emcc.py"`, `@"/obj/game.js.response"`}, action.Arguments)
	assert.Equal(t, []string{"/obj/a.cpp.o", "/obj/game.js.response"}, action.Prerequisites.Paths())
	assert.Equal(t, `-o "/out/game.js"`, rf.Lines[len(rf.Lines)-1])
	assert.Equal(t, `"/obj/a.cpp.o"`, rf.Lines[1])
}

func TestLinkFiles_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	tc, err := toolchain.New(sdk, newStore(ctrl, false), domain.Workspace{}, mocks.NewMockLogger(ctrl))
	require.NoError(t, err)

	_, _, err = tc.LinkFiles(&domain.LinkEnvironment{OutputPath: "/out/game.js"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrNoObjectFiles.Error())
}

func TestModifyBuildProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	tc, err := toolchain.New(sdk, newStore(ctrl, false), domain.Workspace{}, mocks.NewMockLogger(ctrl))
	require.NoError(t, err)

	var out domain.BuildProducts
	require.NoError(t, tc.ModifyBuildProducts(domain.Binary{OutputPath: "/out/game.js"}, &out))
	assert.Equal(t, 2, out.Len())
}
