package response_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wasmtc/internal/core/domain"
	"go.trai.ch/wasmtc/internal/engine/actions"
	"go.trai.ch/wasmtc/internal/engine/response"
)

func newPlan() *actions.LinkPlan {
	a := &domain.Action{Kind: domain.ActionLink, Arguments: []string{`"/sdk/emcc.py"`}}
	a.Prerequisites.AddPaths("/i/a.o", "/i/b.o", "/lib/glue.js", "/e/ThirdParty/libz.a")
	return &actions.LinkPlan{
		Action:      a,
		FlagLines:   []string{"-fdiagnostics-format=msvc -fno-exceptions -O3 --emit-symbol-map"},
		ObjectFiles: []string{"/i/a.o", "/i/b.o"},
		Libraries: []actions.LibraryEntry{
			actions.ClassifyLibrary("/lib/glue.js"),
			actions.ClassifyLibrary("/e/ThirdParty/libz.a"),
		},
		OutputPath:      "/out/game.js",
		IntermediateDir: "/i",
	}
}

func TestEmit_Lines(t *testing.T) {
	plan := newPlan()
	rf, err := response.Emit(plan)
	require.NoError(t, err)

	assert.Equal(t, "/i/game.js.response", rf.Path)

	g := goldie.New(t)
	g.Assert(t, "game_response", rf.Content())
}

func TestEmit_AttachesToAction(t *testing.T) {
	plan := newPlan()
	rf, err := response.Emit(plan)
	require.NoError(t, err)

	args := plan.Action.Arguments
	assert.Equal(t, `@"/i/game.js.response"`, args[len(args)-1])
	assert.True(t, plan.Action.Prerequisites.Contains(domain.NewArtifact(rf.Path)))
	assert.Equal(t, "/i/game.js.response", plan.Action.Prerequisites.Paths()[4])
}

func TestEmit_MinimalLinkStillEmits(t *testing.T) {
	plan := &actions.LinkPlan{
		Action:     &domain.Action{Kind: domain.ActionLink},
		OutputPath: "/out/libcore.a",
	}
	rf, err := response.Emit(plan)
	require.NoError(t, err)
	assert.Equal(t, []string{`-o "/out/libcore.a"`}, rf.Lines)
	assert.Equal(t, "/out/libcore.a.response", rf.Path)
}

func TestEmit_MissingOutput(t *testing.T) {
	_, err := response.Emit(&actions.LinkPlan{Action: &domain.Action{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrMissingOutputPath.Error())
}

func TestPath(t *testing.T) {
	assert.Equal(t, "/i/game.js.response", response.Path("/out/game.js", "/i"))
	assert.Equal(t, "/out/game.js.response", response.Path("/out/game.js", ""))
}
