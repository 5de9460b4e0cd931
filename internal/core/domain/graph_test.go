package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wasmtc/internal/core/domain"
	"go.trai.ch/zerr"
)

func newAction(desc string, prereqs []string, produced ...string) *domain.Action {
	a := &domain.Action{Description: desc}
	a.Prerequisites.AddPaths(prereqs...)
	a.Produced.AddPaths(produced...)
	return a
}

func TestActionGraph_AddAction_DuplicateProducer(t *testing.T) {
	g := domain.NewActionGraph()
	require.NoError(t, g.AddAction(newAction("compile a", []string{"a.cpp"}, "out/a.o")))

	err := g.AddAction(newAction("compile a again", []string{"a.cpp"}, "out/a.o"))
	require.Error(t, err)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	meta := zErr.Metadata()
	assert.Equal(t, "out/a.o", meta["artifact"])
	assert.Equal(t, "compile a", meta["producer"])
	assert.Equal(t, 1, g.Len())
}

func TestActionGraph_Validate_CompileBeforeLink(t *testing.T) {
	g := domain.NewActionGraph()
	link := newAction("link", []string{"out/a.o", "out/b.o", "libz.a"}, "game.js", "game.wasm")
	require.NoError(t, g.AddAction(link))
	require.NoError(t, g.AddAction(newAction("compile a", []string{"a.cpp"}, "out/a.o")))
	require.NoError(t, g.AddAction(newAction("compile b", []string{"b.cpp"}, "out/b.o")))

	require.NoError(t, g.Validate())

	var order []string
	for a := range g.Walk() {
		order = append(order, a.Description)
	}
	assert.Equal(t, []string{"compile a", "compile b", "link"}, order)
}

func TestActionGraph_Validate_Cycle(t *testing.T) {
	g := domain.NewActionGraph()
	require.NoError(t, g.AddAction(newAction("A", []string{"b.out"}, "a.out")))
	require.NoError(t, g.AddAction(newAction("B", []string{"a.out"}, "b.out")))

	err := g.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrCycleDetected.Error())

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	cycle, ok := zErr.Metadata()["cycle"].(string)
	require.True(t, ok)
	assert.Equal(t, "a.out -> b.out -> a.out", cycle)
}

func TestActionGraph_Walk_StopsEarly(t *testing.T) {
	g := domain.NewActionGraph()
	require.NoError(t, g.AddAction(newAction("A", nil, "a")))
	require.NoError(t, g.AddAction(newAction("B", nil, "b")))
	require.NoError(t, g.Validate())

	count := 0
	for range g.Walk() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestActionGraph_Producer(t *testing.T) {
	g := domain.NewActionGraph()
	a := newAction("A", nil, "a.o", "a.d")
	require.NoError(t, g.AddAction(a))

	got, ok := g.Producer(domain.NewArtifact("a.d"))
	require.True(t, ok)
	assert.Same(t, a, got)

	_, ok = g.Producer(domain.NewArtifact("missing"))
	assert.False(t, ok)
}

func TestArtifactSet_PreservesOrderAndDedups(t *testing.T) {
	var s domain.ArtifactSet
	s.AddPaths("b", "a", "b", "c", "a")

	assert.Equal(t, []string{"b", "a", "c"}, s.Paths())
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(domain.NewArtifact("c")))
	assert.False(t, s.Contains(domain.NewArtifact("d")))
}

func TestArtifact_Zero(t *testing.T) {
	var a domain.Artifact
	assert.True(t, a.IsZero())
	assert.Empty(t, a.String())
	assert.False(t, domain.NewArtifact("x").IsZero())
}
