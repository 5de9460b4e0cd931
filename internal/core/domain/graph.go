// Package domain contains the core domain models of the WebAssembly toolchain:
// environments, options, actions and the action graph.
package domain

import (
	"iter"
	"strings"

	"go.trai.ch/zerr"
)

// ActionGraph holds build actions indexed by the artifacts they produce.
type ActionGraph struct {
	actions        []*Action
	producers      map[Artifact]int
	executionOrder []int
}

// NewActionGraph creates a new empty ActionGraph.
func NewActionGraph() *ActionGraph {
	return &ActionGraph{
		producers: make(map[Artifact]int),
	}
}

// AddAction adds an action to the graph.
// It returns an error if any produced artifact already has a producer.
func (g *ActionGraph) AddAction(a *Action) error {
	for _, out := range a.Produced.Items() {
		if prev, exists := g.producers[out]; exists {
			err := zerr.With(ErrDuplicateProducer, "artifact", out.String())
			return zerr.With(err, "producer", g.actions[prev].Description)
		}
	}

	idx := len(g.actions)
	g.actions = append(g.actions, a)
	for _, out := range a.Produced.Items() {
		g.producers[out] = idx
	}
	g.executionOrder = nil
	return nil
}

// Len returns the number of actions in the graph.
func (g *ActionGraph) Len() int {
	return len(g.actions)
}

// Producer returns the action producing the artifact, if any.
func (g *ActionGraph) Producer(a Artifact) (*Action, bool) {
	idx, ok := g.producers[a]
	if !ok {
		return nil, false
	}
	return g.actions[idx], true
}

// Validate checks for cycles using a topological sort over producer edges.
// Prerequisites without a producer are leaf inputs. On success the execution order is cached
// for Walk; it is deterministic for a given insertion order.
func (g *ActionGraph) Validate() error {
	order := make([]int, 0, len(g.actions))
	visited := make([]int, len(g.actions)) // 0: unvisited, 1: visiting, 2: visited
	var path []int

	var visit func(u int) error
	visit = func(u int) error {
		visited[u] = 1
		path = append(path, u)

		for _, pre := range g.actions[u].Prerequisites.Items() {
			dep, produced := g.producers[pre]
			if !produced {
				continue
			}
			if visited[dep] == 1 {
				return g.buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		order = append(order, u)
		return nil
	}

	for i := range g.actions {
		if visited[i] == 0 {
			if err := visit(i); err != nil {
				return err
			}
		}
	}

	g.executionOrder = order
	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func (g *ActionGraph) buildCycleError(path []int, dep int) error {
	startIdx := 0
	for i, node := range path {
		if node == dep {
			startIdx = i
			break
		}
	}
	names := make([]string, 0, len(path)-startIdx+1)
	for _, idx := range path[startIdx:] {
		names = append(names, g.actions[idx].PrimaryOutput().String())
	}
	names = append(names, g.actions[dep].PrimaryOutput().String())
	return zerr.With(ErrCycleDetected, "cycle", strings.Join(names, " -> "))
}

// Walk returns an iterator that yields actions in execution order.
// It assumes Validate() has been called and returned nil.
func (g *ActionGraph) Walk() iter.Seq[*Action] {
	return func(yield func(*Action) bool) {
		for _, idx := range g.executionOrder {
			if !yield(g.actions[idx]) {
				return
			}
		}
	}
}
