// Package app implements the application layer for wasmtc.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"go.trai.ch/wasmtc/internal/core/domain"
	"go.trai.ch/wasmtc/internal/core/ports"
	"go.trai.ch/wasmtc/internal/engine/toolchain"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	jobs     ports.JobLoader
	options  ports.OptionStoreLoader
	sdks     ports.SDKDetector
	resolver ports.InputResolver
	hasher   ports.Hasher
	verifier ports.Verifier
	store    ports.FingerprintStore
	writer   ports.IntermediateFileWriter
	tracer   ports.Tracer
	logger   ports.Logger
	stateDir string
}

// New creates a new App instance.
func New(
	jobs ports.JobLoader,
	options ports.OptionStoreLoader,
	sdks ports.SDKDetector,
	resolver ports.InputResolver,
	hasher ports.Hasher,
	verifier ports.Verifier,
	store ports.FingerprintStore,
	writer ports.IntermediateFileWriter,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		jobs:     jobs,
		options:  options,
		sdks:     sdks,
		resolver: resolver,
		hasher:   hasher,
		verifier: verifier,
		store:    store,
		writer:   writer,
		tracer:   tracer,
		logger:   log,
		stateDir: domain.DefaultStateDir,
	}
}

// WithStateDir changes the directory removed by Clean.
func (a *App) WithStateDir(dir string) *App {
	a.stateDir = dir
	return a
}

// PlanOptions configuration for the Plan method.
type PlanOptions struct {
	// Configuration overrides the job's configuration when set.
	Configuration string
	// OptimizeForSize forces size optimization for Shipping builds.
	OptimizeForSize bool
	// Targets restricts planning to the named targets. Empty means every target.
	Targets []string
	// Write materializes response files.
	Write bool
	// Record stores the action keys so the next plan reports unchanged actions as up to date.
	Record bool
	// Trace attaches span timings to the report.
	Trace bool
}

// session is a loaded job together with the toolchain built for it.
type session struct {
	job       *domain.Job
	build     domain.BuildConfiguration
	toolchain *toolchain.Toolchain
}

func (a *App) open(ctx context.Context, jobPath, configuration string, optimizeForSize bool) (*session, error) {
	_, span := a.tracer.Start(ctx, "load")
	defer span.End()

	job, err := a.jobs.Load(jobPath)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, "failed to load job")
	}
	span.SetAttribute("job", job.Path)

	build := job.Build
	if configuration != "" {
		cfg, err := domain.ParseConfiguration(configuration)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		build.Configuration = cfg
	}
	build.OptimizeForSize = build.OptimizeForSize || optimizeForSize

	sdk, err := a.sdks.Detect(job.SDKDir)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, "failed to detect sdk")
	}
	if sdk.Installed {
		a.logger.Debug(fmt.Sprintf("using sdk %s at %s", sdk.Version, sdk.Root))
	}

	store, err := a.options.Load(job.Workspace)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, "failed to load platform options")
	}

	tc, err := toolchain.New(sdk, store, job.Workspace, a.logger)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, "failed to create toolchain")
	}

	opts := tc.Options()
	a.logger.Debug(fmt.Sprintf(
		"options: multithreading=%t offscreen_canvas=%t tracing=%t profiler=%s",
		opts.Multithreading, opts.OffscreenCanvas, opts.Tracing, opts.Profiler,
	))

	return &session{job: job, build: build, toolchain: tc}, nil
}

// selectTargets returns the requested targets sorted by name.
func selectTargets(job *domain.Job, names []string) ([]domain.Target, error) {
	var targets []domain.Target
	if len(names) == 0 {
		targets = slices.Clone(job.Targets)
	} else {
		for _, name := range names {
			t, ok := job.Target(name)
			if !ok {
				return nil, zerr.With(domain.ErrTargetNotFound, "target", name)
			}
			targets = append(targets, t)
		}
	}

	slices.SortStableFunc(targets, func(a, b domain.Target) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		default:
			return 0
		}
	})
	return slices.CompactFunc(targets, func(a, b domain.Target) bool { return a.Name == b.Name }), nil
}

// planned is the result of building the action graph of a session.
type planned struct {
	graph         *domain.ActionGraph
	targetOf      map[*domain.Action]string
	responseFiles []domain.ResponseFile
	products      domain.BuildProducts
}

func (a *App) compileEnvironment(s *session, t domain.Target) (domain.CompileEnvironment, error) {
	env := t.CompileEnvironment(s.build)
	if len(t.Compile.SourceFiles) == 0 {
		env.SourceFiles = nil
		return env, nil
	}
	sources, err := a.resolver.ResolveInputs(t.Compile.SourceFiles, filepath.Dir(s.job.Path))
	if err != nil {
		return env, zerr.With(zerr.Wrap(err, "failed to resolve sources"), "target", t.Name)
	}
	env.SourceFiles = sources
	return env, nil
}

func (a *App) buildGraph(ctx context.Context, s *session, targets []domain.Target) (*planned, error) {
	p := &planned{
		graph:    domain.NewActionGraph(),
		targetOf: make(map[*domain.Action]string),
	}

	for _, t := range targets {
		if err := a.planTarget(ctx, s, t, p); err != nil {
			return nil, err
		}
	}

	if err := p.graph.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (a *App) planTarget(ctx context.Context, s *session, t domain.Target, p *planned) (err error) {
	_, span := a.tracer.Start(ctx, "target "+t.Name)
	defer func() {
		span.RecordError(err)
		span.End()
	}()

	env, err := a.compileEnvironment(s, t)
	if err != nil {
		return err
	}

	compiled, err := s.toolchain.CompileFiles(&env)
	if err != nil {
		return zerr.With(err, "target", t.Name)
	}
	for _, action := range compiled.Actions {
		if err := p.graph.AddAction(action); err != nil {
			return err
		}
		p.targetOf[action] = t.Name
	}

	linkEnv := t.LinkEnvironment(s.build, compiled.ObjectFiles)
	link, rf, err := s.toolchain.LinkFiles(&linkEnv)
	if err != nil {
		return zerr.With(err, "target", t.Name)
	}
	if err := p.graph.AddAction(link); err != nil {
		return err
	}
	p.targetOf[link] = t.Name
	p.responseFiles = append(p.responseFiles, rf)

	if err := p.products.Add(t.OutputPath, domain.ProductExecutable); err != nil {
		return zerr.With(err, "target", t.Name)
	}
	if err := s.toolchain.ModifyBuildProducts(t.Binary(), &p.products); err != nil {
		return err
	}

	span.SetAttribute("actions", len(compiled.Actions)+1)
	return nil
}

// Plan loads the job at jobPath and plans every requested target into one action graph.
func (a *App) Plan(ctx context.Context, jobPath string, opts PlanOptions) (report *Report, err error) {
	ctx, span := a.tracer.Start(ctx, "plan")
	defer func() {
		span.RecordError(err)
		span.End()
		if report != nil && opts.Trace {
			report.Timings = a.tracer.Timings()
		}
	}()

	s, err := a.open(ctx, jobPath, opts.Configuration, opts.OptimizeForSize)
	if err != nil {
		return nil, err
	}

	targets, err := selectTargets(s.job, opts.Targets)
	if err != nil {
		return nil, err
	}

	p, err := a.buildGraph(ctx, s, targets)
	if err != nil {
		return nil, err
	}

	written := make(map[string]bool, len(p.responseFiles))
	if opts.Write {
		for _, rf := range p.responseFiles {
			changed, err := a.writer.WriteIfChanged(rf.Path, rf.Content())
			if err != nil {
				return nil, err
			}
			written[rf.Path] = changed
		}
	}

	statuses, err := a.fingerprint(ctx, p)
	if err != nil {
		return nil, err
	}

	if opts.Record {
		if err := a.record(statuses); err != nil {
			return nil, err
		}
	}

	return newReport(s, p, statuses, written, opts.Write), nil
}

// actionState is the incremental state of one planned action.
type actionState struct {
	action *domain.Action
	key    string
	status domain.ActionStatus
}

// fingerprint derives the key of every action in execution order. Leaf prerequisites are
// keyed by their content; generated prerequisites are keyed by their producer's key.
func (a *App) fingerprint(ctx context.Context, p *planned) ([]actionState, error) {
	ctx, span := a.tracer.Start(ctx, "fingerprint")
	defer span.End()

	generated := make(map[string][]byte, len(p.responseFiles))
	for _, rf := range p.responseFiles {
		generated[rf.Path] = rf.Content()
	}

	var leaves []string
	seen := make(map[string]struct{})
	for action := range p.graph.Walk() {
		for _, pre := range action.Prerequisites.Items() {
			path := pre.String()
			if _, ok := p.graph.Producer(pre); ok {
				continue
			}
			if _, ok := generated[path]; ok {
				continue
			}
			if _, ok := seen[path]; ok {
				continue
			}
			seen[path] = struct{}{}
			leaves = append(leaves, path)
		}
	}

	hashes, err := a.hasher.HashFiles(ctx, leaves)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	keys := make(map[*domain.Action]string, p.graph.Len())
	states := make([]actionState, 0, p.graph.Len())
	for action := range p.graph.Walk() {
		inputs := make(map[string]string, action.Prerequisites.Len())
		for _, pre := range action.Prerequisites.Items() {
			path := pre.String()
			switch producer, ok := p.graph.Producer(pre); {
			case ok:
				inputs[path] = "action:" + keys[producer]
			case generated[path] != nil:
				inputs[path] = "content:" + string(generated[path])
			default:
				if h, ok := hashes[path]; ok {
					inputs[path] = h
				}
			}
		}

		key := a.hasher.ActionKey(action, inputs)
		keys[action] = key

		status, err := a.status(action, key)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		states = append(states, actionState{action: action, key: key, status: status})
	}

	return states, nil
}

func (a *App) status(action *domain.Action, key string) (domain.ActionStatus, error) {
	primary := action.PrimaryOutput()
	if primary.IsZero() {
		return domain.ActionStatusStale, nil
	}

	fp, err := a.store.Get(primary.String())
	if err != nil {
		return domain.ActionStatusUnknown, err
	}
	if fp == nil || fp.ActionKey != key {
		return domain.ActionStatusStale, nil
	}

	exists, err := a.verifier.VerifyOutputs(action.Produced.Paths())
	if err != nil {
		return domain.ActionStatusUnknown, err
	}
	if !exists {
		return domain.ActionStatusStale, nil
	}
	return domain.ActionStatusUpToDate, nil
}

func (a *App) record(states []actionState) error {
	now := time.Now()
	for _, st := range states {
		primary := st.action.PrimaryOutput()
		if primary.IsZero() {
			continue
		}
		if err := a.store.Put(domain.Fingerprint{
			Artifact:  primary.String(),
			ActionKey: st.key,
			Timestamp: now,
		}); err != nil {
			return err
		}
	}
	a.logger.Debug(fmt.Sprintf("recorded %d action fingerprints", len(states)))
	return nil
}

// FlagKind selects the flag set printed by Flags.
type FlagKind string

const (
	// FlagKindCompile prints the compile command line of one source file.
	FlagKindCompile FlagKind = "compile"
	// FlagKindLink prints the link response file lines.
	FlagKindLink FlagKind = "link"
)

// FlagsOptions configuration for the Flags method.
type FlagsOptions struct {
	Target          string
	Kind            FlagKind
	Source          string
	Configuration   string
	OptimizeForSize bool
}

// Flags returns the composed flags of one target, one fragment per line.
func (a *App) Flags(ctx context.Context, jobPath string, opts FlagsOptions) (lines []string, err error) {
	ctx, span := a.tracer.Start(ctx, "flags")
	defer func() {
		span.RecordError(err)
		span.End()
	}()

	s, err := a.open(ctx, jobPath, opts.Configuration, opts.OptimizeForSize)
	if err != nil {
		return nil, err
	}

	var target domain.Target
	switch {
	case opts.Target != "":
		t, ok := s.job.Target(opts.Target)
		if !ok {
			return nil, zerr.With(domain.ErrTargetNotFound, "target", opts.Target)
		}
		target = t
	case len(s.job.Targets) > 0:
		targets, _ := selectTargets(s.job, nil)
		target = targets[0]
	default:
		return nil, zerr.With(domain.ErrTargetNotFound, "job", s.job.Path)
	}

	switch opts.Kind {
	case FlagKindCompile, "":
		env, err := a.compileEnvironment(s, target)
		if err != nil {
			return nil, err
		}
		if opts.Source != "" {
			src := opts.Source
			if abs, err := filepath.Abs(src); err == nil {
				src = abs
			}
			env.SourceFiles = []string{src}
		}
		if len(env.SourceFiles) == 0 {
			return nil, zerr.With(domain.ErrNoSourceFiles, "target", target.Name)
		}
		env.SourceFiles = env.SourceFiles[:1]

		out, err := s.toolchain.CompileFiles(&env)
		if err != nil {
			return nil, err
		}
		return out.Actions[0].Arguments, nil
	case FlagKindLink:
		env, err := a.compileEnvironment(s, target)
		if err != nil {
			return nil, err
		}
		out, err := s.toolchain.CompileFiles(&env)
		if err != nil {
			return nil, err
		}
		linkEnv := target.LinkEnvironment(s.build, out.ObjectFiles)
		_, rf, err := s.toolchain.LinkFiles(&linkEnv)
		if err != nil {
			return nil, err
		}
		return rf.Lines, nil
	default:
		return nil, zerr.With(domain.ErrUnknownFlagKind, "kind", string(opts.Kind))
	}
}

// Clean removes the incremental state directory.
func (a *App) Clean(_ context.Context) error {
	if err := a.store.Close(); err != nil {
		return zerr.Wrap(err, "failed to close fingerprint store")
	}

	if _, err := os.Stat(a.stateDir); errors.Is(err, os.ErrNotExist) {
		a.logger.Info("nothing to clean")
		return nil
	}

	a.logger.Info(fmt.Sprintf("removing %s...", a.stateDir))
	if err := os.RemoveAll(a.stateDir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove state directory"), "path", a.stateDir)
	}
	a.logger.Info(fmt.Sprintf("removed %s", a.stateDir))
	return nil
}

// Close flushes the tracer and releases the fingerprint store.
func (a *App) Close(ctx context.Context) error {
	return errors.Join(
		zerr.Wrap(a.tracer.Shutdown(ctx), "failed to shut down tracer"),
		zerr.Wrap(a.store.Close(), "failed to close fingerprint store"),
	)
}
