// Package actions turns compile and link environments into build actions.
package actions

import (
	"path/filepath"
	"strings"

	"go.trai.ch/wasmtc/internal/core/domain"
	"go.trai.ch/wasmtc/internal/engine/flags"
	"go.trai.ch/zerr"
)

// ThirdPartyMarker identifies third-party libraries by path substring. Matching is a plain
// substring test on the full path, so any directory or file name containing it qualifies.
const ThirdPartyMarker = "ThirdParty"

// ObjectExt is the extension appended to source file names to form object file names.
const ObjectExt = ".o"

// Builder creates compile and link actions for one toolchain.
type Builder struct {
	composer *flags.Composer
	sdk      domain.SDKInfo
	ws       domain.Workspace
}

// NewBuilder creates a new Builder.
func NewBuilder(composer *flags.Composer, sdk domain.SDKInfo, ws domain.Workspace) *Builder {
	return &Builder{composer: composer, sdk: sdk, ws: ws}
}

// CompileOutput is the result of planning one compile environment.
type CompileOutput struct {
	Actions     []*domain.Action
	ObjectFiles []string
}

// Compile creates one action per source file of env.
// Any error aborts the whole call; no partial output is returned.
func (b *Builder) Compile(env *domain.CompileEnvironment) (CompileOutput, error) {
	global := b.composer.Global(env)
	unit := b.composer.TranslationUnit(env)
	remote := env.PCHAction != domain.PCHCreate || env.AllowRemotePCH

	out := CompileOutput{
		Actions:     make([]*domain.Action, 0, len(env.SourceFiles)),
		ObjectFiles: make([]string, 0, len(env.SourceFiles)),
	}

	for _, src := range env.SourceFiles {
		lang, err := flags.Language(src, env.CppStandard)
		if err != nil {
			return CompileOutput{}, err
		}

		name := filepath.Base(src)
		obj := filepath.Join(env.OutputDir, name+ObjectExt)

		a := &domain.Action{
			Kind:               domain.ActionCompile,
			Description:        name,
			CommandPath:        b.sdk.Python,
			WorkingDir:         b.ws.EngineSourceDir,
			Environment:        b.sdk.Environment,
			CanExecuteRemotely: remote,
		}
		a.Prerequisites.AddPaths(env.ForceIncludeFiles...)
		a.Prerequisites.AddPaths(src)
		a.Produced.AddPaths(obj)

		args := make([]string, 0, 1+len(global)+len(unit)+len(lang)+5)
		args = append(args, b.sdk.QuotedCompiler())
		args = append(args, global...)
		args = append(args, unit...)
		args = append(args, "-c "+domain.Quote(src), "-o "+domain.Quote(obj))
		args = append(args, lang...)

		if env.GenerateDependencies {
			dep := filepath.Join(env.OutputDir, name+".d")
			args = append(args, "-MD", "-MF"+domain.Quote(filepath.ToSlash(dep)))
			a.DependencyFile = domain.NewArtifact(dep)
			a.Produced.AddPaths(dep)
		}

		if extra := strings.TrimSpace(env.AdditionalArguments); extra != "" {
			args = append(args, extra)
		}

		a.Arguments = args
		out.Actions = append(out.Actions, a)
		out.ObjectFiles = append(out.ObjectFiles, obj)
	}

	return out, nil
}

// LibraryRole is the linker role of a library entry, chosen by file suffix.
type LibraryRole int

const (
	// RolePositional passes the library as a plain input.
	RolePositional LibraryRole = iota
	// RoleJSLibrary passes a JavaScript library.
	RoleJSLibrary
	// RolePreJS prepends a script to the generated loader.
	RolePreJS
	// RolePostJS appends a script to the generated loader.
	RolePostJS
)

// LibraryEntry is one classified library of a link.
type LibraryEntry struct {
	Path string
	Role LibraryRole
}

// Line renders the entry as a response file line.
func (e LibraryEntry) Line() string {
	switch e.Role {
	case RoleJSLibrary:
		return "--js-library " + domain.Quote(e.Path)
	case RolePreJS:
		return "--pre-js " + domain.Quote(e.Path)
	case RolePostJS:
		return "--post-js " + domain.Quote(e.Path)
	default:
		return domain.Quote(e.Path)
	}
}

// ClassifyLibrary picks the linker role of a library by its suffix.
// Pre- and post-scripts keep their relative order, which is the order they are applied in.
func ClassifyLibrary(path string) LibraryEntry {
	switch {
	case strings.HasSuffix(path, ".js"):
		return LibraryEntry{Path: path, Role: RoleJSLibrary}
	case strings.HasSuffix(path, ".jspre"):
		return LibraryEntry{Path: path, Role: RolePreJS}
	case strings.HasSuffix(path, ".jspost"):
		return LibraryEntry{Path: path, Role: RolePostJS}
	default:
		return LibraryEntry{Path: path, Role: RolePositional}
	}
}

// PartitionLibraries moves third-party libraries after all others. Both groups keep their
// original relative order. The input slice is not modified.
func PartitionLibraries(libs []string) []string {
	out := make([]string, 0, len(libs))
	var thirdParty []string
	for _, l := range libs {
		if strings.Contains(l, ThirdPartyMarker) {
			thirdParty = append(thirdParty, l)
			continue
		}
		out = append(out, l)
	}
	return append(out, thirdParty...)
}

// LinkPlan is a link action together with the lines its response file must hold.
type LinkPlan struct {
	Action *domain.Action
	// FlagLines are the composed link flags, one line per group.
	FlagLines []string
	// ObjectFiles are the object inputs in link order.
	ObjectFiles []string
	// Libraries are the partitioned, filtered and classified library entries.
	Libraries []LibraryEntry
	// OutputPath is the primary output of the link.
	OutputPath string
	// IntermediateDir is where generated link inputs are placed.
	IntermediateDir string
}

// Link creates the link action of env. The response file is attached separately.
func (b *Builder) Link(env *domain.LinkEnvironment) (LinkPlan, error) {
	if env.OutputPath == "" {
		return LinkPlan{}, zerr.With(domain.ErrMissingOutputPath, "intermediate_dir", env.IntermediateDir)
	}
	if len(env.ObjectFiles) == 0 && !env.IsBuildingLibrary {
		return LinkPlan{}, zerr.With(domain.ErrNoObjectFiles, "output", env.OutputPath)
	}

	a := &domain.Action{
		Kind:               domain.ActionLink,
		Description:        filepath.Base(env.OutputPath),
		CommandPath:        b.sdk.Python,
		Arguments:          []string{b.sdk.QuotedCompiler()},
		WorkingDir:         b.ws.EngineSourceDir,
		Environment:        b.sdk.Environment,
		CanExecuteRemotely: false,
	}

	plan := LinkPlan{
		Action:          a,
		FlagLines:       []string{strings.Join(b.composer.Link(env), " ")},
		ObjectFiles:     append([]string(nil), env.ObjectFiles...),
		OutputPath:      env.OutputPath,
		IntermediateDir: env.IntermediateDir,
	}

	a.Prerequisites.AddPaths(env.ObjectFiles...)

	if !env.IsBuildingLibrary {
		for _, lib := range PartitionLibraries(env.Libraries) {
			if strings.Contains(lib, ".lib") {
				continue
			}
			plan.Libraries = append(plan.Libraries, ClassifyLibrary(lib))
			a.Prerequisites.AddPaths(lib)
		}
	}

	a.Produced.AddPaths(env.OutputPath, WasmPath(env.OutputPath))

	return plan, nil
}

// WasmPath returns the binary blob path accompanying a link output.
func WasmPath(output string) string {
	return strings.TrimSuffix(output, filepath.Ext(output)) + ".wasm"
}
