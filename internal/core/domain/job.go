package domain

// Job is an abstract description of the binaries to plan.
type Job struct {
	// Path is the job file the description was loaded from.
	Path      string
	Workspace Workspace
	// SDKDir overrides SDK discovery when set.
	SDKDir  string
	Build   BuildConfiguration
	Targets []Target
}

// Target is one binary: its translation units and the link that combines them.
type Target struct {
	Name            string
	Kind            BinaryKind
	OutputPath      string
	IntermediateDir string
	CreateDebugInfo bool
	Compile         CompileSettings
	Libraries       []string
}

// CompileSettings are the per-target inputs of a CompileEnvironment.
type CompileSettings struct {
	SourceFiles                 []string
	UserIncludePaths            []string
	SystemIncludePaths          []string
	Definitions                 []string
	ForceIncludeFiles           []string
	CppStandard                 CppStandard
	GenerateDependencies        bool
	AdditionalArguments         string
	UndefinedIdentifierWarnings bool
	UseInlining                 bool
	PCHAction                   PCHAction
	AllowRemotePCH              bool
}

// Target returns the target with the given name.
func (j *Job) Target(name string) (Target, bool) {
	for _, t := range j.Targets {
		if t.Name == name {
			return t, true
		}
	}
	return Target{}, false
}

// CompileEnvironment builds the compile environment of the target for the given build.
func (t Target) CompileEnvironment(build BuildConfiguration) CompileEnvironment {
	c := t.Compile
	return CompileEnvironment{
		Build:                       build,
		SourceFiles:                 c.SourceFiles,
		UserIncludePaths:            c.UserIncludePaths,
		SystemIncludePaths:          c.SystemIncludePaths,
		Definitions:                 c.Definitions,
		ForceIncludeFiles:           c.ForceIncludeFiles,
		CppStandard:                 c.CppStandard,
		GenerateDependencies:        c.GenerateDependencies,
		AdditionalArguments:         c.AdditionalArguments,
		UndefinedIdentifierWarnings: c.UndefinedIdentifierWarnings,
		UseInlining:                 c.UseInlining,
		PCHAction:                   c.PCHAction,
		AllowRemotePCH:              c.AllowRemotePCH,
		OutputDir:                   t.IntermediateDir,
	}
}

// LinkEnvironment builds the link environment of the target from its object files.
func (t Target) LinkEnvironment(build BuildConfiguration, objects []string) LinkEnvironment {
	return LinkEnvironment{
		Build:             build,
		ObjectFiles:       objects,
		Libraries:         t.Libraries,
		OutputPath:        t.OutputPath,
		IntermediateDir:   t.IntermediateDir,
		IsBuildingLibrary: t.Kind == BinaryStaticLibrary,
		CreateDebugInfo:   t.CreateDebugInfo,
	}
}

// Binary returns the binary the target links.
func (t Target) Binary() Binary {
	return Binary{Kind: t.Kind, OutputPath: t.OutputPath}
}
