package job

// JobFile represents the structure of a wasmtc.yaml or wasmtc.hcl job file.
type JobFile struct {
	Engine          string      `yaml:"engine" hcl:"engine,optional"`
	EngineSource    string      `yaml:"engineSource" hcl:"engine_source,optional"`
	Project         string      `yaml:"project" hcl:"project,optional"`
	SDK             string      `yaml:"sdk" hcl:"sdk,optional"`
	Platform        string      `yaml:"platform" hcl:"platform,optional"`
	Configuration   string      `yaml:"configuration" hcl:"configuration,optional"`
	OptimizeForSize bool        `yaml:"optimizeForSize" hcl:"optimize_for_size,optional"`
	Targets         []TargetDTO `yaml:"targets" hcl:"target,block"`
}

// TargetDTO represents a target definition in the job file.
type TargetDTO struct {
	Name            string      `yaml:"name" hcl:"name,label"`
	Kind            string      `yaml:"kind" hcl:"kind,optional"`
	Output          string      `yaml:"output" hcl:"output"`
	Intermediate    string      `yaml:"intermediate" hcl:"intermediate,optional"`
	CreateDebugInfo bool        `yaml:"createDebugInfo" hcl:"create_debug_info,optional"`
	Compile         *CompileDTO `yaml:"compile" hcl:"compile,block"`
	Libraries       []string    `yaml:"libraries" hcl:"libraries,optional"`
}

// CompileDTO represents the compile settings of a target.
type CompileDTO struct {
	Sources                     []string `yaml:"sources" hcl:"sources,optional"`
	Includes                    []string `yaml:"includes" hcl:"includes,optional"`
	SystemIncludes              []string `yaml:"systemIncludes" hcl:"system_includes,optional"`
	Definitions                 []string `yaml:"definitions" hcl:"definitions,optional"`
	ForceIncludes               []string `yaml:"forceIncludes" hcl:"force_includes,optional"`
	CppStandard                 string   `yaml:"cppStandard" hcl:"cpp_standard,optional"`
	Dependencies                bool     `yaml:"dependencies" hcl:"dependencies,optional"`
	AdditionalArguments         string   `yaml:"additionalArguments" hcl:"additional_arguments,optional"`
	UndefinedIdentifierWarnings bool     `yaml:"undefinedIdentifierWarnings" hcl:"undefined_identifier_warnings,optional"`
	Inlining                    bool     `yaml:"inlining" hcl:"inlining,optional"`
	PCH                         string   `yaml:"pch" hcl:"pch,optional"`
	AllowRemotePCH              bool     `yaml:"allowRemotePCH" hcl:"allow_remote_pch,optional"`
}
