// Package job provides the job file loader for wasmtc.
package job

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"go.trai.ch/wasmtc/internal/core/domain"
	"go.trai.ch/wasmtc/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileNames are the job file names searched for in a directory, in order.
var FileNames = []string{"wasmtc.yaml", "wasmtc.yml", "wasmtc.hcl"}

// defaultIntermediate is the intermediate directory of a target, relative to the job file.
const defaultIntermediate = "Intermediate"

// FileLoader implements ports.JobLoader for YAML and HCL job files.
type FileLoader struct{}

var _ ports.JobLoader = (*FileLoader)(nil)

// NewLoader creates a new FileLoader.
func NewLoader() *FileLoader {
	return &FileLoader{}
}

// Load reads the job at path. When path is a directory, it and its parents are searched
// for the first job file.
func (l *FileLoader) Load(path string) (*domain.Job, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrJobReadFailed.Error()), "path", path)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrJobNotFound, "path", abs)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrJobReadFailed.Error()), "path", abs)
	}

	if info.IsDir() {
		found, ok := Find(abs)
		if !ok {
			return nil, zerr.With(domain.ErrJobNotFound, "path", abs)
		}
		abs = found
	}

	return Load(abs)
}

// Find searches dir and its parents for a job file.
func Find(dir string) (string, bool) {
	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
				return candidate, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Load reads the job file at path and returns a domain.Job.
func Load(path string) (*domain.Job, error) {
	var file JobFile

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrJobReadFailed.Error()), "path", path)
		}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrJobParseFailed.Error()), "path", path)
		}
	case ".hcl":
		parser := hclparse.NewParser()
		hclFile, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, zerr.With(zerr.Wrap(diags, domain.ErrJobParseFailed.Error()), "path", path)
		}
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &file); diags.HasErrors() {
			return nil, zerr.With(zerr.Wrap(diags, domain.ErrJobParseFailed.Error()), "path", path)
		}
	default:
		return nil, zerr.With(domain.ErrUnsupportedJobFormat, "path", path)
	}

	return toDomain(path, &file)
}

func toDomain(path string, file *JobFile) (*domain.Job, error) {
	dir := filepath.Dir(path)
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}

	cfg, err := domain.ParseConfiguration(file.Configuration)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	ws := domain.Workspace{
		EngineDir:       abs(file.Engine),
		EngineSourceDir: abs(file.EngineSource),
		ProjectDir:      abs(file.Project),
		Platform:        file.Platform,
	}
	if ws.ProjectDir == "" {
		ws.ProjectDir = dir
	}
	if ws.EngineSourceDir == "" && ws.EngineDir != "" {
		ws.EngineSourceDir = filepath.Join(ws.EngineDir, "Source")
	}

	job := &domain.Job{
		Path:      path,
		Workspace: ws,
		SDKDir:    abs(file.SDK),
		Build: domain.BuildConfiguration{
			Configuration:   cfg,
			OptimizeForSize: file.OptimizeForSize,
		},
		Targets: make([]domain.Target, 0, len(file.Targets)),
	}

	seen := make(map[string]bool, len(file.Targets))
	for _, dto := range file.Targets {
		if seen[dto.Name] {
			return nil, zerr.With(zerr.With(domain.ErrDuplicateTarget, "target", dto.Name), "path", path)
		}
		seen[dto.Name] = true

		target, err := toTarget(dto, abs)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "target", dto.Name), "path", path)
		}
		job.Targets = append(job.Targets, target)
	}

	return job, nil
}

func toTarget(dto TargetDTO, abs func(string) string) (domain.Target, error) {
	kind, err := domain.ParseBinaryKind(dto.Kind)
	if err != nil {
		return domain.Target{}, err
	}

	intermediate := dto.Intermediate
	if intermediate == "" {
		intermediate = filepath.Join(defaultIntermediate, dto.Name)
	}

	t := domain.Target{
		Name:            dto.Name,
		Kind:            kind,
		OutputPath:      abs(dto.Output),
		IntermediateDir: abs(intermediate),
		CreateDebugInfo: dto.CreateDebugInfo,
		Libraries:       absAll(dto.Libraries, abs),
	}

	if c := dto.Compile; c != nil {
		std, err := domain.ParseCppStandard(c.CppStandard)
		if err != nil {
			return domain.Target{}, err
		}
		pch, err := domain.ParsePCHAction(c.PCH)
		if err != nil {
			return domain.Target{}, err
		}
		t.Compile = domain.CompileSettings{
			// Sources stay as written; they may be globs or directories resolved later.
			SourceFiles:                 c.Sources,
			UserIncludePaths:            absAll(c.Includes, abs),
			SystemIncludePaths:          absAll(c.SystemIncludes, abs),
			Definitions:                 c.Definitions,
			ForceIncludeFiles:           absAll(c.ForceIncludes, abs),
			CppStandard:                 std,
			GenerateDependencies:        c.Dependencies,
			AdditionalArguments:         c.AdditionalArguments,
			UndefinedIdentifierWarnings: c.UndefinedIdentifierWarnings,
			UseInlining:                 c.Inlining,
			PCHAction:                   pch,
			AllowRemotePCH:              c.AllowRemotePCH,
		}
	}

	return t, nil
}

func absAll(paths []string, abs func(string) string) []string {
	if len(paths) == 0 {
		return nil
	}
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = abs(p)
	}
	return out
}
