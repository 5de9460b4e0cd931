// Package response emits the response file that carries a link's flags and inputs.
package response

import (
	"path/filepath"

	"go.trai.ch/wasmtc/internal/core/domain"
	"go.trai.ch/wasmtc/internal/engine/actions"
	"go.trai.ch/zerr"
)

// Ext is appended to the output file name to form the response file name.
const Ext = ".response"

// Path returns the response file path of a link output. It lives in the intermediate
// directory, or next to the output when no intermediate directory is set.
func Path(output, intermediateDir string) string {
	dir := intermediateDir
	if dir == "" {
		dir = filepath.Dir(output)
	}
	return filepath.Join(dir, filepath.Base(output)+Ext)
}

// Emit builds the response file of a link plan and attaches it to the link action: the file
// becomes a prerequisite and an @-reference to it is appended to the command line.
// A response file is always produced, even for a link with no inputs.
func Emit(plan *actions.LinkPlan) (domain.ResponseFile, error) {
	if plan.Action == nil || plan.OutputPath == "" {
		return domain.ResponseFile{}, zerr.With(domain.ErrMissingOutputPath, "intermediate_dir", plan.IntermediateDir)
	}

	lines := make([]string, 0, len(plan.FlagLines)+len(plan.ObjectFiles)+len(plan.Libraries)+1)
	lines = append(lines, plan.FlagLines...)
	for _, obj := range plan.ObjectFiles {
		lines = append(lines, domain.Quote(obj))
	}
	for _, lib := range plan.Libraries {
		lines = append(lines, lib.Line())
	}
	lines = append(lines, "-o "+domain.Quote(plan.OutputPath))

	rf := domain.ResponseFile{
		Path:  Path(plan.OutputPath, plan.IntermediateDir),
		Lines: lines,
	}

	plan.Action.AppendArguments("@" + domain.Quote(rf.Path))
	plan.Action.Prerequisites.AddPaths(rf.Path)

	return rf, nil
}
