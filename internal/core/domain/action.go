package domain

import "strings"

// ActionKind classifies build actions.
type ActionKind int

const (
	// ActionCompile turns one translation unit into an object file.
	ActionCompile ActionKind = iota
	// ActionLink combines object files and libraries into a binary.
	ActionLink
)

// String returns the lower-case name of the kind.
func (k ActionKind) String() string {
	if k == ActionLink {
		return "link"
	}
	return "compile"
}

// MarshalText implements encoding.TextMarshaler.
func (k ActionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Action is a single unit of build work with explicit inputs and outputs.
// Actions are descriptions only; executing them is the job of an external executor.
type Action struct {
	Kind               ActionKind        `json:"kind"`
	Description        string            `json:"description"`
	Prerequisites      ArtifactSet       `json:"prerequisites"`
	Produced           ArtifactSet       `json:"produced"`
	DependencyFile     Artifact          `json:"dependencyFile,omitzero"`
	CommandPath        string            `json:"commandPath"`
	Arguments          []string          `json:"arguments"`
	WorkingDir         string            `json:"workingDir"`
	Environment        map[string]string `json:"environment,omitempty"`
	CanExecuteRemotely bool              `json:"canExecuteRemotely"`
}

// CommandLine returns the argument fragments joined into a single command line.
func (a *Action) CommandLine() string {
	return strings.Join(a.Arguments, " ")
}

// AppendArguments adds fragments to the end of the command line.
func (a *Action) AppendArguments(args ...string) {
	a.Arguments = append(a.Arguments, args...)
}

// PrimaryOutput returns the first produced artifact, which names the action in reports.
func (a *Action) PrimaryOutput() Artifact {
	if a.Produced.Len() == 0 {
		return Artifact{}
	}
	return a.Produced.items[0]
}
