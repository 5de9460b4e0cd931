package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// CppStandard is the C++ language standard requested by a compile environment.
type CppStandard int

const (
	// CppStandardDefault lets the toolchain pick its default standard.
	CppStandardDefault CppStandard = iota
	// CppStandard14 requests C++14.
	CppStandard14
	// CppStandard17 requests C++17.
	CppStandard17
	// CppStandardLatest requests the newest standard the toolchain supports.
	CppStandardLatest
	// CppStandard20 requests C++20, which the WebAssembly toolchain has no flag for.
	CppStandard20
)

// String returns the canonical name of the standard.
func (s CppStandard) String() string {
	switch s {
	case CppStandardDefault:
		return "default"
	case CppStandard14:
		return "c++14"
	case CppStandard17:
		return "c++17"
	case CppStandardLatest:
		return "latest"
	case CppStandard20:
		return "c++20"
	default:
		return "unknown"
	}
}

// ParseCppStandard parses a standard name such as "c++17", "cpp17" or "latest".
func ParseCppStandard(s string) (CppStandard, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "cpp", "c++") {
	case "", "default":
		return CppStandardDefault, nil
	case "c++14":
		return CppStandard14, nil
	case "c++17":
		return CppStandard17, nil
	case "latest":
		return CppStandardLatest, nil
	case "c++20":
		return CppStandard20, nil
	default:
		return 0, zerr.With(ErrUnsupportedCppStandard, "standard", s)
	}
}

// PCHAction describes how a compile environment uses precompiled headers.
type PCHAction int

const (
	// PCHNone compiles without a precompiled header.
	PCHNone PCHAction = iota
	// PCHInclude consumes an existing precompiled header.
	PCHInclude
	// PCHCreate produces a precompiled header.
	PCHCreate
)

// String returns the canonical name of the action.
func (p PCHAction) String() string {
	switch p {
	case PCHInclude:
		return "include"
	case PCHCreate:
		return "create"
	default:
		return "none"
	}
}

// ParsePCHAction parses a precompiled header action name.
func ParsePCHAction(s string) (PCHAction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return PCHNone, nil
	case "include":
		return PCHInclude, nil
	case "create":
		return PCHCreate, nil
	default:
		return 0, zerr.With(ErrUnsupportedPCHAction, "pch", s)
	}
}

// CompileEnvironment describes one batch of translation units sharing compiler settings.
type CompileEnvironment struct {
	Build                       BuildConfiguration
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
	OutputDir                   string
}

// LinkEnvironment describes one binary to be linked.
type LinkEnvironment struct {
	Build             BuildConfiguration
	ObjectFiles       []string
	Libraries         []string
	OutputPath        string
	IntermediateDir   string
	IsBuildingLibrary bool
	CreateDebugInfo   bool
}
