package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wasmtc/internal/core/domain"
)

func TestParseProfilerMode(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.ProfilerMode
	}{
		{"cpu", domain.ProfilerCPU},
		{"CPU", domain.ProfilerCPU},
		{"Memory", domain.ProfilerMemory},
		{"thread", domain.ProfilerThread},
		{" Thread ", domain.ProfilerThread},
		{"", domain.ProfilerNone},
		{"gpu", domain.ProfilerNone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.ParseProfilerMode(tt.input))
		})
	}
}

func TestToolchainOptions_ThreadProfilerActive(t *testing.T) {
	assert.False(t, domain.ToolchainOptions{Profiler: domain.ProfilerThread}.ThreadProfilerActive())
	assert.True(t, domain.ToolchainOptions{Profiler: domain.ProfilerThread, Multithreading: true}.ThreadProfilerActive())
	assert.False(t, domain.ToolchainOptions{Profiler: domain.ProfilerCPU, Multithreading: true}.ThreadProfilerActive())
}

func TestToolchainOptions_LibraryDir(t *testing.T) {
	assert.Equal(t, "lib-3.1.39-up", domain.ToolchainOptions{}.LibraryDir("3.1.39"))
	assert.Equal(t, "lib-3.1.39-up-mt", domain.ToolchainOptions{Multithreading: true}.LibraryDir("3.1.39"))
}

func TestParseConfiguration(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.Configuration
		wantErr  bool
	}{
		{"Debug", domain.ConfigurationDebug, false},
		{"development", domain.ConfigurationDevelopment, false},
		{"", domain.ConfigurationDevelopment, false},
		{"SHIPPING", domain.ConfigurationShipping, false},
		{"test", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParseConfiguration(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), domain.ErrUnsupportedConfiguration.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestConfiguration_HasAssertions(t *testing.T) {
	assert.True(t, domain.ConfigurationDebug.HasAssertions())
	assert.True(t, domain.ConfigurationDevelopment.HasAssertions())
	assert.False(t, domain.ConfigurationShipping.HasAssertions())
}

func TestParseCppStandard(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.CppStandard
		wantErr  bool
	}{
		{"", domain.CppStandardDefault, false},
		{"default", domain.CppStandardDefault, false},
		{"c++14", domain.CppStandard14, false},
		{"cpp17", domain.CppStandard17, false},
		{"Latest", domain.CppStandardLatest, false},
		{"C++20", domain.CppStandard20, false},
		{"c++98", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParseCppStandard(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseBinaryKind(t *testing.T) {
	kind, err := domain.ParseBinaryKind("static")
	require.NoError(t, err)
	assert.Equal(t, domain.BinaryStaticLibrary, kind)

	kind, err = domain.ParseBinaryKind("")
	require.NoError(t, err)
	assert.Equal(t, domain.BinaryExecutable, kind)

	_, err = domain.ParseBinaryKind("bundle")
	require.Error(t, err)
}

func TestBuildProducts_RejectsDuplicates(t *testing.T) {
	var p domain.BuildProducts
	require.NoError(t, p.Add("game.wasm", domain.ProductRequiredResource))
	err := p.Add("game.wasm", domain.ProductRequiredResource)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrDuplicateBuildProduct.Error())
	assert.Equal(t, 1, p.Len())
}

func TestWorkspace_IncludePath(t *testing.T) {
	ws := domain.Workspace{
		EngineDir:       "/eng/Engine",
		EngineSourceDir: "/eng/Engine/Source",
	}

	assert.Equal(t, "Runtime/Core/Public", ws.IncludePath("/eng/Engine/Source/Runtime/Core/Public"))
	assert.Equal(t, "../Plugins/Foo", ws.IncludePath("/eng/Engine/Plugins/Foo"))
	assert.Equal(t, "/game/Source", ws.IncludePath("/game/Source"))
	assert.Equal(t, "/eng/EngineExtra/x", ws.IncludePath("/eng/EngineExtra/x"))
	assert.Equal(t, "/eng/Engine/x", domain.Workspace{}.IncludePath("/eng/Engine/x"))
}

func TestActionStatus(t *testing.T) {
	assert.True(t, domain.ActionStatusStale.NeedsRun())
	assert.True(t, domain.ActionStatusUnknown.NeedsRun())
	assert.False(t, domain.ActionStatusUpToDate.NeedsRun())
	assert.Equal(t, domain.ActionStatusUpToDate, domain.NormalizeActionStatus("UP-TO-DATE"))
	assert.Equal(t, domain.ActionStatusUnknown, domain.NormalizeActionStatus("bogus"))
}
