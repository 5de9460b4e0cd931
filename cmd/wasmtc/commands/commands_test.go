package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wasmtc/cmd/wasmtc/commands"
	"go.trai.ch/wasmtc/internal/app"
	"go.trai.ch/wasmtc/internal/build"
)

type mockApp struct {
	planFunc  func(ctx context.Context, jobPath string, opts app.PlanOptions) (*app.Report, error)
	flagsFunc func(ctx context.Context, jobPath string, opts app.FlagsOptions) ([]string, error)
	cleaned   bool
}

func (m *mockApp) Plan(ctx context.Context, jobPath string, opts app.PlanOptions) (*app.Report, error) {
	if m.planFunc != nil {
		return m.planFunc(ctx, jobPath, opts)
	}
	return &app.Report{}, nil
}

func (m *mockApp) Flags(ctx context.Context, jobPath string, opts app.FlagsOptions) ([]string, error) {
	if m.flagsFunc != nil {
		return m.flagsFunc(ctx, jobPath, opts)
	}
	return nil, nil
}

func (m *mockApp) Clean(_ context.Context) error {
	m.cleaned = true
	return nil
}

type logSettings struct {
	verbose, json bool
}

func (l *logSettings) SetVerbose(enable bool) { l.verbose = enable }
func (l *logSettings) SetJSON(enable bool)    { l.json = enable }

func TestCommands_Plan(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.PlanOptions
		var capturedPath string

		mock := &mockApp{
			planFunc: func(_ context.Context, jobPath string, opts app.PlanOptions) (*app.Report, error) {
				capturedPath = jobPath
				capturedOpts = opts
				return &app.Report{Job: jobPath}, nil
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{
			"plan", "game/wasmtc.yaml",
			"-c", "shipping", "--optimize-for-size",
			"-t", "game", "-t", "core",
			"--write", "--record", "--trace",
		})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "game/wasmtc.yaml", capturedPath)
		assert.Equal(t, app.PlanOptions{
			Configuration:   "shipping",
			OptimizeForSize: true,
			Targets:         []string{"game", "core"},
			Write:           true,
			Record:          true,
			Trace:           true,
		}, capturedOpts)
	})

	t.Run("defaults to the current directory", func(t *testing.T) {
		var capturedPath string
		mock := &mockApp{
			planFunc: func(_ context.Context, jobPath string, _ app.PlanOptions) (*app.Report, error) {
				capturedPath = jobPath
				return &app.Report{}, nil
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"plan"})
		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, ".", capturedPath)
	})

	t.Run("writes json", func(t *testing.T) {
		mock := &mockApp{
			planFunc: func(_ context.Context, _ string, _ app.PlanOptions) (*app.Report, error) {
				return &app.Report{Job: "wasmtc.yaml", Configuration: "Debug"}, nil
			},
		}

		out := new(bytes.Buffer)
		cli := commands.New(mock)
		cli.SetOutput(out, new(bytes.Buffer))
		cli.SetArgs([]string{"plan", "--format", "json"})
		require.NoError(t, cli.Execute(context.Background()))

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
		assert.Equal(t, "wasmtc.yaml", decoded["job"])
		assert.Equal(t, "Debug", decoded["configuration"])
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"plan", "--format", "yaml"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), commands.ErrUnsupportedFormat.Error())
	})

	t.Run("returns error on plan failure", func(t *testing.T) {
		mock := &mockApp{
			planFunc: func(_ context.Context, _ string, _ app.PlanOptions) (*app.Report, error) {
				return nil, errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"plan"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Flags(t *testing.T) {
	var capturedOpts app.FlagsOptions
	mock := &mockApp{
		flagsFunc: func(_ context.Context, _ string, opts app.FlagsOptions) ([]string, error) {
			capturedOpts = opts
			return []string{`"emcc.py"`, "-O3"}, nil
		},
	}

	out := new(bytes.Buffer)
	cli := commands.New(mock)
	cli.SetOutput(out, new(bytes.Buffer))
	cli.SetArgs([]string{"flags", "--target", "game", "-k", "link", "-s", "a.cpp"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "game", capturedOpts.Target)
	assert.Equal(t, app.FlagKindLink, capturedOpts.Kind)
	assert.Equal(t, "a.cpp", capturedOpts.Source)
	assert.Equal(t, "\"emcc.py\"\n-O3\n", out.String())
}

func TestCommands_Clean(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"clean"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, mock.cleaned)
}

func TestCommands_LogSettings(t *testing.T) {
	settings := &logSettings{}
	cli := commands.New(&mockApp{}, commands.WithLogSettings(settings))
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"clean", "--verbose", "--json-logs"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, settings.verbose)
	assert.True(t, settings.json)
}

func TestCommands_VerboseShorthand(t *testing.T) {
	settings := &logSettings{}
	cli := commands.New(&mockApp{}, commands.WithLogSettings(settings))
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"clean", "-v"})

	require.NotPanics(t, func() {
		require.NoError(t, cli.Execute(context.Background()))
	})
	assert.True(t, settings.verbose)
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	require.NotPanics(t, func() {
		require.NoError(t, cli.Execute(context.Background()))
	})
	assert.Contains(t, buf.String(), "wasmtc version "+build.Version)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NotPanics(t, func() {
		require.NoError(t, cli.Execute(context.Background()))
	})

	assert.Contains(t, buf.String(), build.Version)
}
