package modrun

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modrun-cli/modrun/pkg/config"
	"github.com/modrun-cli/modrun/pkg/errors"
	"github.com/modrun-cli/modrun/pkg/ui/uitest"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func writeConfigs(t *testing.T, commandsBody string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	appPath := filepath.Join(dir, "modrun.toml")
	commandsPath := filepath.Join(dir, "commands.toml")

	require.NoError(t, os.WriteFile(appPath, []byte(`
[app]
name = "Demo"
version = "1.0"
description = "A demo CLI"
`), 0o644))
	require.NoError(t, os.WriteFile(commandsPath, []byte(commandsBody), 0o644))

	return appPath, commandsPath
}

func execute(t *testing.T, sink *uitest.Recorder, args ...string) error {
	t.Helper()
	cmd := NewRootCmd(sink)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestRunBuiltinCommand(t *testing.T) {
	appPath, commandsPath := writeConfigs(t, `
[commands]
greet = "builtin:ping"
`)
	sink := &uitest.Recorder{}

	err := execute(t, sink, "--app-config", appPath, "--commands-config", commandsPath, "greet")
	require.NoError(t, err)

	assert.Equal(t, []string{"Demo · greet"}, sink.Texts(uitest.KindHeader))
	assert.Contains(t, sink.Texts(uitest.KindInfo), "pong")
	require.Len(t, sink.Texts(uitest.KindSuccess), 1)

	require.Len(t, sink.Tasks, 1)
	assert.True(t, sink.Tasks[0].Completed)
}

func TestRunNoCommand(t *testing.T) {
	appPath, commandsPath := writeConfigs(t, `
[commands]
greet = "builtin:ping"
`)
	sink := &uitest.Recorder{}

	err := execute(t, sink, "--app-config", appPath, "--commands-config", commandsPath)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUsage))

	assert.Equal(t, []string{"No command specified"}, sink.Texts(uitest.KindError))
	infos := sink.Texts(uitest.KindInfo)
	require.Len(t, infos, 1)
	assert.Contains(t, infos[0], "Usage:")
}

func TestRunUnknownCommand(t *testing.T) {
	appPath, commandsPath := writeConfigs(t, `
[commands]
greet = "builtin:ping"
`)
	sink := &uitest.Recorder{}

	err := execute(t, sink, "--app-config", appPath, "--commands-config", commandsPath, "missing")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCommandNotDefined))
	assert.Empty(t, sink.Texts(uitest.KindSuccess))
}

func TestRunBrokenCommandFile(t *testing.T) {
	appPath, commandsPath := writeConfigs(t, `
[commands]
broken = "nofile.so:Run"
`)
	sink := &uitest.Recorder{}

	err := execute(t, sink, "--app-config", appPath, "--commands-config", commandsPath, "broken")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCommandFileNotFound))

	errs := sink.Texts(uitest.KindError)
	require.NotEmpty(t, errs)
	assert.Equal(t, "Command failed to load", errs[0])
	assert.Empty(t, sink.Texts(uitest.KindSuccess))
}

func TestRunConfigFailure(t *testing.T) {
	dir := t.TempDir()
	sink := &uitest.Recorder{}

	err := execute(t, sink,
		"--app-config", filepath.Join(dir, "nope.toml"),
		"--commands-config", filepath.Join(dir, "nope2.toml"),
		"greet")
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
	assert.Empty(t, sink.Events, "no dispatch output after a configuration failure")
}

func TestInitScaffold(t *testing.T) {
	chdir(t, t.TempDir())
	sink := &uitest.Recorder{}

	require.NoError(t, execute(t, sink, "init"))

	// The scaffold must load cleanly and point at the builtin ping.
	cfg, err := config.Load("modrun.toml", "commands.toml")
	require.NoError(t, err)
	assert.Equal(t, "builtin", cfg.Commands["ping"].Path)
	assert.Equal(t, "ping", cfg.Commands["ping"].Function)
}

func TestInitScaffoldYAML(t *testing.T) {
	chdir(t, t.TempDir())
	sink := &uitest.Recorder{}

	require.NoError(t, execute(t, sink, "init", "--format", "yaml"))

	cfg, err := config.Load("modrun.yaml", "commands.yaml")
	require.NoError(t, err)
	assert.Equal(t, "myapp", cfg.App.Name)
}

func TestInitRefusesOverwrite(t *testing.T) {
	chdir(t, t.TempDir())
	sink := &uitest.Recorder{}

	require.NoError(t, execute(t, sink, "init"))

	err := execute(t, sink, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, execute(t, sink, "init", "--force"))
}

func TestVersionCommand(t *testing.T) {
	sink := &uitest.Recorder{}
	require.NoError(t, execute(t, sink, "version"))
}
