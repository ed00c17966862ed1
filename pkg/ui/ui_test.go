package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTerminal(t *testing.T) {
	term := NewTerminal()
	require.NotNil(t, term)

	// None of the notification methods may terminate the process or
	// panic; rendering is exercised directly.
	term.Header("Demo · greet")
	term.Info("loading")
	term.Error("failed")
	term.Success("done")
	term.Fatal("fatal")
}

func TestStartTaskLifecycle(t *testing.T) {
	term := NewTerminal()

	task := term.StartTask("Executing command")
	require.NotNil(t, task)

	task.Progress(-5)
	task.Progress(40)
	task.Progress(30) // regressions are ignored
	task.Progress(400)
	task.Done()
}

func TestProgressTaskClamping(t *testing.T) {
	task := &progressTask{bar: nil, current: 0}

	// With no bar updates possible we only exercise the clamp logic on
	// values that do not move the bar.
	task.current = 100
	task.Progress(150)
	assert.Equal(t, 100, task.current)

	task.current = 50
	task.Progress(-10)
	assert.Equal(t, 50, task.current)
}

func TestSilentTask(t *testing.T) {
	var task Task = silentTask{}
	task.Progress(50)
	task.Done()
}
