package runner

import (
	"github.com/modrun-cli/modrun/pkg/types"
	"github.com/modrun-cli/modrun/pkg/ui"
)

// execContext is the capability bundle handed to a command for the
// duration of one invocation: progress wired to the scoped UI task,
// logging wired to the info notification. It carries no other state.
type execContext struct {
	task ui.Task
	sink ui.UI
}

var _ types.Context = (*execContext)(nil)

func (c *execContext) Progress(completed int) {
	c.task.Progress(completed)
}

func (c *execContext) Log(msg string) {
	c.sink.Info(msg)
}
