// Package runner orchestrates one command invocation: configuration
// lookup, dynamic resolution, execution-context construction, timing,
// and failure reporting. It contains no command logic of its own.
package runner

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/modrun-cli/modrun/pkg/errors"
	"github.com/modrun-cli/modrun/pkg/logging"
	"github.com/modrun-cli/modrun/pkg/types"
	"github.com/modrun-cli/modrun/pkg/ui"
)

// Resolver locates the callable behind a command definition.
type Resolver interface {
	Resolve(path, function string) (types.CommandFunc, error)
}

// Runner executes commands defined in configuration.
type Runner struct {
	resolver Resolver
	logger   zerolog.Logger
}

// New creates a Runner on top of the given resolver.
func New(resolver Resolver) *Runner {
	return &Runner{
		resolver: resolver,
		logger:   logging.GetLogger("runner"),
	}
}

// Run executes one configured command. The traversal is linear: lookup,
// header and info notifications, resolution, timed invocation, then a
// success or failure report. Failures are reported through the sink and
// propagated to the caller unchanged; the runner never recovers on the
// command's behalf.
func (r *Runner) Run(cfg *types.Config, name string, args []string, sink ui.UI) error {
	def, ok := cfg.Commands[name]
	if !ok {
		return errors.Newf(errors.ErrCommandNotDefined, "command '%s' not defined", name)
	}

	sink.Header(fmt.Sprintf("%s · %s", cfg.App.Name, name))
	sink.Info(fmt.Sprintf("Loading %s:%s", def.Path, def.Function))

	r.logger.Debug().
		Str("command", name).
		Str("path", def.Path).
		Str("function", def.Function).
		Msg("Resolving command")

	fn, err := r.resolver.Resolve(def.Path, def.Function)
	if err != nil {
		sink.Error("Command failed to load")
		sink.Error(errorTrace(err))
		return err
	}

	start := time.Now()
	task := sink.StartTask("Executing command")
	ctx := &execContext{task: task, sink: sink}

	r.logger.Debug().Str("command", name).Strs("args", args).Msg("Executing command")

	err = invoke(fn, args, ctx)
	task.Done()
	if err != nil {
		sink.Error("Command failed")
		sink.Error(errorTrace(err))
		return err
	}

	elapsed := time.Since(start)
	sink.Success(fmt.Sprintf("Completed in %.2fs", elapsed.Seconds()))
	r.logger.Debug().Str("command", name).Dur("elapsed", elapsed).Msg("Command completed")

	return nil
}

// invoke calls the command, converting a panic into an execution error
// carrying the goroutine stack.
func invoke(fn types.CommandFunc, args []string, ctx types.Context) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = errors.Newf(errors.ErrCommandPanic, "command panicked: %v", rec).
				WithDetail("stack", string(debug.Stack()))
		}
	}()
	return fn(args, ctx)
}

// errorTrace renders the diagnostic trace accompanying a failure
// notification: the error chain, plus the captured stack for panics.
func errorTrace(err error) string {
	var b strings.Builder
	b.WriteString(err.Error())
	if stack, ok := errors.GetErrorDetails(err)["stack"].(string); ok {
		b.WriteString("\n")
		b.WriteString(stack)
	}
	return b.String()
}
