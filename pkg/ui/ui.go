// Package ui defines the terminal-output abstraction consumed by the
// dispatcher, and its pterm-backed implementation. The core never
// prints directly; every user-facing notification flows through the UI
// interface so the presentation layer can be restyled or silenced in
// one place.
package ui

// UI is the notification surface consumed by the runner and the entry
// point.
type UI interface {
	// Header renders a section header opening a command run.
	Header(text string)

	// Info emits an informational line.
	Info(msg string)

	// Error emits an error line. The application stays in a valid
	// state; fatality is the entry point's decision.
	Error(msg string)

	// Success emits a completion line.
	Success(msg string)

	// Fatal emits a final message before the process terminates. It
	// must not terminate the process itself.
	Fatal(msg string)

	// StartTask opens a scoped progress task. The caller owns the
	// handle and calls Done exactly once.
	StartTask(description string) Task
}

// Task is a progress handle scoped to one command invocation.
type Task interface {
	// Progress reports completion in [0,100]. Out-of-range values are
	// clamped; regressions are ignored.
	Progress(completed int)

	// Done finalizes the task rendering.
	Done()
}
