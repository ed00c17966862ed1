// Package types defines the shared data model of the dispatcher: the
// validated configuration structures, the command contract, and the
// execution context handed to every command.
package types

// AppMetadata identifies the CLI application driven by a configuration
// pair. All fields are mandatory and validated at load time; the struct
// is treated as read-only afterwards.
type AppMetadata struct {
	Name        string `koanf:"name" toml:"name" yaml:"name"`
	Version     string `koanf:"version" toml:"version" yaml:"version"`
	Description string `koanf:"description" toml:"description" yaml:"description"`
}

// CommandDefinition locates the executable unit behind one command: a
// plugin file on disk and the exported function inside it. Path may be
// the reserved word "builtin", in which case Function names a
// compiled-in command instead of a plugin export.
type CommandDefinition struct {
	Path     string
	Function string
}

// Config is the fully validated configuration produced by config.Load.
// It is constructed once at startup and never mutated.
type Config struct {
	App      AppMetadata
	Commands map[string]CommandDefinition
}

// Context is the capability bundle passed to every command. It exposes
// progress reporting and logging only; UI implementation details never
// cross this boundary.
type Context interface {
	// Progress reports completion in the range [0,100]. Out-of-range
	// values are clamped.
	Progress(completed int)

	// Log emits one informational line through the UI sink.
	Log(msg string)
}

// CommandFunc is the contract every resolved command satisfies. A nil
// return means success; any error aborts the run and is propagated to
// the caller unchanged.
type CommandFunc func(args []string, ctx Context) error
