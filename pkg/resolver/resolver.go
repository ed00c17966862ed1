// Package resolver turns the (path, function) pair of a command
// definition into a callable. Resolution is fully dynamic and happens
// at invocation time, never at configuration-load time, so a broken
// command file only breaks the command that uses it.
package resolver

import (
	"os"
	"path/filepath"
	"plugin"

	"github.com/rs/zerolog"

	"github.com/modrun-cli/modrun/pkg/errors"
	"github.com/modrun-cli/modrun/pkg/logging"
	"github.com/modrun-cli/modrun/pkg/registry"
	"github.com/modrun-cli/modrun/pkg/types"
)

// BuiltinPath is the reserved command path that routes resolution to
// the compiled-in command registry instead of a plugin file.
const BuiltinPath = "builtin"

// symbolSource abstracts symbol lookup in a loaded unit of code so
// tests can substitute the plugin loader.
type symbolSource interface {
	Lookup(name string) (plugin.Symbol, error)
}

// Resolver resolves command definitions to callables. Construct with
// New; the zero value has no loader.
type Resolver struct {
	logger zerolog.Logger
	open   func(path string) (symbolSource, error)
}

// New creates a Resolver backed by the Go plugin loader.
func New() *Resolver {
	return &Resolver{
		logger: logging.GetLogger("resolver"),
		open: func(path string) (symbolSource, error) {
			return plugin.Open(path)
		},
	}
}

// Resolve loads the unit of code at path and returns the named function
// from it. Nothing is executed here and nothing is memoized; the
// callable is handed back for the runner to invoke.
func (r *Resolver) Resolve(path, function string) (types.CommandFunc, error) {
	if path == BuiltinPath {
		fn, err := registry.GetBuiltin(function)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrSymbolNotFound,
				"builtin command '%s' is not registered", function)
		}
		r.logger.Debug().Str("function", function).Msg("Resolved builtin command")
		return fn, nil
	}

	// Resolve to an absolute path to avoid working-directory ambiguity.
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCommandFileNotFound,
			"cannot resolve command path %q", path)
	}
	if _, err := os.Stat(abs); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrCommandFileNotFound, "command file not found: %s", abs)
		}
		return nil, errors.Wrapf(err, errors.ErrCommandFileNotFound, "command file not readable: %s", abs)
	}

	src, err := r.open(abs)
	if err != nil {
		// Load-time failures in the target surface here untouched.
		return nil, errors.Wrapf(err, errors.ErrCommandLoad, "failed to load command file %s", abs)
	}

	sym, err := src.Lookup(function)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSymbolNotFound,
			"function '%s' not found in %s", function, abs)
	}

	fn, ok := asCommandFunc(sym)
	if !ok {
		return nil, errors.Newf(errors.ErrSymbolInvalid,
			"symbol '%s' in %s is not a command function", function, abs)
	}

	r.logger.Debug().Str("path", abs).Str("function", function).Msg("Resolved command")
	return fn, nil
}

// asCommandFunc normalizes the shapes a plugin export can take: an
// exported function surfaces as a function value, an exported variable
// as a pointer to it.
func asCommandFunc(sym plugin.Symbol) (types.CommandFunc, bool) {
	switch v := sym.(type) {
	case func(args []string, ctx types.Context) error:
		return v, true
	case types.CommandFunc:
		return v, true
	case *types.CommandFunc:
		return *v, true
	case *func(args []string, ctx types.Context) error:
		return *v, true
	default:
		return nil, false
	}
}
