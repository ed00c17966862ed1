// Package commands ships the builtin commands resolvable with the
// reserved "builtin" path. They exist so a fresh configuration can be
// exercised end to end before any plugin is written.
package commands

import (
	"os"
	"strings"
	"sync"

	"github.com/modrun-cli/modrun/pkg/registry"
	"github.com/modrun-cli/modrun/pkg/types"
)

var registerOnce sync.Once

// RegisterBuiltins wires the builtin commands into the global registry.
// Safe to call more than once.
func RegisterBuiltins() {
	registerOnce.Do(func() {
		registry.MustRegisterBuiltin("ping", Ping)
		registry.MustRegisterBuiltin("env", Env)
	})
}

// Ping logs a single line and walks the progress scale to completion.
// It verifies a configuration and the whole dispatch pipeline without
// side effects.
func Ping(args []string, ctx types.Context) error {
	ctx.Log("pong")
	for _, step := range []int{25, 50, 75, 100} {
		ctx.Progress(step)
	}
	return nil
}

// Env logs the process environment, optionally filtered by the
// prefixes given as arguments.
func Env(args []string, ctx types.Context) error {
	for _, kv := range os.Environ() {
		if len(args) == 0 {
			ctx.Log(kv)
			continue
		}
		for _, prefix := range args {
			if strings.HasPrefix(kv, prefix) {
				ctx.Log(kv)
				break
			}
		}
	}
	ctx.Progress(100)
	return nil
}
