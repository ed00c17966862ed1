package registry

import (
	"github.com/modrun-cli/modrun/pkg/types"
)

// builtinRegistry holds the commands compiled into the binary. Entries
// are resolvable from configuration with the reserved path "builtin".
var builtinRegistry Registry[types.CommandFunc]

func init() {
	builtinRegistry = New[types.CommandFunc]()
}

// RegisterBuiltin adds a compiled-in command under the given name.
func RegisterBuiltin(name string, fn types.CommandFunc) error {
	return builtinRegistry.Register(name, fn)
}

// MustRegisterBuiltin registers a compiled-in command and panics on
// failure. Meant for wiring at program start, where a duplicate name is
// a programming error.
func MustRegisterBuiltin(name string, fn types.CommandFunc) {
	MustRegister(builtinRegistry, name, fn)
}

// GetBuiltin retrieves a compiled-in command by name.
func GetBuiltin(name string) (types.CommandFunc, error) {
	return builtinRegistry.Get(name)
}

// Builtins returns the sorted names of all compiled-in commands.
func Builtins() []string {
	return builtinRegistry.List()
}
