// Package registry provides a generic, type-safe registry plus the
// global registry of builtin commands. Builtins are ordinary command
// functions linked into the binary and registered at program start;
// configuration reaches them through the reserved "builtin" path.
package registry
