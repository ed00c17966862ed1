package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modrun-cli/modrun/pkg/registry"
)

// fakeContext records capability calls from builtin commands.
type fakeContext struct {
	logs     []string
	progress []int
}

func (c *fakeContext) Progress(completed int) { c.progress = append(c.progress, completed) }
func (c *fakeContext) Log(msg string)         { c.logs = append(c.logs, msg) }

func TestRegisterBuiltins(t *testing.T) {
	RegisterBuiltins()
	// Calling again must not panic on duplicate registration.
	RegisterBuiltins()

	assert.True(t, registry.Builtins() != nil)
	for _, name := range []string{"ping", "env"} {
		_, err := registry.GetBuiltin(name)
		assert.NoError(t, err, name)
	}
}

func TestPing(t *testing.T) {
	ctx := &fakeContext{}

	require.NoError(t, Ping(nil, ctx))

	assert.Equal(t, []string{"pong"}, ctx.logs)
	assert.Equal(t, []int{25, 50, 75, 100}, ctx.progress)
}

func TestEnvFiltered(t *testing.T) {
	t.Setenv("MODRUN_TEST_VALUE", "42")
	ctx := &fakeContext{}

	require.NoError(t, Env([]string{"MODRUN_TEST_"}, ctx))

	require.Len(t, ctx.logs, 1)
	assert.Equal(t, "MODRUN_TEST_VALUE=42", ctx.logs[0])
	assert.Equal(t, []int{100}, ctx.progress)
}

func TestEnvUnfiltered(t *testing.T) {
	t.Setenv("MODRUN_TEST_VALUE", "42")
	ctx := &fakeContext{}

	require.NoError(t, Env(nil, ctx))

	assert.Contains(t, ctx.logs, "MODRUN_TEST_VALUE=42")
}
