package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/wdbin/cmd"
)

func TestVersionCommand(t *testing.T) {
	env := newCLIEnv(t)

	origVersion, origCommit, origDate := cmd.Version, cmd.Commit, cmd.Date
	t.Cleanup(func() { cmd.Version, cmd.Commit, cmd.Date = origVersion, origCommit, origDate })
	cmd.Version, cmd.Commit, cmd.Date = "v1.2.3", "abc1234", "2026-01-02"

	out, err := env.execute("version")
	require.NoError(t, err)

	assert.Equal(t, "wdbin version v1.2.3\n  commit: abc1234\n  built:  2026-01-02\n", out)
}

func TestVersionCommand_NoConfigNeeded(t *testing.T) {
	env := newCLIEnv(t)
	env.writeConfig("version: [not, a, number]\n")

	_, err := env.execute("version")
	require.NoError(t, err)
}
