package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, input string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestPlay_StatusThenQuit(t *testing.T) {
	t.Setenv("DUNGEON_LOGGING_LEVEL", "error")

	out := execute(t, "status\nquit\n", "play", "--name", "Bram", "--class", "cleric")

	assert.Contains(t, out, "Bram the Cleric enters the dungeon.")
	assert.Contains(t, out, "Skill: Mend")
	assert.Contains(t, out, "You leave the dungeon.")
}

func TestContentValidate_ShippedContent(t *testing.T) {
	out := execute(t, "", "content", "validate", "--dir", "../../content")

	assert.Contains(t, out, "enemies: 4 normal, 2 boss")
}
