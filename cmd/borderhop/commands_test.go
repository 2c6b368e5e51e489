package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, rows string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "countries.csv")
	require.NoError(t, os.WriteFile(path, []byte(rows), 0o644))
	return path
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "South Africa", normalizeName("South_Africa"))
	assert.Equal(t, "Chad", normalizeName("Chad"))
}

func TestSearchCommand(t *testing.T) {
	chain := "Chad,Niger\nNiger,Chad,Algeria\nAlgeria,Niger,South Africa\nSouth Africa,Algeria\n"

	run := func(t *testing.T, args ...string) (string, error) {
		t.Helper()
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetErr(&out)
		rootCmd.SetArgs(args)
		err := rootCmd.Execute()
		return out.String(), err
	}

	t.Run("prints the route and its length", func(t *testing.T) {
		path := writeDataset(t, chain)

		out, err := run(t, "--dataset", path, "search", "Chad", "South_Africa")
		require.NoError(t, err)

		assert.Contains(t, out, "Chad to South Africa: 1 path of length 3")
		assert.Contains(t, out, "Chad -> Niger -> Algeria -> South Africa")
	})

	t.Run("reports unreachable targets distinctly", func(t *testing.T) {
		path := writeDataset(t, chain+"Iceland\n")

		out, err := run(t, "--dataset", path, "search", "Chad", "Iceland")
		require.NoError(t, err)
		assert.Contains(t, out, "no route from Chad to Iceland")
	})

	t.Run("rejects a malformed path count", func(t *testing.T) {
		path := writeDataset(t, chain)

		_, err := run(t, "--dataset", path, "search", "Chad", "Niger", "many")
		assert.Error(t, err)
	})

	t.Run("writes the DOT artifact when asked", func(t *testing.T) {
		path := writeDataset(t, chain)
		dotPath := filepath.Join(t.TempDir(), "routes.dot")

		_, err := run(t, "--dataset", path, "search", "Chad", "South_Africa", "--dot", dotPath)
		require.NoError(t, err)

		dot, err := os.ReadFile(dotPath)
		require.NoError(t, err)
		assert.Contains(t, string(dot), "digraph routes")
	})
}

func TestCheckCommand(t *testing.T) {
	t.Run("clean dataset passes", func(t *testing.T) {
		path := writeDataset(t, "Chad,Niger\nNiger,Chad\n")

		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetErr(&out)
		rootCmd.SetArgs([]string{"--dataset", path, "check"})

		require.NoError(t, rootCmd.Execute())
		assert.Contains(t, out.String(), "no problems found")
	})

	t.Run("findings fail the command", func(t *testing.T) {
		path := writeDataset(t, "Chad,Niger\n")

		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetErr(&out)
		rootCmd.SetArgs([]string{"--dataset", path, "check"})

		err := rootCmd.Execute()
		require.Error(t, err)
		assert.Contains(t, out.String(), "Niger has no row")
	})
}
