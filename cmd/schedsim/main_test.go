package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, input string, args ...string) string {
	t.Helper()
	out := &bytes.Buffer{}
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestShellCommand(t *testing.T) {
	output := execute(t, "create editor\ncreate shell\nrun sjf\nlist\n", "--seed", "11", "--quantum", "2")
	assert.Contains(t, output, "created process: PID=1, name='editor'")
	assert.Contains(t, output, "Running SJF...")
	assert.Contains(t, output, "Simulation finished.")
	assert.Contains(t, output, "finished")
	assert.True(t, strings.HasSuffix(output, "Shutting down.\n"))
}

func TestReplayCommand(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "session.txt")
	require.NoError(t, os.WriteFile(script, []byte("create a\nblock 1\nrun rr\nunblock 1\nrun rr\nexit\n"), 0o644))

	output := execute(t, "", "replay", "--seed", "5", "--quantum", "2", script)
	assert.Contains(t, output, "> create a\n")
	assert.Contains(t, output, "process 1 blocked")
	assert.Contains(t, output, "no process ready to run")
	assert.Contains(t, output, "✓ process 1 finished")
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("scheduler:\n  quantum: 4\ngenerator:\n  minCycles: 2\n  maxCycles: 4\n"), 0o644))
	defer func() { configURL = "" }()

	require.NoError(t, rootCmd.ParseFlags([]string{"--config", configFile, "--quantum", "1", "--log-level", "debug"}))
	config, err := loadConfig(context.Background(), rootCmd)
	require.NoError(t, err)
	assert.Equal(t, 1, config.Scheduler.Quantum, "flag overrides file")
	assert.Equal(t, 2, config.Generator.MinCycles)
	assert.Equal(t, 4, config.Generator.MaxCycles)
	assert.Equal(t, "debug", config.Log.Level)

	require.NoError(t, rootCmd.ParseFlags([]string{"--quantum", "0"}))
	_, err = loadConfig(context.Background(), rootCmd)
	assert.Error(t, err)
	quantum = 2
}
