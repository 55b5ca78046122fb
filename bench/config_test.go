package bench

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "syncbench.yaml")
	require.NoError(t, os.WriteFile(file, []byte(contents), 0o644))
	return file
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 1000, cfg.Iterations)
	assert.Equal(t, []int{8, 1}, cfg.ThreadCounts)
	assert.Equal(t, []Strategy{Atomic, Critical, Serial}, cfg.Strategies)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	file := writeConfig(t, `
iterations: 50000
threads: [16, 4, 1]
strategies: [serial, ATOMIC]
clock: portable
`)
	cfg, err := LoadConfig(file)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Iterations:   50000,
		ThreadCounts: []int{16, 4, 1},
		Strategies:   []Strategy{Serial, Atomic},
		Clock:        ClockPortable,
	}, cfg)
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "iterations: 10\n"))
	require.NoError(t, err)
	want := DefaultConfig()
	want.Iterations = 10
	assert.Equal(t, want, cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		wantErr  string
	}{
		{"strategy", "strategies: [spin]\n", `unknown strategy "spin"`},
		{"threads", "threads: [4, 0]\n", "thread count must be at least 1, got 0"},
		{"empty threads", "threads: []\n", "no thread counts"},
		{"iterations", "iterations: -5\n", "iterations must not be negative"},
		{"clock", "clock: wall\n", `unknown clock "wall"`},
		{"syntax", "threads: [1\n", "parsing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.contents))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateJoinsErrors(t *testing.T) {
	err := Config{Iterations: -1}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "iterations")
	assert.Contains(t, err.Error(), "no thread counts")
	assert.Contains(t, err.Error(), "no strategies")
}
