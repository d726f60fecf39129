package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("overlaying a file on the defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		err := os.WriteFile(path, []byte("games: 3\ndepth: 2\nseed: 9\n"), 0644)
		require.NoError(t, err)

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		want := DefaultConfig()
		want.Games, want.Depth, want.Seed = 3, 2, 9
		require.Equal(t, want, cfg)
	})

	t.Run("rejecting invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		err := os.WriteFile(path, []byte("depth: 0\n"), 0644)
		require.NoError(t, err)

		_, err = LoadConfig(path)

		require.ErrorContains(t, err, "depth must be positive")
	})

	t.Run("reporting a missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

		require.ErrorContains(t, err, "failed to read config")
	})

	t.Run("reporting malformed YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		err := os.WriteFile(path, []byte("games: [\n"), 0644)
		require.NoError(t, err)

		_, err = LoadConfig(path)

		require.ErrorContains(t, err, "failed to parse config")
	})
}

func TestRunTournament(t *testing.T) {
	t.Run("playing both colours and storing records", func(t *testing.T) {
		dir := t.TempDir()
		cfg := Config{Games: 2, Depth: 1, Goroutines: 1, Seed: 5, OutputDir: dir}

		tally, err := RunTournament(cfg)

		require.NoError(t, err)
		require.Equal(t, 4, tally.Games())
		files, err := filepath.Glob(filepath.Join(dir, "tournament", "*", "*.csv"))
		require.NoError(t, err)
		require.Len(t, files, 2, "Game and move records should be written")
	})

	t.Run("skipping records without an output directory", func(t *testing.T) {
		tally, err := RunTournament(Config{Games: 1, Depth: 1, Goroutines: 2, Seed: 5})

		require.NoError(t, err)
		require.Equal(t, 2, tally.Games())
	})

	t.Run("rejecting an invalid config", func(t *testing.T) {
		_, err := RunTournament(Config{Games: 0, Depth: 1, Goroutines: 1})

		require.Error(t, err)
	})
}

func TestRunThroughputExperiment(t *testing.T) {
	results := RunThroughputExperiment(1, []int{1, 2})

	require.Len(t, results, 2)
	require.Equal(t, results[0].Moves, results[1].Moves, "Parallel search should replay the sequential game")
	require.Equal(t, 2, results[1].Goroutines)
	for _, r := range results {
		require.Positive(t, r.Nodes)
	}
}
