package experiments

import (
	"fmt"
	"os"

	"reversi/meta"

	"gopkg.in/yaml.v3"
)

// Config describes a tournament between the minimax agent and the random baseline.
type Config struct {
	Games      int    `yaml:"games"`      // Games per colour
	Depth      int    `yaml:"depth"`      // Minimax search depth
	Goroutines int    `yaml:"goroutines"` // Goroutines searching root moves
	Seed       uint64 `yaml:"seed"`       // Seed of the random agent
	OutputDir  string `yaml:"output_dir"` // Records are skipped when empty
}

func DefaultConfig() Config {
	return Config{
		Games:      meta.GAMES,
		Depth:      meta.DEPTH,
		Goroutines: meta.GO_ROUTINES,
		Seed:       meta.SEED,
		OutputDir:  meta.OUTPUT_DIR,
	}
}

// LoadConfig reads a YAML file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if c.Depth <= 0 {
		return fmt.Errorf("depth must be positive, got %d", c.Depth)
	}
	if c.Goroutines <= 0 {
		return fmt.Errorf("goroutines must be positive, got %d", c.Goroutines)
	}
	return nil
}
