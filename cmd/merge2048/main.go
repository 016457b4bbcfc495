// merge2048 is a terminal sliding-tile merge puzzle.
//
// Usage:
//
//	merge2048 play [variant]    - Play a game (default variant: classic)
//	merge2048 list              - List available board variants
//	merge2048 scores <variant>  - Show high scores for a variant
//	merge2048 serve             - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Override the scores database path
//	--config <path>  - Path to a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmelnik/merge2048/internal/config"
	"github.com/dmelnik/merge2048/internal/registry"
	"github.com/dmelnik/merge2048/internal/storage"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "merge2048",
	Short: "A sliding-tile merge puzzle for your terminal",
	Long: `merge2048 is a terminal take on the classic sliding-tile merge puzzle:
slide tiles, merge equal pairs, reach the target tile.

Available commands:
  play     - Play a game (optionally resuming a saved one)
  list     - Show all board variants
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  merge2048 play
  merge2048 play big
  merge2048 play classic --resume
  merge2048 list
  merge2048 scores classic
  merge2048 serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the configuration and registers any custom variants it
// declares. Variants clashing with a registered ID are skipped.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	for _, v := range cfg.Variants {
		if registry.Exists(v.ID) {
			fmt.Fprintf(os.Stderr, "Warning: variant %q already exists, skipping config entry\n", v.ID)
			continue
		}
		registry.Register(registry.Variant{
			ID:        v.ID,
			Title:     v.Title,
			GridSize:  v.GridSize,
			WinTarget: v.WinTarget,
			SpawnBias: v.SpawnBias,
		})
	}

	return cfg, nil
}

// dbPath resolves the database location: the --db flag wins over config.
func dbPath(cfg config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return cfg.DBPath()
}

// openStore opens the scores database, or returns nil when it is unavailable
// so gameplay can continue without persistence.
func openStore(cfg config.Config) *storage.Store {
	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
