package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dmelnik/merge2048/internal/game"
	"github.com/dmelnik/merge2048/internal/registry"
	"github.com/dmelnik/merge2048/internal/storage"
	"github.com/dmelnik/merge2048/internal/tui"
)

var flagResume bool

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start a game on the given board variant (default: classic).

Controls:
  Arrows/WASD/HJKL - Slide tiles
  C                - Keep going after a win
  R                - Restart
  Q/Ctrl+C         - Quit (saves the game for --resume)

Examples:
  merge2048 play
  merge2048 play big
  merge2048 play classic --resume
  merge2048 play classic --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Resume the saved game for this variant")
}

func runPlay(cmd *cobra.Command, args []string) {
	variantID := "classic"
	if len(args) > 0 {
		variantID = args[0]
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	variant, err := registry.Get(variantID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variantID)
		fmt.Fprintln(os.Stderr, "Run 'merge2048 list' to see available variants.")
		os.Exit(1)
	}

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if tui.WindowTooSmall(variant.GridSize, w, h) {
			fmt.Fprintf(os.Stderr, "Error: terminal %dx%d is too small for a %dx%d board\n",
				w, h, variant.GridSize, variant.GridSize)
			os.Exit(1)
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	store := openStore(cfg)

	session := game.New(variant, seed)
	if flagResume {
		restored, ok := resumeSession(variant, seed, store)
		if !ok {
			fmt.Fprintf(os.Stderr, "No saved game for %q, starting fresh.\n", variant.ID)
		} else {
			session = restored
		}
	}

	runErr := tui.Run(session, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// resumeSession rebuilds a session from the stored snapshot, if one exists
// and still parses.
func resumeSession(variant registry.Variant, seed int64, store *storage.Store) (*game.Session, bool) {
	if store == nil {
		return nil, false
	}

	data, ok, err := store.LoadGame(variant.ID)
	if err != nil || !ok {
		return nil, false
	}

	snap, err := game.ParseSnapshot(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: saved game is corrupt, starting fresh: %v\n", err)
		return nil, false
	}

	session, err := game.Restore(variant, snap, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: saved game is unusable, starting fresh: %v\n", err)
		return nil, false
	}

	return session, true
}
