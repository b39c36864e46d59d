package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/banana-grove/internal/core"
	"github.com/vovakirdan/banana-grove/internal/games/banana"
)

var (
	flagBoardWidth  int
	flagBoardHeight int
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print a generated level-1 board",
	Long: `Generate the first board for the given seed (or fair seeds) and
print it with every tree's contents shown, followed by the node list.

Bananas are drawn as ')' and snakes as 'S'.

Examples:
  grove board --seed 42
  grove board --fair-server-seed s3cret --fair-client-seed me --fair-nonce 7`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func init() {
	boardCmd.Flags().IntVar(&flagBoardWidth, "width", 80, "Board width in cells")
	boardCmd.Flags().IntVar(&flagBoardHeight, "height", 24, "Board height in cells")
}

func runBoard(cmd *cobra.Command, args []string) {
	logger, closer, err := newLogger()
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()

	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	opts := append(gameOptions(logger), banana.WithContentsShown())
	game := banana.New(cfg, opts...)
	game.Reset(core.RuntimeConfig{
		ScreenW:  flagBoardWidth,
		ScreenH:  flagBoardHeight,
		TickRate: flagFPS,
		Seed:     flagSeed,
	})
	if err := game.Err(); err != nil {
		closer.Close()
		fail("%v", err)
	}

	screen := core.NewScreen(flagBoardWidth, flagBoardHeight)
	game.Render(screen)
	fmt.Println(screen.String())
	fmt.Println()

	snap := game.Snapshot().Session
	fmt.Printf("  %-3s  %8s  %8s  %s\n", "ID", "X", "Y", "Hides")
	fmt.Printf("  %-3s  %8s  %8s  %s\n", "--", "-", "-", "-----")
	for _, n := range snap.Nodes {
		hides := "snake"
		if n.HasReward {
			hides = "banana"
		}
		fmt.Printf("  %-3d  %8.3f  %8.3f  %s\n", n.ID, n.Position.X, n.Position.Y, hides)
	}
}
