package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	flagSimGames int
	flagSimBoard bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Play headless games with random moves",
	Long: `Play games without a terminal UI, choosing each move at random,
and print the final score and largest tile of each game.

Spawn rules come from the config, so this is a quick way to compare
settings such as spawn.two_probability or spawn.after_noop_move.

Examples:
  t2048 sim --games 100 --seed 1
  t2048 sim --games 1 --board`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimGames, "games", 10, "Number of games to play")
	simCmd.Flags().BoolVar(&flagSimBoard, "board", false, "Print the final board of each game")
}

// simMoveLimit stops games that cannot end, such as a policy that
// never spawns, from looping forever.
const simMoveLimit = 100000

func runSim(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if flagSimGames <= 0 {
		return fmt.Errorf("--games must be positive")
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var total, best uint64
	var bestTile uint32
	tiles := make(map[uint32]int)

	for i := 0; i < flagSimGames; i++ {
		s := t2048.NewSession(t2048.SessionOptions{
			Seed:           rng.Int63(),
			TwoProbability: a.cfg.Spawn.TwoProbability,
			SpawnAfterNoop: a.cfg.Spawn.AfterNoopMove,
			InitialTiles:   a.cfg.InitialTiles,
			Logger:         a.logger,
		})
		s.Start()

		for n := 0; n < simMoveLimit && !s.Over(); n++ {
			s.Move(t2048.Directions[rng.Intn(len(t2048.Directions))])
		}

		score := uint64(s.Score())
		total += score
		best = max(best, score)
		bestTile = max(bestTile, s.MaxTile())
		tiles[s.MaxTile()]++

		fmt.Printf("game %3d  score %7d  max %5d  moves %5d\n", i+1, score, s.MaxTile(), s.Moves())
		if flagSimBoard {
			fmt.Println(s.Grid())
			fmt.Println()
		}
	}

	fmt.Println()
	fmt.Printf("seed %d  games %d  avg %.1f  best %d  best tile %d\n",
		seed, flagSimGames, float64(total)/float64(flagSimGames), best, bestTile)
	for tile := bestTile; tile >= 2; tile /= 2 {
		if c := tiles[tile]; c > 0 {
			fmt.Printf("  reached %5d: %d\n", tile, c)
		}
	}
	return nil
}
