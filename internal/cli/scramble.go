package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LarryWang2718/AI-Cube-Solver/internal/facelet"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Print a random move sequence",
	Long: `Generate a random scramble using a seeded PRNG. This is a test-fixture
and convenience command only — the generated moves never touch the solving
engine directly, they are just a move string like any other.

Examples:
  cube scramble
  cube scramble --length 25 --seed 42`,
	Run: func(cmd *cobra.Command, args []string) {
		length, _ := cmd.Flags().GetInt("length")
		seed, _ := cmd.Flags().GetInt64("seed")
		fmt.Println(facelet.RandomScrambleString(length, seed))
	},
}

func init() {
	scrambleCmd.Flags().IntP("length", "l", 25, "Number of moves to generate")
	scrambleCmd.Flags().Int64P("seed", "s", 1, "PRNG seed, for reproducible scrambles")
}
