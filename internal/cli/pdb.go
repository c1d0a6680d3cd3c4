package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LarryWang2718/AI-Cube-Solver/internal/cfen"
	corecube "github.com/LarryWang2718/AI-Cube-Solver/internal/cube"
	"github.com/LarryWang2718/AI-Cube-Solver/internal/facelet"
)

var pdbCmd = &cobra.Command{
	Use:   "pdb [scramble]",
	Short: "Report the pattern-database heuristic value of a state without solving",
	Long: `pdb builds the three pattern databases and reports h(state) — the
admissible heuristic IDA* uses — for a scrambled (or --start CFEN) cube,
along with the individual corner-orientation, edge-orientation and
corner-permutation distances the heuristic maximizes over.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scramble := ""
		if len(args) > 0 {
			scramble = args[0]
		}
		startCfen, _ := cmd.Flags().GetString("start")

		var c *facelet.Cube
		if startCfen != "" {
			cfenState, err := cfen.ParseCFEN(startCfen)
			if err != nil {
				return fmt.Errorf("invalid starting CFEN: %w", err)
			}
			if cfenState.Dimension != 3 {
				return fmt.Errorf("pdb only supports 3x3x3 cubes, starting CFEN is dimension %d", cfenState.Dimension)
			}
			c, err = cfenState.ToCube()
			if err != nil {
				return fmt.Errorf("converting starting CFEN to cube: %w", err)
			}
		} else {
			c = facelet.NewCube(3)
		}

		if scramble != "" {
			moves, err := facelet.ParseScramble(scramble)
			if err != nil {
				return fmt.Errorf("invalid scramble: %w", err)
			}
			c.ApplyMoves(moves)
		}

		state, err := facelet.FaceletToState(c)
		if err != nil {
			return fmt.Errorf("cube state is not solvable: %w", err)
		}

		fmt.Fprintln(os.Stderr, "Building pattern databases...")
		engine := corecube.NewEngine(nil)
		pdb := engine.PDB()

		fmt.Printf("h(state) = %d\n", engine.Heuristic().Evaluate(state))
		fmt.Printf("  corner orientation: %d\n", pdb.CornerOrientDistance(state))
		fmt.Printf("  edge orientation:   %d\n", pdb.EdgeOrientDistance(state))
		fmt.Printf("  corner permutation: %d\n", pdb.CornerPermDistance(state))
		return nil
	},
}

func init() {
	pdbCmd.Flags().String("start", "", "Starting cube state as a CFEN string (default: solved)")
}
