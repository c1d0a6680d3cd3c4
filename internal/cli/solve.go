package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/LarryWang2718/AI-Cube-Solver/internal/cfen"
	corecube "github.com/LarryWang2718/AI-Cube-Solver/internal/cube"
	"github.com/LarryWang2718/AI-Cube-Solver/internal/facelet"
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled 3x3x3 cube with the pattern-database IDA* engine",
	Long: `Solve applies a scramble (or a --start CFEN state) to a 3x3x3 cube and
searches for a solution using the admissible-heuristic engine in internal/cube.

Use --headless for programmatic output (space-separated moves only).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scramble := ""
		if len(args) > 0 {
			scramble = args[0]
		}
		algorithm, _ := cmd.Flags().GetString("algorithm")
		headless, _ := cmd.Flags().GetBool("headless")
		useCfenOutput, _ := cmd.Flags().GetBool("cfen")
		startCfen, _ := cmd.Flags().GetString("start")
		maxDepth, _ := cmd.Flags().GetInt("max-depth")
		maxIterations, _ := cmd.Flags().GetInt("max-iterations")
		doVerify, _ := cmd.Flags().GetBool("verify")
		useColor, useUnicode := colorFlags(cmd)

		var c *facelet.Cube
		if startCfen != "" {
			cfenState, err := cfen.ParseCFEN(startCfen)
			if err != nil {
				return fmt.Errorf("invalid starting CFEN: %w", err)
			}
			if cfenState.Dimension != 3 {
				return fmt.Errorf("solve only supports 3x3x3 cubes, starting CFEN is dimension %d", cfenState.Dimension)
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

		if !headless {
			fmt.Printf("Solving 3x3x3 cube with scramble: %q\n", scramble)
			fmt.Printf("Algorithm: %s\n\n", algorithm)
			fmt.Println(c.UnfoldedString(useColor, useUnicode))
		}

		scrambledState, err := facelet.FaceletToState(c)
		if err != nil {
			return fmt.Errorf("cube state is not solvable: %w", err)
		}

		algo := corecube.IDAStar
		if algorithm == "iddfs" {
			algo = corecube.IDDFS
		}

		var logger zerolog.Logger
		if headless {
			logger = zerolog.Nop()
		} else {
			logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		}

		engine := corecube.NewEngine(func(t corecube.Table, visited, total int) {
			logger.Debug().Str("table", t.String()).Int("visited", visited).Int("total", total).Msg("building pattern database")
		})

		result, err := engine.Solve(scrambledState, algo, corecube.Options{
			MaxDepth:      maxDepth,
			MaxIterations: maxIterations,
		})
		if err != nil {
			return fmt.Errorf("solve: %w", err)
		}

		switch result.Status {
		case corecube.Aborted:
			if !headless {
				fmt.Printf("Search aborted after %d iterations without a solution (try --max-iterations or --max-depth).\n", result.Iterations)
			}
			os.Exit(1)
		case corecube.Exhausted:
			if !headless {
				fmt.Println("Search exhausted its depth bound without finding a solution — this should not happen for a legal cube.")
			}
			os.Exit(1)
		}

		if doVerify && !corecube.Verify(scrambledState, result.Moves) {
			return fmt.Errorf("internal error: returned solution does not reach the solved state")
		}

		solutionStr := corecube.Sprint(result.Moves)

		if useCfenOutput {
			solved := corecube.ApplySequence(scrambledState, result.Moves)
			cfenStr, err := cfen.GenerateCFEN(facelet.StateToFacelet(solved))
			if err != nil {
				return fmt.Errorf("generating CFEN: %w", err)
			}
			fmt.Print(cfenStr)
		} else if headless {
			fmt.Print(solutionStr)
		} else {
			fmt.Printf("Solution: %s\n", solutionStr)
			fmt.Printf("Moves: %d\n", len(result.Moves))
			fmt.Printf("Expanded nodes: %d\n", result.ExpandedNodes)
			fmt.Printf("Iterations: %d\n", result.Iterations)
			fmt.Printf("Time: %dms\n", result.ElapsedMs)
			if doVerify {
				fmt.Println("Verified: solution reaches the solved state")
			}
		}
		return nil
	},
}

func init() {
	solveCmd.Flags().StringP("algorithm", "a", "idastar", "Search algorithm to use (idastar, iddfs)")
	solveCmd.Flags().BoolP("color", "c", false, "Use colored output (Unicode blocks by default)")
	solveCmd.Flags().Bool("letters", false, "Use letters instead of Unicode blocks when using --color")
	solveCmd.Flags().Bool("headless", false, "Output only space-separated moves for programmatic use")
	solveCmd.Flags().Bool("cfen", false, "Output the solved CFEN state instead of the move list")
	solveCmd.Flags().String("start", "", "Starting cube state as a CFEN string (default: solved)")
	solveCmd.Flags().Int("max-depth", 26, "Maximum search depth IDA*/IDDFS may explore (26 is the proven quarter-turn-metric diameter)")
	solveCmd.Flags().Int("max-iterations", 200, "Maximum number of iterative-deepening rounds before giving up")
	solveCmd.Flags().Bool("verify", false, "Replay the returned solution against the scrambled state to confirm it reaches solved")
}
