package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LarryWang2718/AI-Cube-Solver/internal/cfen"
	"github.com/LarryWang2718/AI-Cube-Solver/internal/facelet"
)

// cfenCmd groups CFEN parsing, generation, and pattern-matching under a
// single subcommand the way solveCmd and pdbCmd group their own flags,
// instead of exposing four unrelated top-level verbs.
var cfenCmd = &cobra.Command{
	Use:   "cfen",
	Short: "Parse, generate, and match CFEN pattern strings",
	Long: `CFEN (Compact Facelet Encoding Notation) describes a cube state or
a partial pattern (with '?' wildcards) as a single string: "<up><front>|<face>/.../<face>".

See the subcommands for parsing a CFEN into a display, generating one from a
scramble, and matching a cube state against a wildcarded target.`,
}

var cfenParseCmd = &cobra.Command{
	Use:   "parse <cfen-string>",
	Short: "Parse a CFEN string and display the cube state it describes",
	Long: `Examples:
  cube cfen parse "YB|Y9/R9/B9/W9/O9/G9"                   # solved 3x3
  cube cfen parse "YB|?Y?YYY?Y?/?9/?9/?9/?9/?9"            # yellow top cross only
  cube cfen parse "YB|Y16/R16/B16/W16/O16/G16"             # solved 4x4`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := cfen.ParseCFEN(args[0])
		if err != nil {
			return fmt.Errorf("parsing CFEN: %w", err)
		}
		c, err := state.ToCube()
		if err != nil {
			return fmt.Errorf("converting CFEN to cube: %w", err)
		}

		useColor, useUnicode := colorFlags(cmd)

		fmt.Printf("CFEN: %s\n", args[0])
		fmt.Printf("Dimension: %dx%dx%d\n", state.Dimension, state.Dimension, state.Dimension)
		fmt.Printf("Orientation: %s up, %s front\n", state.Orientation.Up, state.Orientation.Front)
		fmt.Printf("Solved: %t\n\n", c.IsSolved())
		fmt.Print(c.UnfoldedString(useColor, useUnicode))
		return nil
	},
}

var cfenGenerateCmd = &cobra.Command{
	Use:   "generate <scramble>",
	Short: "Apply a scramble and print the resulting CFEN string",
	Long: `Examples:
  cube cfen generate "R U R' U'"
  cube cfen generate "R U R' U'" --dimension 4
  cube cfen generate "R U R' U'" --start "YB|Y9/R9/B9/W9/O9/G9"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		startCfen, _ := cmd.Flags().GetString("start")

		c, err := startingCube(cmd, startCfen)
		if err != nil {
			return err
		}

		if moves, err := facelet.ParseScramble(args[0]); err != nil {
			return fmt.Errorf("invalid scramble: %w", err)
		} else {
			c.ApplyMoves(moves)
		}

		out, err := cfen.GenerateCFEN(c)
		if err != nil {
			return fmt.Errorf("generating CFEN: %w", err)
		}
		fmt.Println(out)
		return nil
	},
}

var cfenVerifyCmd = &cobra.Command{
	Use:   "verify <scramble> <solution> --target <cfen>",
	Short: "Verify that scramble+solution reaches a target CFEN pattern",
	Long: `Examples:
  cube cfen verify "R U R' U'" "U R U' R'" --target "YB|?Y?YYY?Y?/?9/?9/?9/?9/?9"
  cube cfen verify "scramble" "solution" --target "YB|Y9/R9/B9/W9/O9/G9"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		scramble, solution := args[0], args[1]

		targetCfen, _ := cmd.Flags().GetString("target")
		matches, c, err := applyAndMatch("", targetCfen, scramble, solution)
		if err != nil {
			return err
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		report := func(verdict string) {
			fmt.Println(verdict)
			if verbose {
				actual, _ := cfen.GenerateCFEN(c)
				fmt.Printf("Target:  %s\n", targetCfen)
				fmt.Printf("Actual:  %s\n", actual)
			}
		}

		if !matches {
			report("FAIL: result does not match target CFEN pattern")
			return fmt.Errorf("verification failed")
		}
		report("PASS: result matches target CFEN pattern")
		return nil
	},
}

var cfenMatchCmd = &cobra.Command{
	Use:   "match <current-cfen> <target-cfen>",
	Short: "Compare two CFEN strings, honoring wildcards in the target",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := cfen.ParseCFEN(args[0])
		if err != nil {
			return fmt.Errorf("invalid current CFEN: %w", err)
		}
		target, err := cfen.ParseCFEN(args[1])
		if err != nil {
			return fmt.Errorf("invalid target CFEN: %w", err)
		}

		currentCube, err := current.ToCube()
		if err != nil {
			return fmt.Errorf("converting current CFEN to cube: %w", err)
		}

		matches, err := target.MatchesCube(currentCube)
		if err != nil {
			return fmt.Errorf("matching: %w", err)
		}

		if matches {
			fmt.Println("MATCH")
		} else {
			fmt.Println("NO MATCH")
		}
		fmt.Printf("Current: %s\n", args[0])
		fmt.Printf("Target:  %s\n", args[1])
		return nil
	},
}

// applyAndMatch builds a cube from startCfen (or a solved cube of the
// target's dimension when startCfen is empty), applies each move
// sequence in order, and reports whether the result matches targetCfen's
// wildcard pattern. Shared by cube verify and cube cfen verify so the
// two commands cannot drift apart in how they evaluate a verdict.
func applyAndMatch(startCfen, targetCfen string, sequences ...string) (bool, *facelet.Cube, error) {
	target, err := cfen.ParseCFEN(targetCfen)
	if err != nil {
		return false, nil, fmt.Errorf("invalid target CFEN: %w", err)
	}

	var c *facelet.Cube
	if startCfen == "" {
		c = facelet.NewCube(target.Dimension)
	} else {
		start, err := cfen.ParseCFEN(startCfen)
		if err != nil {
			return false, nil, fmt.Errorf("invalid start CFEN: %w", err)
		}
		if start.Dimension != target.Dimension {
			return false, nil, fmt.Errorf("start and target dimensions must match (%d vs %d)", start.Dimension, target.Dimension)
		}
		c, err = start.ToCube()
		if err != nil {
			return false, nil, fmt.Errorf("converting start CFEN to cube: %w", err)
		}
	}

	for _, seq := range sequences {
		if seq == "" {
			continue
		}
		moves, err := facelet.ParseMoves(seq)
		if err != nil {
			return false, nil, fmt.Errorf("invalid move sequence %q: %w", seq, err)
		}
		c.ApplyMoves(moves)
	}

	matched, err := target.MatchesCube(c)
	if err != nil {
		return false, nil, fmt.Errorf("matching against target: %w", err)
	}
	return matched, c, nil
}

// colorFlags reads the shared --color/--letters pair every display
// subcommand exposes and resolves them to the UnfoldedString args.
func colorFlags(cmd *cobra.Command) (useColor, useUnicode bool) {
	useColor, _ = cmd.Flags().GetBool("color")
	useLetters, _ := cmd.Flags().GetBool("letters")
	return useColor, useColor && !useLetters
}

// startingCube builds the cube a scramble/twist/generate subcommand
// operates on: either a solved cube of the --dimension flag's size, or
// the cube encoded by startCfen when one is given. An explicitly set
// dimension must agree with the CFEN's own dimension; when the flag was
// left at its default the CFEN decides.
func startingCube(cmd *cobra.Command, startCfen string) (*facelet.Cube, error) {
	dimension, _ := cmd.Flags().GetInt("dimension")
	if dimension < 2 || dimension > 20 {
		return nil, fmt.Errorf("dimension must be between 2 and 20, got %d", dimension)
	}
	if startCfen == "" {
		return facelet.NewCube(dimension), nil
	}
	state, err := cfen.ParseCFEN(startCfen)
	if err != nil {
		return nil, fmt.Errorf("invalid starting CFEN: %w", err)
	}
	if cmd.Flags().Changed("dimension") && state.Dimension != dimension {
		return nil, fmt.Errorf("CFEN dimension %d doesn't match specified dimension %d", state.Dimension, dimension)
	}
	c, err := state.ToCube()
	if err != nil {
		return nil, fmt.Errorf("converting starting CFEN to cube: %w", err)
	}
	return c, nil
}

func init() {
	cfenParseCmd.Flags().Bool("color", false, "Use colored output")
	cfenParseCmd.Flags().Bool("letters", false, "Use colored letters instead of blocks")

	cfenGenerateCmd.Flags().Int("dimension", 3, "Cube dimension (2-20)")
	cfenGenerateCmd.Flags().String("start", "", "Starting CFEN state (default: solved)")

	cfenVerifyCmd.Flags().String("target", "", "Target CFEN pattern (required)")
	cfenVerifyCmd.Flags().Bool("verbose", false, "Show the target and actual CFEN on the result line")
	cfenVerifyCmd.MarkFlagRequired("target")

	cfenCmd.AddCommand(cfenParseCmd, cfenGenerateCmd, cfenVerifyCmd, cfenMatchCmd)
}
