package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LarryWang2718/AI-Cube-Solver/internal/cfen"
	"github.com/LarryWang2718/AI-Cube-Solver/internal/facelet"
)

var twistCmd = &cobra.Command{
	Use:   "twist <moves>",
	Short: "Apply moves to a cube and display the result",
	Long: `Twist applies a sequence of moves to a cube and shows the resulting
state. It does not search for a solution — use it to explore algorithms and
check what a sequence does to a given starting position.

Examples:
  cube twist "R U R' U'"
  cube twist "F R U' R' F'" --color
  cube twist "R U R' U'" --dimension 4`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		startCfen, _ := cmd.Flags().GetString("start")
		useCfenOutput, _ := cmd.Flags().GetBool("cfen")

		c, err := startingCube(cmd, startCfen)
		if err != nil {
			return err
		}
		dimension := c.Size

		if !useCfenOutput {
			fmt.Printf("Applying moves to %dx%dx%d cube: %s\n", dimension, dimension, dimension, args[0])
			if startCfen != "" {
				fmt.Printf("Starting from CFEN: %s\n", startCfen)
			}
		}

		moves, err := facelet.ParseScramble(args[0])
		if err != nil {
			return fmt.Errorf("invalid moves: %w", err)
		}
		c.ApplyMoves(moves)

		if useCfenOutput {
			out, err := cfen.GenerateCFEN(c)
			if err != nil {
				return fmt.Errorf("generating CFEN: %w", err)
			}
			fmt.Print(out)
			return nil
		}

		useColor, useUnicode := colorFlags(cmd)
		fmt.Printf("\nCube state after applying moves:\n%s\n", c.UnfoldedString(useColor, useUnicode))
		fmt.Printf("Moves applied: %d\n", len(moves))
		if c.IsSolved() {
			fmt.Println("Status: solved")
		} else {
			fmt.Println("Status: scrambled")
		}
		return nil
	},
}

func init() {
	twistCmd.Flags().IntP("dimension", "d", 3, "Cube dimension (2, 3, 4, etc.)")
	twistCmd.Flags().BoolP("color", "c", false, "Use colored output (Unicode blocks by default)")
	twistCmd.Flags().Bool("letters", false, "Use letters instead of Unicode blocks when using --color")
	twistCmd.Flags().Bool("cfen", false, "Output the final cube state as a CFEN string")
	twistCmd.Flags().String("start", "", "Starting cube state as a CFEN string (default: solved)")
}
