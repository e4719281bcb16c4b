package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube_perm"
)

// Commands that rewrite a sequence into another sequence and print it in
// canonical notation.

var invertCmd = &cobra.Command{
	Use:   "invert [notation...]",
	Short: "Print the inverse of a sequence",
	Long: `Print the sequence that undoes the input: the moves in reverse order,
each one inverted. R becomes R', R' becomes R, R2 stays R2.`,
	RunE: runRewrite(gocube.InvertSequence),
}

var expandCmd = &cobra.Command{
	Use:   "expand [notation...]",
	Short: "Replace half turns with two quarter turns",
	RunE:  runRewrite(gocube.ExpandDoubles),
}

var simplifyCmd = &cobra.Command{
	Use:   "simplify [notation...]",
	Short: "Merge adjacent turns of the same face",
	Long: `Merge adjacent turns of the same face: R R becomes R2, R R R becomes R',
and R R' disappears. The resulting permutation is unchanged.`,
	RunE: runRewrite(gocube.MergeMoves),
}

func init() {
	rootCmd.AddCommand(invertCmd)
	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(simplifyCmd)
}

func runRewrite(rewrite func([]gocube.Move) []gocube.Move) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		moves, err := readMoves(cmd, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), gocube.FormatMoves(rewrite(moves)))
		return nil
	}
}
