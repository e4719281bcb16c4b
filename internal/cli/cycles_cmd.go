package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube_perm"
)

var cyclesCmd = &cobra.Command{
	Use:   "cycles [notation...]",
	Short: "List the cycles of a sequence's permutation",
	Long: `Decompose the permutation of a move sequence into disjoint cycles and list
them grouped by length, longest first.

Each cycle is shown as facelet indices, or with --labels as face(row,col)
addresses. Fixed facelets are omitted unless --fixed is given (or
cycles.include_fixed is set in the config).`,
	RunE: runCycles,
}

var (
	cyclesFixed  bool
	cyclesLabels bool
)

func init() {
	rootCmd.AddCommand(cyclesCmd)
	cyclesCmd.Flags().BoolVar(&cyclesFixed, "fixed", false, "Include fixed facelets")
	cyclesCmd.Flags().BoolVarP(&cyclesLabels, "labels", "l", false, "Show face(row,col) labels instead of indices")
}

func runCycles(cmd *cobra.Command, args []string) error {
	moves, err := readMoves(cmd, args)
	if err != nil {
		return err
	}

	includeFixed := cfg.Cycles.IncludeFixed
	if cmd.Flags().Changed("fixed") {
		includeFixed = cyclesFixed
	}

	p := gocube.ComposeMoves(moves)
	out := cmd.OutOrStdout()
	buckets := gocube.BucketByLength(gocube.CyclesOf(p, includeFixed))

	if len(buckets) == 0 {
		fmt.Fprintln(out, statusStyle.Render("identity: every facelet is fixed"))
		return nil
	}

	lengths := make([]int, 0, len(buckets))
	for l := range buckets {
		lengths = append(lengths, l)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))

	for _, l := range lengths {
		cycles := buckets[l]
		fmt.Fprintln(out, labelStyle.Render(fmt.Sprintf("%d-cycles (%d)", l, len(cycles))))
		for _, c := range cycles {
			fmt.Fprintf(out, "  %s\n", formatCycle(c, cyclesLabels))
		}
	}
	fmt.Fprintf(out, "%s %d\n", labelStyle.Render("order:"), gocube.Order(p))
	return nil
}

func formatCycle(c gocube.Cycle, labels bool) string {
	if !labels {
		return c.String()
	}
	return "(" + strings.Join(c.Labels(), " ") + ")"
}
