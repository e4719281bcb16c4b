package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube_perm"
)

var permCmd = &cobra.Command{
	Use:   "perm [notation...]",
	Short: "Compose a sequence and describe its permutation",
	Long: `Compose a move sequence into a single facelet permutation and print its
order, parity, moved-facelet count and cycle structure.

The sequence is read from the arguments, or from stdin when none are given.
Use @name to load an algorithm from the catalog.

Examples:
  gocube-perm perm "R U R' U'"
  gocube-perm perm R U2 F\'
  echo "F R U L D' F B' R U" | gocube-perm perm --net
  gocube-perm perm @tperm --json`,
	RunE: runPerm,
}

var (
	permJSON bool
	permNet  bool
)

func init() {
	rootCmd.AddCommand(permCmd)
	permCmd.Flags().BoolVar(&permJSON, "json", false, "Print the summary as JSON")
	permCmd.Flags().BoolVar(&permNet, "net", false, "Also print the resulting cube net")
}

// permSummary describes the permutation a sequence produces.
type permSummary struct {
	Notation     string      `json:"notation"`
	Moves        int         `json:"moves"`
	QuarterTurns int         `json:"quarter_turns"`
	Order        int         `json:"order"`
	Moved        int         `json:"moved"`
	Parity       int         `json:"parity"`
	CycleType    map[int]int `json:"cycle_type"`
	Cycles       [][]int     `json:"cycles"`
	Permutation  []int       `json:"permutation"`
}

func summarize(moves []gocube.Move) permSummary {
	p := gocube.ComposeMoves(moves)

	quarters := 0
	for _, m := range moves {
		quarters += m.Quarters()
	}

	cycles := gocube.CyclesOf(p, false)
	raw := make([][]int, len(cycles))
	for i, c := range cycles {
		raw[i] = []int(c)
	}

	return permSummary{
		Notation:     gocube.FormatMoves(moves),
		Moves:        len(moves),
		QuarterTurns: quarters,
		Order:        gocube.Order(p),
		Moved:        gocube.MovedCount(p),
		Parity:       p.Parity(),
		CycleType:    gocube.CycleType(p),
		Cycles:       raw,
		Permutation:  p.Slice(),
	}
}

func runPerm(cmd *cobra.Command, args []string) error {
	moves, err := readMoves(cmd, args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	s := summarize(moves)

	if permJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	writeSummary(out, s)

	if permNet {
		c := gocube.NewCube()
		c.Apply(moves...)
		fmt.Fprintln(out)
		fmt.Fprintln(out, renderNet(c))
	}
	return nil
}

func writeSummary(out io.Writer, s permSummary) {
	notation := s.Notation
	if notation == "" {
		notation = "(empty)"
	}
	parity := "even"
	if s.Parity < 0 {
		parity = "odd"
	}

	fmt.Fprintln(out, titleStyle.Render(notation))
	fmt.Fprintf(out, "%s %d (%d quarter turns)\n", labelStyle.Render("Moves: "), s.Moves, s.QuarterTurns)
	fmt.Fprintf(out, "%s %d\n", labelStyle.Render("Order: "), s.Order)
	fmt.Fprintf(out, "%s %d of %d facelets\n", labelStyle.Render("Moved: "), s.Moved, gocube.Size)
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Parity:"), parity)
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("Cycles:"), formatCycleType(s.CycleType))
}

// formatCycleType writes a cycle type as "4^5 1^28", longest first.
func formatCycleType(ct map[int]int) string {
	lengths := make([]int, 0, len(ct))
	for l := range ct {
		lengths = append(lengths, l)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))

	parts := make([]string, len(lengths))
	for i, l := range lengths {
		parts[i] = strconv.Itoa(l) + "^" + strconv.Itoa(ct[l])
	}
	return strings.Join(parts, " ")
}
