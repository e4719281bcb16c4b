package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube_perm"
)

// readNotation returns the sequence text from args, or from stdin when args
// are empty or a single "-".
func readNotation(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	return strings.Join(args, " "), nil
}

// readMoves reads and tokenizes the sequence. A name prefixed with "@" is
// looked up in the algorithm catalog instead.
func readMoves(cmd *cobra.Command, args []string) ([]gocube.Move, error) {
	if len(args) == 1 && strings.HasPrefix(args[0], "@") {
		alg, err := lookupAlgorithm(strings.TrimPrefix(args[0], "@"))
		if err != nil {
			return nil, err
		}
		return alg.Moves(), nil
	}

	text, err := readNotation(cmd, args)
	if err != nil {
		return nil, err
	}
	return gocube.Tokenize(text)
}
