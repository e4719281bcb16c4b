package cli

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_perm/internal/protocol"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [frame...]",
	Short: "Decode captured GoCube notification frames",
	Long: `Parse raw GoCube BLE frames and print a one-line summary of each.

Frames are given as hex (spaces and colons allowed) or base64, one per
argument or one per line on stdin. Frames that fail to parse are reported
and decoding continues.`,
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	lines := args
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		text, err := readNotation(cmd, nil)
		if err != nil {
			return err
		}
		lines = strings.Split(text, "\n")
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		data, err := decodeFrame(line)
		if err == nil {
			var msg *protocol.Message
			if msg, err = protocol.Parse(data); err == nil {
				fmt.Fprintln(out, protocol.Describe(msg))
				continue
			}
		}
		failed++
		fmt.Fprintln(out, errorStyle.Render(fmt.Sprintf("%s: %v", line, err)))
	}

	if failed > 0 {
		return fmt.Errorf("%d frame(s) could not be decoded", failed)
	}
	return nil
}

// decodeFrame accepts hex first and falls back to base64.
func decodeFrame(s string) ([]byte, error) {
	compact := strings.NewReplacer(" ", "", ":", "").Replace(s)
	if data, err := hex.DecodeString(compact); err == nil {
		return data, nil
	}
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("not hex or base64")
	}
	return data, nil
}
