// gocube-perm composes, inspects and replays 3x3 cube move sequences as
// permutations of the 48 movable facelets.
package main

import (
	"github.com/SeamusWaldron/gocube_perm/internal/cli"
)

func main() {
	cli.Execute()
}
