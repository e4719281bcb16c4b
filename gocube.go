// Package gocube models a 3x3 Rubik's cube as a permutation of its 48 movable
// facelets and provides the algebra needed to work with it.
//
// # Features
//
//   - Fixed facelet indexing with 3-D geometry per face
//   - Face-turn permutations derived from that geometry
//   - Composition, inversion, parity and powers of permutations
//   - A forgiving move-notation tokenizer (Unicode primes, commas, lower case)
//   - Cycle decomposition, permutation order and moved-facelet counts
//   - A single-writer Controller for feeding moves from other goroutines
//
// # Quick Start
//
// Compose a sequence and inspect it:
//
//	p, err := gocube.ComposeNotation("R U R' U'")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Order:", gocube.Order(p))       // 6
//	fmt.Println("Moved:", gocube.MovedCount(p))  // facelets displaced
//	for _, c := range gocube.CyclesOf(p, false) {
//	    fmt.Println(c.Labels())
//	}
//
// # Conventions
//
// A Perm maps a slot to a slot: p[i] is the slot the sticker originally at i
// occupies afterwards. Compose(a, b) applies b first, then a, so a sequence
// written left to right is folded as
//
//	acc = Compose(move.Perm(), acc)
//
// Faces are indexed in the fixed order U, D, L, R, F, B. Each face owns eight
// consecutive indices, enumerated row-major with the center skipped:
//
//	0 1 2
//	3 . 4
//	5 6 7
//
// # Predefined Moves
//
//	gocube.R      // Right clockwise
//	gocube.RPrime // Right counter-clockwise
//	gocube.R2     // Right 180
//	// ... and similarly for L, U, D, F, B
//
// # Standalone Cube State
//
// Cube is a plain state cell that is replaced on every move:
//
//	cube := gocube.NewCube()
//	cube.Apply(gocube.R, gocube.U, gocube.RPrime, gocube.UPrime)
//	if err := cube.ApplyNotation("F B2 L' D"); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Solved:", cube.IsSolved())
//	fmt.Print(cube)
//
// # Smart Cubes
//
// A GoCube connected over Bluetooth is just another source of moves. Each
// reported rotation is queued on a Controller:
//
//	cube, err := gocube.ConnectFirst(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer cube.Close()
//
//	cube.OnMove(func(m gocube.Move, p gocube.Perm) {
//	    fmt.Println(m, "moved:", gocube.MovedCount(p))
//	})
package gocube
