package gocube

// ComposeMoves folds a move sequence into one permutation. Moves are applied
// in the order written: each move is composed on the left of the running
// total, acc = Compose(m.Perm(), acc). An empty sequence yields Identity().
func ComposeMoves(seq []Move) Perm {
	acc := Identity()
	for _, m := range seq {
		acc = Compose(m.Perm(), acc)
	}
	return acc
}

// ComposeNotation tokenizes text and composes the resulting moves.
func ComposeNotation(text string) (Perm, error) {
	seq, err := Tokenize(text)
	if err != nil {
		return Perm{}, err
	}
	return ComposeMoves(seq), nil
}

// InverseNotation tokenizes text and returns its inverse sequence in
// canonical notation.
func InverseNotation(text string) (string, error) {
	seq, err := Tokenize(text)
	if err != nil {
		return "", err
	}
	return FormatMoves(InvertSequence(seq)), nil
}
