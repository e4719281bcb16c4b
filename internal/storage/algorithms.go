package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"

	gocube "github.com/SeamusWaldron/gocube_perm"
)

// Errors
var (
	ErrAlgorithmNotFound = errors.New("storage: algorithm not found")
	ErrDuplicateName     = errors.New("storage: algorithm name already exists")
	ErrEmptyName         = errors.New("storage: algorithm name is empty")
)

// Algorithm is a named move sequence together with facts about its
// permutation.
type Algorithm struct {
	AlgorithmID string
	Name        string
	Notation    string // canonical form, e.g. "R U R' U'"
	MoveCount   int
	Order       int
	MovedCount  int
	Permutation gocube.Perm
	CreatedAt   time.Time
}

// Moves parses the stored notation.
func (a *Algorithm) Moves() []gocube.Move {
	moves, err := gocube.Tokenize(a.Notation)
	if err != nil {
		// Notation is validated on insert.
		return nil
	}
	return moves
}

// AlgorithmRepository stores named algorithms.
type AlgorithmRepository struct {
	db *DB
}

// NewAlgorithmRepository creates a new algorithm repository.
func NewAlgorithmRepository(db *DB) *AlgorithmRepository {
	return &AlgorithmRepository{db: db}
}

// Create parses notation and stores it under name. The stored notation is
// the canonical formatting of the parsed moves.
func (r *AlgorithmRepository) Create(name, notation string) (*Algorithm, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	moves, err := gocube.Tokenize(notation)
	if err != nil {
		return nil, err
	}
	perm := gocube.ComposeMoves(moves)

	permJSON, err := json.Marshal(perm.Slice())
	if err != nil {
		return nil, fmt.Errorf("failed to encode permutation: %w", err)
	}

	alg := &Algorithm{
		AlgorithmID: uuid.New().String(),
		Name:        name,
		Notation:    gocube.FormatMoves(moves),
		MoveCount:   len(moves),
		Order:       gocube.Order(perm),
		MovedCount:  gocube.MovedCount(perm),
		Permutation: perm,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}

	err = r.db.Transaction(func(tx *sql.Tx) error {
		var exists int
		if err := tx.QueryRow("SELECT COUNT(*) FROM algorithms WHERE name = ?", name).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check name: %w", err)
		}
		if exists > 0 {
			return fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}

		_, err := tx.Exec(`
			INSERT INTO algorithms (algorithm_id, name, notation, move_count, perm_order, moved_count, permutation_json, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, alg.AlgorithmID, alg.Name, alg.Notation, alg.MoveCount, alg.Order, alg.MovedCount,
			string(permJSON), alg.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to create algorithm: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return alg, nil
}

const selectAlgorithm = `
	SELECT algorithm_id, name, notation, move_count, perm_order, moved_count, permutation_json, created_at
	FROM algorithms`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAlgorithm(row rowScanner) (*Algorithm, error) {
	var (
		alg       Algorithm
		permJSON  string
		createdAt string
	)
	err := row.Scan(&alg.AlgorithmID, &alg.Name, &alg.Notation, &alg.MoveCount,
		&alg.Order, &alg.MovedCount, &permJSON, &createdAt)
	if err != nil {
		return nil, err
	}

	var values []int
	if err := json.Unmarshal([]byte(permJSON), &values); err != nil {
		return nil, fmt.Errorf("failed to decode permutation of %q: %w", alg.Name, err)
	}
	alg.Permutation, err = gocube.FromSlice(values)
	if err != nil {
		return nil, fmt.Errorf("stored permutation of %q: %w", alg.Name, err)
	}

	alg.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at of %q: %w", alg.Name, err)
	}
	return &alg, nil
}

// Get retrieves an algorithm by name.
func (r *AlgorithmRepository) Get(name string) (*Algorithm, error) {
	row := r.db.QueryRow(selectAlgorithm+" WHERE name = ?", strings.TrimSpace(name))
	alg, err := scanAlgorithm(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrAlgorithmNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get algorithm: %w", err)
	}
	return alg, nil
}

// List returns all algorithms ordered by name.
func (r *AlgorithmRepository) List() ([]*Algorithm, error) {
	rows, err := r.db.Query(selectAlgorithm + " ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list algorithms: %w", err)
	}
	defer rows.Close()

	var algs []*Algorithm
	for rows.Next() {
		alg, err := scanAlgorithm(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan algorithm: %w", err)
		}
		algs = append(algs, alg)
	}
	return algs, rows.Err()
}

// Delete removes an algorithm by name.
func (r *AlgorithmRepository) Delete(name string) error {
	res, err := r.db.Exec("DELETE FROM algorithms WHERE name = ?", strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("failed to delete algorithm: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete algorithm: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrAlgorithmNotFound, name)
	}
	return nil
}

// Suggest returns up to max stored names close to name, nearest first.
// Names further than half their length away are not suggested.
func (r *AlgorithmRepository) Suggest(name string, max int) ([]string, error) {
	rows, err := r.db.Query("SELECT name FROM algorithms")
	if err != nil {
		return nil, fmt.Errorf("failed to list names: %w", err)
	}
	defer rows.Close()

	type candidate struct {
		name string
		dist int
	}
	target := strings.ToLower(strings.TrimSpace(name))
	var candidates []candidate
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to scan name: %w", err)
		}
		d := levenshtein.ComputeDistance(target, strings.ToLower(n))
		if d <= (utf8.RuneCountInString(n)+1)/2 {
			candidates = append(candidates, candidate{n, d})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].name < candidates[j].name
	})

	if max > 0 && len(candidates) > max {
		candidates = candidates[:max]
	}
	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.name
	}
	return names, nil
}
