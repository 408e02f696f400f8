package solution

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/polycube/solver"
)

// OutputFormat selects Format's output shape.
type OutputFormat int

const (
	// FormatText renders one line per placement: the piece name followed
	// by the box cells it covers.
	FormatText OutputFormat = iota
	// FormatJSON renders the same information as a JSON array of
	// {piece, cells} objects, for tooling.
	FormatJSON
)

// placement is the JSON-serializable shape of one chosen row.
type placement struct {
	Piece string   `json:"piece"`
	Cells []string `json:"cells"`
}

// Format writes s to w in the requested format. s is never mutated.
// Complexity: O(m·n) for either format (one scan of the solution matrix).
func Format(s *solver.Solution, w io.Writer, format OutputFormat) error {
	placements := make([]placement, 0, s.Rows())
	for i := 1; i <= s.Rows(); i++ {
		name, err := s.PieceName(i)
		if err != nil {
			return fmt.Errorf("solution.Format: %w", err)
		}
		cells, err := s.CoveredCells(i)
		if err != nil {
			return fmt.Errorf("solution.Format: %w", err)
		}
		placements = append(placements, placement{Piece: name, Cells: cells})
	}

	switch format {
	case FormatText:
		return writeText(w, placements)
	case FormatJSON:
		return writeJSON(w, placements)
	default:
		return fmt.Errorf("solution.Format: %w", ErrUnknownFormat)
	}
}

func writeText(w io.Writer, placements []placement) error {
	for _, pl := range placements {
		if _, err := fmt.Fprintf(w, "%s: %v\n", pl.Piece, pl.Cells); err != nil {
			return fmt.Errorf("solution.Format: %w", err)
		}
	}

	return nil
}

func writeJSON(w io.Writer, placements []placement) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(placements); err != nil {
		return fmt.Errorf("solution.Format: %w", err)
	}

	return nil
}
