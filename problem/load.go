package problem

import (
	"fmt"
	"io"

	"github.com/katalvlaran/polycube/piece"
	"gopkg.in/yaml.v3"
)

// Load parses r as a YAML problem file and validates it: box must have
// three positive dimensions, pieces must be non-empty and every name
// (including constrain/constrain_x/y/z and lock) must resolve via
// piece.Lookup, and lockcount (if set) requires lock and must be >= 1.
// Complexity: O(len(Pieces) + len(input)).
func Load(r io.Reader) (*Problem, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("problem.Load: %w", err)
	}

	var p Problem
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("problem.Load: %w", err)
	}

	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("problem.Load: %w", err)
	}

	return &p, nil
}

func (p *Problem) validate() error {
	if p.Box.W < 1 || p.Box.H < 1 || p.Box.D < 1 {
		return ErrMissingBox
	}
	if len(p.Pieces) == 0 {
		return ErrMissingPieces
	}

	for _, name := range p.Pieces {
		if _, ok := piece.Lookup(name); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownPiece, name)
		}
	}
	for _, name := range []string{p.Constrain, p.ConstrainX, p.ConstrainY, p.ConstrainZ, p.Lock} {
		if name == "" {
			continue
		}
		if _, ok := piece.Lookup(name); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownPiece, name)
		}
	}

	if p.LockCount != 0 {
		if p.Lock == "" || p.LockCount < 1 {
			return ErrBadLockCount
		}
	}

	return nil
}
