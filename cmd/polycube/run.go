package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/polycube/problem"
	"github.com/katalvlaran/polycube/solution"
	"github.com/katalvlaran/polycube/solver"
	"github.com/sirupsen/logrus"
)

// runSolve loads path as a problem file, runs the solver, and prints
// every solution to stdout in the requested format, stopping after
// maxSolutions if it is positive.
func runSolve(ctx context.Context, log *logrus.Logger, path, format string, maxSolutions int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("polycube: %w", err)
	}
	defer f.Close()

	p, err := problem.Load(f)
	if err != nil {
		return fmt.Errorf("polycube: %w", err)
	}
	log.WithFields(logrus.Fields{
		"box":    p.Box,
		"pieces": len(p.Pieces),
	}).Debug("loaded problem")

	outFormat, err := parseFormat(format)
	if err != nil {
		return fmt.Errorf("polycube: %w", err)
	}

	start := time.Now()
	found := 0
	err = problem.Run(ctx, p, func(s *solver.Solution) error {
		found++
		if err := solution.Format(s, os.Stdout, outFormat); err != nil {
			return err
		}
		if maxSolutions > 0 && found >= maxSolutions {
			return errMaxSolutionsReached
		}

		return nil
	})
	if err != nil && !errors.Is(err, errMaxSolutionsReached) {
		return fmt.Errorf("polycube: %w", err)
	}

	log.WithFields(logrus.Fields{
		"solutions": found,
		"elapsed":   time.Since(start),
	}).Info("done")

	return nil
}

var errMaxSolutionsReached = fmt.Errorf("polycube: max-solutions reached")

func parseFormat(s string) (solution.OutputFormat, error) {
	switch s {
	case "text":
		return solution.FormatText, nil
	case "json":
		return solution.FormatJSON, nil
	default:
		return 0, fmt.Errorf("polycube: unknown --format %q (want text or json)", s)
	}
}
