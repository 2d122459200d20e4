// Command ilpd solves a batch of integer programs read as JSON. The request
// carries one polyhedron, a list of objectives and a direction; the response
// lists one solution per objective in input order.
//
//	ilpd -input request.json
//	cat request.json | ilpd -backend highs
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/polyhedral/ilpd/config"
	"github.com/polyhedral/ilpd/ilp"
	"github.com/polyhedral/ilpd/solver"

	_ "github.com/polyhedral/ilpd/solver/cplex"
	_ "github.com/polyhedral/ilpd/solver/glpk"
	_ "github.com/polyhedral/ilpd/solver/hexaly"
	_ "github.com/polyhedral/ilpd/solver/highs"
)

type request struct {
	Polyhedron ilp.Polyhedron  `json:"polyhedron"`
	Objectives []ilp.Objective `json:"objectives"`
	Direction  ilp.Direction   `json:"direction"`
	// Presolve overrides the configured presolve toggle when present.
	Presolve *bool `json:"presolve,omitempty"`
}

type response struct {
	Solutions []ilp.Solution `json:"solutions"`
}

func main() {
	var (
		configPath = flag.String("config", "", "path to config file (default: ilpd.yaml if present)")
		inputPath  = flag.String("input", "", "path to request JSON (default: stdin)")
		backend    = flag.String("backend", "", "override the configured backend")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *backend != "" {
		cfg.Backend = *backend
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// os.Exit skips deferred calls, so the logger is flushed explicitly on
	// every path.
	if err := run(cfg, *inputPath, logger); err != nil {
		var inputErr *ilp.InputError
		if errors.As(err, &inputErr) {
			logger.Error("invalid request", zap.String("details", inputErr.Details))
		} else {
			logger.Error("solve failed", zap.Error(err))
		}
		logger.Sync()
		os.Exit(exitCode(err))
	}
	logger.Sync()
}

// exitCode distinguishes client input errors (2) from backend faults (1).
func exitCode(err error) int {
	var inputErr *ilp.InputError
	if errors.As(err, &inputErr) {
		return 2
	}
	return 1
}

func run(cfg *config.Config, inputPath string, logger *zap.Logger) error {
	in := io.Reader(os.Stdin)
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var req request
	if err := json.NewDecoder(in).Decode(&req); err != nil {
		return ilp.Errorf("request is not valid JSON: %v", err)
	}
	if req.Direction == "" {
		req.Direction = ilp.Maximize
	}

	presolve := cfg.Presolve
	if req.Presolve != nil {
		presolve = *req.Presolve
	}

	s, err := solver.New(cfg.Backend)
	if err != nil {
		return err
	}
	logger.Info("solving",
		zap.String("backend", s.Name()),
		zap.Int("rows", req.Polyhedron.A.Shape.NRows),
		zap.Int("cols", req.Polyhedron.A.Shape.NCols),
		zap.Int("objectives", len(req.Objectives)),
		zap.Bool("presolve", presolve))

	solutions, err := s.Solve(&req.Polyhedron, req.Objectives, req.Direction, presolve)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	return enc.Encode(response{Solutions: solutions})
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
