// Package demo runs the printable sections that make up each topic program.
//
// Every topic directory has a tiny main.go that hands its Program to Main.
// The root CLI runs the same Programs, so output is identical either way.
package demo

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Section is one titled step of a demo. Run writes its output to w.
type Section struct {
	Title string
	Run   func(w io.Writer)
}

// Program is the ordered list of sections for one topic.
type Program struct {
	Name     string
	Summary  string
	Sections []Section
}

// Run prints every section in order. Demo output goes to w; progress is
// logged, so stdout stays readable when stderr is discarded.
func (p Program) Run(w io.Writer, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("demo started", zap.String("demo", p.Name), zap.Int("sections", len(p.Sections)))
	for i, s := range p.Sections {
		logger.Debug("section", zap.String("demo", p.Name), zap.Int("index", i), zap.String("title", s.Title))
		Header(w, s.Title)
		s.Run(w)
	}
	logger.Info("demo finished", zap.String("demo", p.Name))
}

// Header prints a section banner.
func Header(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}

// NewLogger builds the production zap logger used by all programs. verbose
// lowers the level to debug so individual sections are logged too.
func NewLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Main runs p as a standalone program on stdout. Topic programs take no
// arguments, flags or environment variables.
func Main(p Program) {
	logger, err := NewLogger(false)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	p.Run(os.Stdout, logger)
}
