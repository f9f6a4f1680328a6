package xlmortgage

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Generator builds the mortgage calculator workbook.
type Generator struct {
	opts *Options
}

// NewGenerator creates a Generator with the given options.
func NewGenerator(opts ...Option) *Generator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Generator{opts: o}
}

// Inputs returns the loan inputs the generator writes.
func (g *Generator) Inputs() LoanInputs {
	return g.opts.inputs
}

// OutputPath returns the configured output file.
func (g *Generator) OutputPath() string {
	return g.opts.outputPath
}

// Build populates a new workbook: calculator sheet, yearly summary,
// instructions, then the styling pass. The caller owns the result and
// must Close it.
func (g *Generator) Build() (*Workbook, error) {
	log := g.opts.logger

	wb, err := NewWorkbook(CalculatorSheet)
	if err != nil {
		return nil, err
	}
	for _, name := range SheetOrder[1:] {
		if err := wb.AddSheet(name); err != nil {
			wb.Close()
			return nil, err
		}
	}

	ctx := newFormulaContext()
	steps := []struct {
		sheet string
		build func() error
	}{
		{CalculatorSheet, func() error { return buildCalculatorSheet(wb, ctx, g.opts.inputs) }},
		{SummarySheet, func() error { return buildSummarySheet(wb, ctx) }},
		{InstructionsSheet, func() error { return buildInstructionsSheet(wb) }},
	}
	for _, step := range steps {
		if err := step.build(); err != nil {
			wb.Close()
			return nil, fmt.Errorf("build %q: %w", step.sheet, err)
		}
		log.Debug("sheet built", "sheet", step.sheet, "cells", len(wb.Cells(step.sheet)))
	}

	if err := ApplyStyles(wb); err != nil {
		wb.Close()
		return nil, fmt.Errorf("apply styles: %w", err)
	}
	if g.opts.recalculateOnOpen {
		if err := wb.SetRecalculateOnOpen(true); err != nil {
			wb.Close()
			return nil, fmt.Errorf("set calc props: %w", err)
		}
	}
	wb.File().SetActiveSheet(0)

	if g.opts.preWrite != nil {
		if err := g.opts.preWrite(wb.File()); err != nil {
			wb.Close()
			return nil, fmt.Errorf("pre-write: %w", err)
		}
	}
	return wb, nil
}

// Write builds the workbook and writes it to w.
func (g *Generator) Write(w io.Writer) error {
	wb, err := g.Build()
	if err != nil {
		return err
	}
	defer wb.Close()
	if err := wb.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// Save builds the workbook and writes it to path, or to the configured output
// path when path is empty. The file is written to a temporary name in the
// same directory and renamed over path, so a failed write leaves any existing
// file untouched.
func (g *Generator) Save(path string) (string, error) {
	if path == "" {
		path = g.opts.outputPath
	}
	wb, err := g.Build()
	if err != nil {
		return "", err
	}
	defer wb.Close()

	if err := saveAtomic(wb, path); err != nil {
		return "", &SaveError{Path: path, Err: err}
	}
	g.opts.logger.Debug("workbook saved", "path", path)
	return path, nil
}

func saveAtomic(wb *Workbook, path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	// CreateTemp uses 0600; keep the mode of the file being replaced.
	mode := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := wb.Write(tmp); err != nil {
		tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err == nil {
		return nil
	}
	// Windows refuses to rename over an existing file.
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

// Generate writes the calculator workbook to path ("" means the configured
// output path) and returns the path written.
func Generate(path string, opts ...Option) (string, error) {
	return NewGenerator(opts...).Save(path)
}

// GenerateBytes builds the calculator workbook and returns the xlsx bytes.
func GenerateBytes(opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewGenerator(opts...).Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
