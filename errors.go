package xlmortgage

import (
	"errors"
	"fmt"
)

// ErrSheetMissing indicates a workbook lacks one of the calculator sheets.
var ErrSheetMissing = errors.New("sheet missing")

// ErrNotFormula indicates a cell expected to hold a formula holds a literal.
var ErrNotFormula = errors.New("cell has no formula")

// ErrInvalidReference indicates a malformed cell or area reference.
var ErrInvalidReference = errors.New("invalid cell reference")

// SaveError reports a failure to write the workbook to its destination.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save workbook %q: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}
