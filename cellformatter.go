package gridtable

import (
	"context"
	"fmt"
)

// Cell describes a single body cell passed to cell formatters.
// Value is the cell value after default resolution,
// meaning it is the column default if the row field
// was missing or nil.
type Cell struct {
	Column Column
	Row    int
	Value  any
}

// CellFormatter is an interface for formatting cell values as strings.
type CellFormatter interface {
	// FormatCell formats a cell as string
	// or returns a wrapped errors.ErrUnsupported error if
	// it doesn't support formatting the value of the cell.
	// The raw result indicates if the returned string
	// is in the raw format of the output and can be
	// used as is or if it has to be sanitized in some way.
	FormatCell(ctx context.Context, cell *Cell) (str string, raw bool, err error)
}

// CellFormatterFunc implements CellFormatter for a function.
type CellFormatterFunc func(ctx context.Context, cell *Cell) (str string, raw bool, err error)

func (f CellFormatterFunc) FormatCell(ctx context.Context, cell *Cell) (str string, raw bool, err error) {
	return f(ctx, cell)
}

// PrintfCellFormatter implements CellFormatter by calling
// fmt.Sprintf with this type's string value as format.
type PrintfCellFormatter string

func (format PrintfCellFormatter) FormatCell(ctx context.Context, cell *Cell) (str string, raw bool, err error) {
	return fmt.Sprintf(string(format), cell.Value), false, nil
}

// SprintCellFormatter returns a CellFormatter
// that formats a cell's value using fmt.Sprint
// and returns the rawResult argument as raw result.
func SprintCellFormatter(rawResult bool) CellFormatter {
	return CellFormatterFunc(func(ctx context.Context, cell *Cell) (string, bool, error) {
		return fmt.Sprint(cell.Value), rawResult, nil
	})
}
