package gridtable

import "strings"

// Layout describes the visual column layout of the table grid.
type Layout struct {
	// GridTemplateColumns is the CSS grid-template-columns value
	// for the table container: a leading "1rem" expander column
	// when grouped rows are present, followed by one "1fr" per
	// schema column.
	GridTemplateColumns string

	// NumColumns is the number of visual columns,
	// len(schema)+1 when grouped rows are present,
	// len(schema) otherwise.
	NumColumns int

	// HasGroupedRows is true if at least one dataset row
	// is a GroupedRow.
	HasGroupedRows bool
}

// Layout computes the visual column layout from the current
// dataset and schema.
//
// The layout is recomputed on every call and never cached
// because the dataset content can change between renders.
func (w *Widget) Layout() Layout {
	hasGrouped := w.dataset.HasGroupedRows()
	numCols := len(w.schema)

	var b strings.Builder
	if hasGrouped {
		numCols++
		b.WriteString("1rem")
	}
	for range w.schema {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("1fr")
	}

	return Layout{
		GridTemplateColumns: b.String(),
		NumColumns:          numCols,
		HasGroupedRows:      hasGrouped,
	}
}
