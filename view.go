package gridtable

import "fmt"

// ExpanderState is the visual state of a row's expander control.
type ExpanderState int

const (
	// ExpanderNone marks a row without an expander control.
	ExpanderNone ExpanderState = iota

	// ExpanderCollapsed marks a collapsed expander,
	// the row's hidden subrows are not visible.
	ExpanderCollapsed

	// ExpanderExpanded marks an expanded expander,
	// all of the row's subrows are visible.
	ExpanderExpanded
)

// ViewCell is a single schema column cell of a subrow.
// Value is the row field value after default resolution.
type ViewCell struct {
	Value any
}

// ViewSubrow is one line of a visual row.
// A PlainRow renders as a single subrow,
// a GroupedRow as one subrow per bundled record.
type ViewSubrow struct {
	// Index is the position within the row, 0 for the first
	// and always visible subrow.
	Index int

	// Hidden is true for subrows after the first
	// while the row is collapsed.
	Hidden bool

	Cells []ViewCell
}

// ViewRow is the visual representation of one top-level dataset row.
type ViewRow struct {
	// Index is the top-level dataset index of the row.
	Index int

	// Expander is ExpanderNone for plain rows.
	Expander ExpanderState

	Subrows []ViewSubrow
}

// View is the renderer independent visual tree of a widget.
// Renderers like htmlgrid and textgrid consume a View
// to produce their output.
type View struct {
	Layout Layout

	// Columns are the schema columns the cells were resolved with.
	Columns Schema

	// HeaderCells contains one label per visual column.
	// With grouped rows present the first cell is the empty
	// alignment cell above the expander column.
	HeaderCells []string

	// NoData is true for an empty dataset. Renderers show a
	// single informational row instead of body rows in that case.
	NoData bool

	Rows []ViewRow

	// FooterText shows the count of top-level dataset entries
	// as "<N> records".
	FooterText string
}

// View builds the visual tree for the current inputs and
// expand/collapse state. It returns the widget's parse error
// instead of a view if an input did not parse, so renderers
// never write a corrupt tree.
//
// OptionExpandAll builds the view with every grouped row
// expanded without changing the widget's state.
func (w *Widget) View(options ...Option) (*View, error) {
	if err := w.Err(); err != nil {
		return nil, err
	}
	var (
		expandAll = HasOption(options, OptionExpandAll)
		layout    = w.Layout()
		view      = &View{
			Layout:     layout,
			Columns:    w.schema,
			NoData:     len(w.dataset) == 0,
			FooterText: fmt.Sprintf("%d records", len(w.dataset)),
		}
	)

	if layout.HasGroupedRows {
		view.HeaderCells = append(view.HeaderCells, "")
	}
	view.HeaderCells = append(view.HeaderCells, w.schema.Names()...)

	for i, row := range w.dataset {
		viewRow := ViewRow{Index: i, Expander: ExpanderNone}
		switch row := row.(type) {
		case PlainRow:
			viewRow.Subrows = []ViewSubrow{{Cells: w.subrowCells(Fields(row))}}

		case GroupedRow:
			expanded := expandAll || w.expanded[i]
			if expanded {
				viewRow.Expander = ExpanderExpanded
			} else {
				viewRow.Expander = ExpanderCollapsed
			}
			viewRow.Subrows = make([]ViewSubrow, len(row))
			for j, subrow := range row {
				viewRow.Subrows[j] = ViewSubrow{
					Index:  j,
					Hidden: j > 0 && !expanded,
					Cells:  w.subrowCells(subrow),
				}
			}
		}
		view.Rows = append(view.Rows, viewRow)
	}

	return view, nil
}

func (w *Widget) subrowCells(fields Fields) []ViewCell {
	cells := make([]ViewCell, len(w.schema))
	for i, col := range w.schema {
		cells[i] = ViewCell{Value: fields.Value(col.Key, col.Default)}
	}
	return cells
}
