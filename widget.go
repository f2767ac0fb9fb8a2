// Package gridtable implements a schema driven table widget
// with an optional expandable-subrow feature.
//
// The package owns the data model, the parsing of the two
// serialized inputs, the layout calculation, and the
// expand/collapse state machine. Rendering is left to the
// htmlgrid and textgrid subpackages which consume the
// renderer independent visual tree built by Widget.View.
package gridtable

import "errors"

// Widget is the table widget component.
//
// The widget owns no state beyond what is derived from its two
// serialized inputs plus the ephemeral expand/collapse state of
// grouped rows. Inputs are replaced wholesale via SetData and
// SetSchema and re-parsed only when they actually changed.
//
// A Widget is not safe for concurrent use. It is meant to live
// in a single-threaded, event-driven rendering environment where
// input changes and expander clicks are dispatched sequentially.
type Widget struct {
	dataText   string
	schemaText string

	dataset Dataset
	schema  Schema

	dataErr   error
	schemaErr error

	expanded map[int]bool
}

// New returns a Widget with both inputs defaulting
// to an empty array literal.
func New() *Widget {
	return &Widget{
		dataset:  Dataset{},
		schema:   Schema{},
		expanded: make(map[int]bool),
	}
}

// SetData replaces the serialized dataset input.
// The input is only re-parsed when it differs from the
// previously set value. Every change discards the
// expand/collapse state of all rows.
//
// A parse error leaves the widget in an error state
// reported by Err, it does not retain the previous dataset.
func (w *Widget) SetData(text string) error {
	if text == w.dataText {
		return w.dataErr
	}
	w.dataText = text
	w.dataset, w.dataErr = ParseDataset(text)
	w.CollapseAll()
	return w.dataErr
}

// SetSchema replaces the serialized schema input.
// The input is only re-parsed when it differs from the
// previously set value. Every change discards the
// expand/collapse state of all rows.
//
// A parse error leaves the widget in an error state
// reported by Err, it does not retain the previous schema.
func (w *Widget) SetSchema(text string) error {
	if text == w.schemaText {
		return w.schemaErr
	}
	w.schemaText = text
	w.schema, w.schemaErr = ParseSchema(text)
	w.CollapseAll()
	return w.schemaErr
}

// Err returns the parse error of the current dataset
// and schema inputs, or nil if both parsed.
func (w *Widget) Err() error {
	return errors.Join(w.dataErr, w.schemaErr)
}

// Dataset returns the parsed dataset,
// or nil if the dataset input did not parse.
func (w *Widget) Dataset() Dataset { return w.dataset }

// Schema returns the parsed schema,
// or nil if the schema input did not parse.
func (w *Widget) Schema() Schema { return w.schema }

// RecordCount returns the number of top-level dataset entries.
// A GroupedRow counts as one entry, not per subrow.
func (w *Widget) RecordCount() int { return len(w.dataset) }

// Toggle flips the expand/collapse state of the grouped row
// at rowIndex and returns the new state.
//
// Toggling is a harmless no-op returning false for indexes
// out of range and for plain rows. A grouped row with a single
// subrow toggles state but renders identically because it has
// no hidden subrows.
func (w *Widget) Toggle(rowIndex int) bool {
	if rowIndex < 0 || rowIndex >= len(w.dataset) {
		return false
	}
	if _, ok := w.dataset[rowIndex].(GroupedRow); !ok {
		return false
	}
	w.expanded[rowIndex] = !w.expanded[rowIndex]
	return w.expanded[rowIndex]
}

// Expanded returns whether the grouped row at rowIndex
// is currently expanded.
func (w *Widget) Expanded(rowIndex int) bool {
	return w.expanded[rowIndex]
}

// CollapseAll resets the expand/collapse state
// of all rows to collapsed.
func (w *Widget) CollapseAll() {
	clear(w.expanded)
}
