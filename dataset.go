package gridtable

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Dataset is an ordered sequence of rows,
// mixing PlainRow and GroupedRow entries.
type Dataset []Row

// HasGroupedRows returns true if at least one row of the dataset
// is a GroupedRow.
//
// The result decides the visual layout: with grouped rows present
// every rendered row gains a leading expander column.
func (d Dataset) HasGroupedRows() bool {
	for _, row := range d {
		if _, ok := row.(GroupedRow); ok {
			return true
		}
	}
	return false
}

// UnmarshalJSON discriminates every dataset entry by its JSON shape:
// an object becomes a PlainRow, an array of objects a GroupedRow.
// Any other entry shape is an error.
func (d *Dataset) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	rows := make(Dataset, len(raw))
	for i, entry := range raw {
		entry = bytes.TrimSpace(entry)
		if len(entry) == 0 {
			return fmt.Errorf("row %d: empty value", i)
		}
		switch entry[0] {
		case '{':
			var fields Fields
			if err := json.Unmarshal(entry, &fields); err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}
			rows[i] = PlainRow(fields)
		case '[':
			var subrows []Fields
			if err := json.Unmarshal(entry, &subrows); err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}
			rows[i] = GroupedRow(subrows)
		default:
			return fmt.Errorf("row %d: expected an object or an array of objects", i)
		}
	}
	*d = rows
	return nil
}
