package gridtable

// Fields maps row field keys to values.
type Fields map[string]any

// Value returns the field value for key,
// or def when the field is missing or nil.
func (f Fields) Value(key string, def any) any {
	if value, ok := f[key]; ok && value != nil {
		return value
	}
	return def
}

// Row is a sealed interface implemented by exactly
// PlainRow and GroupedRow.
//
// A dataset mixes both kinds freely. Instead of checking the
// runtime shape of deserialized data at every use site,
// parsing discriminates once and all further code switches
// exhaustively over the two implementations.
type Row interface {
	// NumSubrows returns 1 for a PlainRow and the number
	// of subrows for a GroupedRow.
	NumSubrows() int

	isRow()
}

var (
	_ Row = PlainRow(nil)
	_ Row = GroupedRow(nil)
)

// PlainRow is a single data record rendered as one visual row.
type PlainRow Fields

func (PlainRow) NumSubrows() int { return 1 }
func (PlainRow) isRow()          {}

// GroupedRow bundles an ordered sequence of subrows.
// Only the first subrow is visible by default,
// the remaining subrows are toggled via the row's expander.
type GroupedRow []Fields

func (g GroupedRow) NumSubrows() int { return len(g) }
func (GroupedRow) isRow()            {}
