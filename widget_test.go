package gridtable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testSchema = `[{"key":"a","name":"A","default":"-"}]`
	testData   = `[{"a":1},[{"a":2},{"a":3}],[{"a":4},{"a":5}]]`
)

func newTestWidget(t *testing.T) *Widget {
	t.Helper()
	w := New()
	require.NoError(t, w.SetSchema(testSchema))
	require.NoError(t, w.SetData(testData))
	return w
}

func TestWidgetLayout(t *testing.T) {
	tests := []struct {
		name       string
		schema     string
		data       string
		wantGrid   string
		wantCols   int
		wantGroups bool
	}{
		{
			name:     "no columns no rows",
			schema:   `[]`,
			data:     `[]`,
			wantGrid: "",
			wantCols: 0,
		},
		{
			name:     "plain rows only",
			schema:   `[{"key":"a","name":"A"},{"key":"b","name":"B"}]`,
			data:     `[{"a":1},{"b":2}]`,
			wantGrid: "1fr 1fr",
			wantCols: 2,
		},
		{
			name:       "grouped row present",
			schema:     `[{"key":"a","name":"A"},{"key":"b","name":"B"}]`,
			data:       `[{"a":1},[{"a":2},{"a":3}]]`,
			wantGrid:   "1rem 1fr 1fr",
			wantCols:   3,
			wantGroups: true,
		},
		{
			name:       "grouped row without schema columns",
			schema:     `[]`,
			data:       `[[{"a":1}]]`,
			wantGrid:   "1rem",
			wantCols:   1,
			wantGroups: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New()
			require.NoError(t, w.SetSchema(tt.schema))
			require.NoError(t, w.SetData(tt.data))

			layout := w.Layout()
			require.Equal(t, tt.wantGrid, layout.GridTemplateColumns)
			require.Equal(t, tt.wantCols, layout.NumColumns)
			require.Equal(t, tt.wantGroups, layout.HasGroupedRows)
		})
	}
}

func TestWidgetLayoutRecomputed(t *testing.T) {
	w := New()
	require.NoError(t, w.SetSchema(`[{"key":"a","name":"A"}]`))
	require.NoError(t, w.SetData(`[{"a":1}]`))
	require.Equal(t, "1fr", w.Layout().GridTemplateColumns)

	// A data change must be reflected by the next Layout call.
	require.NoError(t, w.SetData(`[[{"a":1},{"a":2}]]`))
	require.Equal(t, "1rem 1fr", w.Layout().GridTemplateColumns)
}

func TestWidgetToggle(t *testing.T) {
	w := newTestWidget(t)

	require.False(t, w.Toggle(0), "plain row is not toggleable")
	require.False(t, w.Toggle(-1))
	require.False(t, w.Toggle(3), "out of range")

	require.True(t, w.Toggle(1))
	require.True(t, w.Expanded(1))
	require.False(t, w.Expanded(2), "toggling one row must not affect other rows")

	require.False(t, w.Toggle(1))
	require.False(t, w.Expanded(1))

	// An even number of toggles restores the collapsed state,
	// an odd number leaves the row expanded.
	for i := 0; i < 4; i++ {
		w.Toggle(2)
	}
	require.False(t, w.Expanded(2))
	for i := 0; i < 3; i++ {
		w.Toggle(2)
	}
	require.True(t, w.Expanded(2))
}

func TestWidgetToggleSingleSubrow(t *testing.T) {
	w := New()
	require.NoError(t, w.SetSchema(testSchema))
	require.NoError(t, w.SetData(`[[{"a":1}]]`))

	// A grouped row with a single subrow has nothing to expand,
	// toggling changes state but the rendered view is identical.
	collapsed, err := w.View()
	require.NoError(t, err)
	require.True(t, w.Toggle(0))
	expanded, err := w.View()
	require.NoError(t, err)

	require.Len(t, collapsed.Rows[0].Subrows, 1)
	require.False(t, collapsed.Rows[0].Subrows[0].Hidden)
	require.False(t, expanded.Rows[0].Subrows[0].Hidden)
}

func TestWidgetInputChangeResetsExpansion(t *testing.T) {
	w := newTestWidget(t)
	require.True(t, w.Toggle(1))

	require.NoError(t, w.SetData(`[[{"a":9},{"a":10}]]`))
	require.False(t, w.Expanded(0))
	require.False(t, w.Expanded(1), "data change discards all expand state")

	w = newTestWidget(t)
	require.True(t, w.Toggle(1))
	require.NoError(t, w.SetSchema(`[{"key":"b","name":"B"}]`))
	require.False(t, w.Expanded(1), "schema change discards all expand state")
}

func TestWidgetUnchangedInputKeepsState(t *testing.T) {
	w := newTestWidget(t)
	require.True(t, w.Toggle(1))

	// Setting the identical input text is not a change,
	// it must neither re-parse nor reset the expand state.
	require.NoError(t, w.SetData(testData))
	require.True(t, w.Expanded(1))
}

func TestWidgetParseError(t *testing.T) {
	w := newTestWidget(t)

	err := w.SetData(`[{"a":`)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrMalformedInput)
	require.ErrorIs(t, w.Err(), ErrMalformedInput)
	require.Nil(t, w.Dataset(), "previous dataset is not retained")

	view, err := w.View()
	require.Error(t, err, "error state must not render a view")
	require.Nil(t, view)

	// A subsequent valid input clears the error state.
	require.NoError(t, w.SetData(`[{"a":7}]`))
	require.NoError(t, w.Err())
	view, err = w.View()
	require.NoError(t, err)
	require.Len(t, view.Rows, 1)
}

func TestWidgetRecordCount(t *testing.T) {
	w := newTestWidget(t)
	// Grouped rows count as one entry each, not per subrow.
	require.Equal(t, 3, w.RecordCount())

	require.NoError(t, w.SetData(``))
	require.Equal(t, 0, w.RecordCount())
}
