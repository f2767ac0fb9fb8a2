package gridtable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestView(t *testing.T) {
	w := New()
	require.NoError(t, w.SetSchema(`[{"key":"a","name":"A","default":"-"}]`))
	require.NoError(t, w.SetData(`[{"a":1},[{"a":2},{"a":3}]]`))

	view, err := w.View()
	require.NoError(t, err)

	require.Equal(t, 2, view.Layout.NumColumns, "1 schema column + 1 expander column")
	require.Equal(t, "1rem 1fr", view.Layout.GridTemplateColumns)
	require.Equal(t, []string{"", "A"}, view.HeaderCells)
	require.False(t, view.NoData)
	require.Equal(t, "2 records", view.FooterText)
	require.Len(t, view.Rows, 2)

	plain := view.Rows[0]
	require.Equal(t, ExpanderNone, plain.Expander)
	require.Len(t, plain.Subrows, 1)
	require.False(t, plain.Subrows[0].Hidden)
	require.Equal(t, []ViewCell{{Value: float64(1)}}, plain.Subrows[0].Cells)

	grouped := view.Rows[1]
	require.Equal(t, ExpanderCollapsed, grouped.Expander)
	require.Len(t, grouped.Subrows, 2)
	require.False(t, grouped.Subrows[0].Hidden, "first subrow is always visible")
	require.True(t, grouped.Subrows[1].Hidden, "subrows after the first are hidden by default")
	require.Equal(t, []ViewCell{{Value: float64(2)}}, grouped.Subrows[0].Cells)
	require.Equal(t, []ViewCell{{Value: float64(3)}}, grouped.Subrows[1].Cells)
}

func TestViewDefaults(t *testing.T) {
	w := New()
	require.NoError(t, w.SetSchema(`[{"key":"x","name":"X","default":"none"}]`))
	require.NoError(t, w.SetData(`[{}]`))

	view, err := w.View()
	require.NoError(t, err)
	require.Equal(t, "none", view.Rows[0].Subrows[0].Cells[0].Value)

	// An explicit null is treated like a missing field.
	require.NoError(t, w.SetData(`[{"x":null}]`))
	view, err = w.View()
	require.NoError(t, err)
	require.Equal(t, "none", view.Rows[0].Subrows[0].Cells[0].Value)

	// A present value wins over the default.
	require.NoError(t, w.SetData(`[{"x":false}]`))
	view, err = w.View()
	require.NoError(t, err)
	require.Equal(t, false, view.Rows[0].Subrows[0].Cells[0].Value)
}

func TestViewNoData(t *testing.T) {
	w := New()
	require.NoError(t, w.SetSchema(`[{"key":"a","name":"A"}]`))
	require.NoError(t, w.SetData(`[]`))

	view, err := w.View()
	require.NoError(t, err)
	require.True(t, view.NoData)
	require.Empty(t, view.Rows, "no schema column cells are rendered for an empty dataset")
	require.Equal(t, "0 records", view.FooterText)
	require.Equal(t, []string{"A"}, view.HeaderCells)
	require.Equal(t, 1, view.Layout.NumColumns)
}

func TestViewToggled(t *testing.T) {
	w := New()
	require.NoError(t, w.SetSchema(`[{"key":"a","name":"A"}]`))
	require.NoError(t, w.SetData(`[[{"a":1},{"a":2}],[{"a":3},{"a":4}]]`))
	require.True(t, w.Toggle(0))

	view, err := w.View()
	require.NoError(t, err)

	require.Equal(t, ExpanderExpanded, view.Rows[0].Expander)
	require.False(t, view.Rows[0].Subrows[1].Hidden)

	// The other grouped row keeps its own state.
	require.Equal(t, ExpanderCollapsed, view.Rows[1].Expander)
	require.True(t, view.Rows[1].Subrows[1].Hidden)
}

func TestViewExpandAll(t *testing.T) {
	w := New()
	require.NoError(t, w.SetSchema(`[{"key":"a","name":"A"}]`))
	require.NoError(t, w.SetData(`[[{"a":1},{"a":2}]]`))

	view, err := w.View(OptionExpandAll)
	require.NoError(t, err)
	require.Equal(t, ExpanderExpanded, view.Rows[0].Expander)
	require.False(t, view.Rows[0].Subrows[1].Hidden)

	// OptionExpandAll renders expanded without touching widget state.
	require.False(t, w.Expanded(0))
	view, err = w.View()
	require.NoError(t, err)
	require.Equal(t, ExpanderCollapsed, view.Rows[0].Expander)
}

func TestViewIdempotent(t *testing.T) {
	w := New()
	require.NoError(t, w.SetSchema(`[{"key":"a","name":"A","default":"-"}]`))
	require.NoError(t, w.SetData(`[{"a":1},[{"a":2},{"a":3}]]`))

	first, err := w.View()
	require.NoError(t, err)
	second, err := w.View()
	require.NoError(t, err)
	require.Equal(t, first, second)
}
