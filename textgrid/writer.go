// Package textgrid renders a gridtable widget as fixed-width text
// for terminal output.
//
// Hidden subrows are omitted from the output instead of being marked,
// a terminal has no notion of toggling visibility after the fact.
// Styling uses termenv and defaults to the plain Ascii profile so
// that output is deterministic unless a color profile is configured.
package textgrid

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/muesli/termenv"

	"github.com/domonda/go-gridtable"
)

// Writer writes a widget's visual tree as fixed-width text.
//
// Writer is immutable after creation - all With* methods return
// a new Writer instance with the modified configuration.
type Writer struct {
	profile          termenv.Profile
	noDataText       string
	nilValue         string
	collapsedIcon    string
	expandedIcon     string
	padding          int
	columnFormatters map[string]gridtable.CellFormatter
	options          gridtable.Option
}

// NewWriter creates a new text grid writer.
//
// Default configuration:
//   - termenv.Ascii color profile (no styling sequences)
//   - "no data to show" as informational text for an empty dataset
//   - Empty string for nil values
//   - "+" and "−" as collapsed and expanded expander icons
//   - Two spaces of padding between columns
func NewWriter() *Writer {
	return &Writer{
		profile:          termenv.Ascii,
		noDataText:       "no data to show",
		collapsedIcon:    "+",
		expandedIcon:     "−",
		padding:          2,
		columnFormatters: make(map[string]gridtable.CellFormatter),
	}
}

// Write builds the widget's visual tree and writes it as text
// to the destination writer.
//
// The widget's parse error is returned unwritten, a widget in an
// error state never produces partial output.
func (w *Writer) Write(ctx context.Context, dest io.Writer, widget *gridtable.Widget) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	view, err := widget.View(w.options)
	if err != nil {
		return err
	}
	return w.WriteView(ctx, dest, view)
}

// WriteView writes an already built visual tree as text
// to the destination writer.
func (w *Writer) WriteView(ctx context.Context, dest io.Writer, view *gridtable.View) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	body, err := w.bodyStrings(ctx, view)
	if err != nil {
		return err
	}
	widths := w.columnWidths(view, body)

	var buf bytes.Buffer
	if !w.options.Has(gridtable.OptionOmitHeaderRow) && len(widths) > 0 {
		headerCells := make([]string, len(view.HeaderCells))
		for i, name := range view.HeaderCells {
			headerCells[i] = w.profile.String(name).Bold().String()
		}
		w.writeLine(&buf, headerCells, view.HeaderCells, widths)

		rule := make([]string, len(widths))
		plain := make([]string, len(widths))
		for i, width := range widths {
			plain[i] = strings.Repeat("─", width)
			rule[i] = w.profile.String(plain[i]).Faint().String()
		}
		w.writeLine(&buf, rule, plain, widths)
	}

	switch {
	case view.NoData:
		buf.WriteString(w.profile.String(w.noDataText).Faint().Italic().String())
		buf.WriteByte('\n')

	default:
		for i, row := range view.Rows {
			for j, subrow := range row.Subrows {
				if subrow.Hidden {
					continue
				}
				cells := make([]string, 0, len(widths))
				plain := make([]string, 0, len(widths))
				if view.Layout.HasGroupedRows {
					icon := w.expanderIcon(row, subrow)
					cells = append(cells, icon)
					plain = append(plain, icon)
				}
				cells = append(cells, body[i][j]...)
				plain = append(plain, body[i][j]...)
				w.writeLine(&buf, cells, plain, widths)
			}
		}
	}

	if !w.options.Has(gridtable.OptionOmitFooter) {
		buf.WriteString(w.profile.String(view.FooterText).Faint().String())
		buf.WriteByte('\n')
	}

	_, err = dest.Write(buf.Bytes())
	return err
}

// bodyStrings formats every cell of every subrow, including hidden
// ones so that column widths don't shift when a row gets expanded.
func (w *Writer) bodyStrings(ctx context.Context, view *gridtable.View) ([][][]string, error) {
	body := make([][][]string, len(view.Rows))
	for i, row := range view.Rows {
		body[i] = make([][]string, len(row.Subrows))
		for j, subrow := range row.Subrows {
			body[i][j] = make([]string, len(subrow.Cells))
			for col, viewCell := range subrow.Cells {
				str, err := w.cellString(ctx, &gridtable.Cell{
					Column: view.Columns[col],
					Row:    row.Index,
					Value:  viewCell.Value,
				})
				if err != nil {
					return nil, err
				}
				body[i][j][col] = str
			}
		}
	}
	return body, nil
}

// cellString formats a body cell value through the formatter cascade:
// a column formatter registered for the cell's column key, falling
// through on errors.ErrUnsupported to fmt.Sprint of the value.
func (w *Writer) cellString(ctx context.Context, cell *gridtable.Cell) (string, error) {
	if colFormatter, ok := w.columnFormatters[cell.Column.Key]; ok {
		str, _, err := colFormatter.FormatCell(ctx, cell)
		if err != nil && !errors.Is(err, errors.ErrUnsupported) {
			return "", err
		}
		if err == nil {
			return str, nil
		}
	}
	if cell.Value == nil {
		return w.nilValue, nil
	}
	return fmt.Sprint(cell.Value), nil
}

// columnWidths returns the width of every visual column, measured
// over the header label and all body cells of the column.
func (w *Writer) columnWidths(view *gridtable.View, body [][][]string) []int {
	widths := make([]int, view.Layout.NumColumns)
	for i, name := range view.HeaderCells {
		if i < len(widths) {
			widths[i] = utf8.RuneCountInString(name)
		}
	}
	colOffset := 0
	if view.Layout.HasGroupedRows {
		colOffset = 1
		if len(widths) > 0 && widths[0] < 1 {
			widths[0] = 1 // expander column
		}
	}
	for _, row := range body {
		for _, subrow := range row {
			for col, str := range subrow {
				if i := col + colOffset; i < len(widths) {
					if width := utf8.RuneCountInString(str); width > widths[i] {
						widths[i] = width
					}
				}
			}
		}
	}
	return widths
}

func (w *Writer) expanderIcon(row gridtable.ViewRow, subrow gridtable.ViewSubrow) string {
	if row.Expander == gridtable.ExpanderNone || subrow.Index > 0 {
		return ""
	}
	if row.Expander == gridtable.ExpanderExpanded {
		return w.expandedIcon
	}
	return w.collapsedIcon
}

// writeLine writes one output line. Cells may carry styling
// sequences, the parallel plain slice is used for width padding.
// Trailing whitespace is trimmed.
func (w *Writer) writeLine(buf *bytes.Buffer, cells, plain []string, widths []int) {
	var line strings.Builder
	for i, width := range widths {
		if i > 0 {
			line.WriteString(strings.Repeat(" ", w.padding))
		}
		cell, plainCell := "", ""
		if i < len(cells) {
			cell, plainCell = cells[i], plain[i]
		}
		line.WriteString(cell)
		if fill := width - utf8.RuneCountInString(plainCell); fill > 0 {
			line.WriteString(strings.Repeat(" ", fill))
		}
	}
	buf.WriteString(strings.TrimRight(line.String(), " "))
	buf.WriteByte('\n')
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// WithColorProfile returns a new writer using the passed termenv
// profile for styling. Use termenv.EnvColorProfile() to detect the
// terminal's capabilities including NO_COLOR handling.
func (w *Writer) WithColorProfile(profile termenv.Profile) *Writer {
	mod := w.clone()
	mod.profile = profile
	return mod
}

// WithNoDataText returns a new writer with the informational text
// written for an empty dataset.
func (w *Writer) WithNoDataText(noDataText string) *Writer {
	mod := w.clone()
	mod.noDataText = noDataText
	return mod
}

// WithNilValue returns a new writer with the string to use for cell
// values that resolved to nil even after applying the column default.
func (w *Writer) WithNilValue(nilValue string) *Writer {
	mod := w.clone()
	mod.nilValue = nilValue
	return mod
}

// WithCollapsedIcon returns a new writer with the expander icon
// written for collapsed grouped rows.
func (w *Writer) WithCollapsedIcon(icon string) *Writer {
	mod := w.clone()
	mod.collapsedIcon = icon
	return mod
}

// WithExpandedIcon returns a new writer with the expander icon
// written for expanded grouped rows.
func (w *Writer) WithExpandedIcon(icon string) *Writer {
	mod := w.clone()
	mod.expandedIcon = icon
	return mod
}

// WithPadding returns a new writer with the number of spaces
// written between columns.
func (w *Writer) WithPadding(padding int) *Writer {
	mod := w.clone()
	mod.padding = padding
	return mod
}

// WithColumnFormatter returns a new writer with the formatter registered
// for the column with the passed key.
// If nil is passed as formatter, any previously registered formatter
// for the column is removed.
func (w *Writer) WithColumnFormatter(columnKey string, formatter gridtable.CellFormatter) *Writer {
	mod := w.clone()
	mod.columnFormatters = make(map[string]gridtable.CellFormatter, len(w.columnFormatters)+1)
	for key, val := range w.columnFormatters {
		mod.columnFormatters[key] = val
	}
	if formatter != nil {
		mod.columnFormatters[columnKey] = formatter
	} else {
		delete(mod.columnFormatters, columnKey)
	}
	return mod
}

// WithColumnFormatterFunc returns a new writer with the formatter function
// registered for the column with the passed key.
func (w *Writer) WithColumnFormatterFunc(columnKey string, formatterFunc gridtable.CellFormatterFunc) *Writer {
	return w.WithColumnFormatter(columnKey, formatterFunc)
}

// WithOptions returns a new writer with the passed render options
// added to the already configured ones.
func (w *Writer) WithOptions(options ...gridtable.Option) *Writer {
	mod := w.clone()
	for _, o := range options {
		mod.options |= o
	}
	return mod
}
