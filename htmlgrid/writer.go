// Package htmlgrid renders a gridtable widget as CSS grid HTML markup.
//
// The markup mirrors the widget's visual tree: a container element with
// an inline grid-template-columns style, one row element per header,
// body and footer row, and span elements for the cells. Hidden subrows
// are present in the markup with a "hidden" class so that the embedded
// toggle script can flip their visibility without a round trip.
//
// The host document embeds StyleSheet and ToggleScript explicitly,
// once, instead of the widget registering anything global.
//
// Example usage:
//
//	widget := gridtable.New()
//	widget.SetSchema(`[{"key":"name","name":"Name","default":"-"}]`)
//	widget.SetData(`[{"name":"Alice"},[{"name":"Bob"},{"name":"Carol"}]]`)
//
//	err := htmlgrid.NewWriter().
//	    WithContainerClass("users").
//	    Write(ctx, os.Stdout, widget)
package htmlgrid

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"

	"github.com/domonda/go-gridtable"
)

// Writer writes a widget's visual tree as CSS grid HTML markup.
//
// Writer is immutable after creation - all With* methods return
// a new Writer instance with the modified configuration.
//
// HTML Escaping:
// By default, all cell values are HTML-escaped for safety.
// Formatters can return raw HTML by setting the raw return value to true.
type Writer struct {
	containerClass   string
	noDataText       string
	nilValue         template.HTML
	collapsedIcon    string
	expandedIcon     string
	columnFormatters map[string]gridtable.CellFormatter
	options          gridtable.Option

	containerTemplate *template.Template
	rowTemplate       *template.Template
	cellTemplate      *template.Template
	footerTemplate    *template.Template
}

// NewWriter creates a new HTML grid writer.
//
// Default configuration:
//   - No extra container class
//   - "no data to show" as informational text for an empty dataset
//   - Empty string for nil values
//   - "+" and "−" as collapsed and expanded expander icons
//   - No column formatters
//   - Standard templates from templates.go
//
// Use the With* methods to customize the writer configuration.
func NewWriter() *Writer {
	return &Writer{
		noDataText:        "no data to show",
		collapsedIcon:     CollapsedIcon,
		expandedIcon:      ExpandedIcon,
		columnFormatters:  make(map[string]gridtable.CellFormatter),
		containerTemplate: ContainerTemplate,
		rowTemplate:       RowTemplate,
		cellTemplate:      CellTemplate,
		footerTemplate:    FooterTemplate,
	}
}

// Write builds the widget's visual tree and writes it as HTML
// to the destination writer.
//
// The widget's parse error is returned unwritten, a widget in an
// error state never produces partial markup.
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

// WriteView writes an already built visual tree as HTML
// to the destination writer.
func (w *Writer) WriteView(ctx context.Context, dest io.Writer, view *gridtable.View) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	var (
		cellBuf   bytes.Buffer
		templData = &RowTemplateContext{
			TemplateContext: TemplateContext{
				ContainerClass:      w.containerClass,
				GridTemplateColumns: view.Layout.GridTemplateColumns,
			},
		}
	)

	err := w.containerTemplate.Execute(dest, templData.TemplateContext)
	if err != nil {
		return err
	}

	if !w.options.Has(gridtable.OptionOmitHeaderRow) {
		templData.IsHeaderRow = true
		templData.RawCells = templData.RawCells[:0]
		for _, name := range view.HeaderCells {
			cell, err := w.renderCell(&cellBuf, "cell header", "", escape(name))
			if err != nil {
				return err
			}
			templData.RawCells = append(templData.RawCells, cell)
		}
		err = w.rowTemplate.Execute(dest, templData)
		if err != nil {
			return err
		}
		templData.IsHeaderRow = false
		templData.RowIndex++
	}

	switch {
	case view.NoData:
		templData.RawCells = templData.RawCells[:0]
		cell, err := w.renderCell(&cellBuf, "cell no-data", "", escape(w.noDataText))
		if err != nil {
			return err
		}
		templData.RawCells = append(templData.RawCells, cell)
		err = w.rowTemplate.Execute(dest, templData)
		if err != nil {
			return err
		}
		templData.RowIndex++

	default:
		for _, row := range view.Rows {
			templData.RawCells, err = w.rowCells(ctx, &cellBuf, view, row, templData.RawCells[:0])
			if err != nil {
				return err
			}
			err = w.rowTemplate.Execute(dest, templData)
			if err != nil {
				return err
			}
			templData.RowIndex++
		}
	}

	if !w.options.Has(gridtable.OptionOmitFooter) {
		templData.IsFooterRow = true
		templData.RawCells = templData.RawCells[:0]
		cell, err := w.renderCell(&cellBuf, "cell footer", "", escape(view.FooterText))
		if err != nil {
			return err
		}
		templData.RawCells = append(templData.RawCells, cell)
		err = w.rowTemplate.Execute(dest, templData)
		if err != nil {
			return err
		}
		templData.IsFooterRow = false
	}

	return w.footerTemplate.Execute(dest, templData.TemplateContext)
}

// rowCells renders all cells of one visual row: per subrow an expander
// column cell when the layout has one, followed by the schema column cells.
func (w *Writer) rowCells(ctx context.Context, cellBuf *bytes.Buffer, view *gridtable.View, row gridtable.ViewRow, cells []template.HTML) ([]template.HTML, error) {
	for _, subrow := range row.Subrows {
		if view.Layout.HasGroupedRows {
			cell, err := w.renderExpanderCell(cellBuf, row, subrow)
			if err != nil {
				return nil, err
			}
			cells = append(cells, cell)
		}
		class := "cell"
		if subrow.Index > 0 {
			class += " subrow"
		}
		if subrow.Hidden {
			class += " hidden"
		}
		for col, viewCell := range subrow.Cells {
			content, err := w.cellContent(ctx, &gridtable.Cell{
				Column: view.Columns[col],
				Row:    row.Index,
				Value:  viewCell.Value,
			})
			if err != nil {
				return nil, err
			}
			cell, err := w.renderCell(cellBuf, class, "", content)
			if err != nil {
				return nil, err
			}
			cells = append(cells, cell)
		}
	}
	return cells, nil
}

// renderExpanderCell renders the leading expander column cell of a subrow.
// Only the first subrow of a grouped row carries the clickable expander
// control, all other cells in the expander column are placeholders for
// column alignment.
func (w *Writer) renderExpanderCell(cellBuf *bytes.Buffer, row gridtable.ViewRow, subrow gridtable.ViewSubrow) (template.HTML, error) {
	if row.Expander == gridtable.ExpanderNone || subrow.Index > 0 {
		class := "cell"
		if subrow.Index > 0 {
			class += " subrow"
		}
		if subrow.Hidden {
			class += " hidden"
		}
		return w.renderCell(cellBuf, class, "", "")
	}
	class := "cell expander"
	icon := w.collapsedIcon
	if row.Expander == gridtable.ExpanderExpanded {
		class += " expanded"
		icon = w.expandedIcon
	}
	return w.renderCell(cellBuf, class, "button", escape(icon))
}

// cellContent formats a body cell value through the formatter cascade:
// a column formatter registered for the cell's column key, falling
// through on errors.ErrUnsupported to fmt.Sprint of the value.
// Non-raw results are HTML-escaped.
func (w *Writer) cellContent(ctx context.Context, cell *gridtable.Cell) (template.HTML, error) {
	if colFormatter, ok := w.columnFormatters[cell.Column.Key]; ok {
		str, isRaw, err := colFormatter.FormatCell(ctx, cell)
		if err != nil && !errors.Is(err, errors.ErrUnsupported) {
			return "", err
		}
		if err == nil {
			if !isRaw {
				str = template.HTMLEscapeString(str)
			}
			return template.HTML(str), nil //#nosec G203
		}
	}
	if cell.Value == nil {
		return w.nilValue, nil
	}
	return escape(fmt.Sprint(cell.Value)), nil
}

func (w *Writer) renderCell(cellBuf *bytes.Buffer, class, role string, content template.HTML) (template.HTML, error) {
	cellBuf.Reset()
	err := w.cellTemplate.Execute(cellBuf, &CellTemplateContext{
		Class:   class,
		Role:    role,
		Content: content,
	})
	if err != nil {
		return "", err
	}
	return template.HTML(cellBuf.String()), nil //#nosec G203
}

func escape(str string) template.HTML {
	return template.HTML(template.HTMLEscapeString(str)) //#nosec G203
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// WithContainerClass returns a new writer with an additional CSS class
// for the container element, rendered after the base "gridtable" class.
func (w *Writer) WithContainerClass(containerClass string) *Writer {
	mod := w.clone()
	mod.containerClass = containerClass
	return mod
}

// WithNoDataText returns a new writer with the informational text
// rendered for an empty dataset.
func (w *Writer) WithNoDataText(noDataText string) *Writer {
	mod := w.clone()
	mod.noDataText = noDataText
	return mod
}

// WithNilValue returns a new writer with the specified HTML to use
// for cell values that resolved to nil even after applying the
// column default.
func (w *Writer) WithNilValue(nilValue template.HTML) *Writer {
	mod := w.clone()
	mod.nilValue = nilValue
	return mod
}

// WithCollapsedIcon returns a new writer with the expander icon
// rendered for collapsed grouped rows.
//
// Note that ToggleScript flips icons client-side using the default
// icons, a host using custom icons has to bring its own script.
func (w *Writer) WithCollapsedIcon(icon string) *Writer {
	mod := w.clone()
	mod.collapsedIcon = icon
	return mod
}

// WithExpandedIcon returns a new writer with the expander icon
// rendered for expanded grouped rows.
//
// Note that ToggleScript flips icons client-side using the default
// icons, a host using custom icons has to bring its own script.
func (w *Writer) WithExpandedIcon(icon string) *Writer {
	mod := w.clone()
	mod.expandedIcon = icon
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

// WithRawColumn returns a new writer that interprets the values of the
// column with the passed key as raw HTML strings.
//
// Warning: Only use this for trusted content to avoid XSS vulnerabilities.
func (w *Writer) WithRawColumn(columnKey string) *Writer {
	return w.WithColumnFormatter(columnKey, gridtable.SprintCellFormatter(true))
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

// WithTemplate returns a new writer with custom templates for rendering
// the grid markup. See templates.go for the default templates and the
// template context structures.
func (w *Writer) WithTemplate(containerTemplate, rowTemplate, cellTemplate, footerTemplate *template.Template) *Writer {
	mod := w.clone()
	mod.containerTemplate = containerTemplate
	mod.rowTemplate = rowTemplate
	mod.cellTemplate = cellTemplate
	mod.footerTemplate = footerTemplate
	return mod
}

// ContainerClass returns the extra CSS class configured
// for the container element.
func (w *Writer) ContainerClass() string {
	return w.containerClass
}

// NilValue returns the HTML configured to be rendered for nil values.
func (w *Writer) NilValue() template.HTML {
	return w.nilValue
}
