package htmlgrid

import "html/template"

// Default expander icons, matching what ToggleScript flips between.
const (
	CollapsedIcon = "+"
	ExpandedIcon  = "−" // minus sign, not hyphen
)

var (
	ContainerTemplate = template.Must(template.New("container").Parse(
		"<div class='gridtable{{if .ContainerClass}} {{.ContainerClass}}{{end}}'" +
			"{{if .GridTemplateColumns}} style='grid-template-columns:{{.GridTemplateColumns}}'{{end}}>\n",
	))

	RowTemplate = template.Must(template.New("row").Parse("" +
		"{{if .IsHeaderRow}}" +
		"  <div class='row head'>{{range $cell := .RawCells}}{{$cell}}{{end}}</div>\n" +
		"{{else if .IsFooterRow}}" +
		"  <div class='row foot'>{{range $cell := .RawCells}}{{$cell}}{{end}}</div>\n" +
		"{{else}}" +
		"  <div class='row'>{{range $cell := .RawCells}}{{$cell}}{{end}}</div>\n" +
		"{{end}}",
	))

	CellTemplate = template.Must(template.New("cell").Parse(
		"<span class='{{.Class}}'{{if .Role}} role='{{.Role}}'{{end}}>{{.Content}}</span>",
	))

	FooterTemplate = template.Must(template.New("footer").Parse(
		"</div>",
	))
)

type TemplateContext struct {
	ContainerClass      string
	GridTemplateColumns string
}

type RowTemplateContext struct {
	TemplateContext

	IsHeaderRow bool
	IsFooterRow bool
	RowIndex    int
	RawCells    []template.HTML
}

type CellTemplateContext struct {
	Class   string
	Role    string
	Content template.HTML
}
