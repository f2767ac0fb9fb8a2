package main

import (
	"fmt"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/domonda/go-gridtable"
	"github.com/domonda/go-gridtable/htmlgrid"
	"github.com/domonda/go-gridtable/textgrid"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gridtable",
		Short:         "Render schema-driven tables with expandable subrows",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.AddCommand(newRenderCmd())
	return rootCmd
}

type renderFlags struct {
	data       string
	schema     string
	dataFile   string
	schemaFile string
	format     string
	htmlClass  string
	expand     []int
	expandAll  bool
	omitHeader bool
	omitFooter bool
}

func (f *renderFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.data, "data", "", "dataset as inline JSON, @file, or - for stdin")
	flags.StringVar(&f.schema, "schema", "", "schema as inline JSON, @file, or - for stdin")
	flags.StringVar(&f.dataFile, "data-file", "", "read the dataset from a JSON file")
	flags.StringVar(&f.schemaFile, "schema-file", "", "read the schema from a JSON or YAML file")
	flags.StringVarP(&f.format, "format", "f", "text", "output format: text or html")
	flags.StringVar(&f.htmlClass, "html-class", "", "extra CSS class for the HTML container element")
	flags.IntSliceVar(&f.expand, "expand", nil, "indexes of grouped rows to render expanded")
	flags.BoolVar(&f.expandAll, "expand-all", false, "render all grouped rows expanded")
	flags.BoolVar(&f.omitHeader, "omit-header", false, "render without the header row")
	flags.BoolVar(&f.omitFooter, "omit-footer", false, "render without the record count footer")
}

func (f *renderFlags) options() []gridtable.Option {
	var options []gridtable.Option
	if f.expandAll {
		options = append(options, gridtable.OptionExpandAll)
	}
	if f.omitHeader {
		options = append(options, gridtable.OptionOmitHeaderRow)
	}
	if f.omitFooter {
		options = append(options, gridtable.OptionOmitFooter)
	}
	return options
}

func newRenderCmd() *cobra.Command {
	flags := new(renderFlags)

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render a dataset and schema as a table",
		Example: `  gridtable render --schema '[{"key":"a","name":"A","default":"-"}]' --data '[{"a":1},[{"a":2},{"a":3}]]'
  gridtable render --schema-file schema.yaml --data-file data.json --format html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			schemaText, err := resolveSchemaInput(ctx, flags.schema, flags.schemaFile)
			if err != nil {
				return err
			}
			dataText, err := resolveInput(ctx, flags.data, flags.dataFile)
			if err != nil {
				return err
			}

			widget := gridtable.New()
			if err = widget.SetSchema(schemaText); err != nil {
				return err
			}
			if err = widget.SetData(dataText); err != nil {
				return err
			}
			for _, rowIndex := range flags.expand {
				widget.Toggle(rowIndex)
			}

			switch flags.format {
			case "html":
				return htmlgrid.NewWriter().
					WithContainerClass(flags.htmlClass).
					WithOptions(flags.options()...).
					Write(ctx, cmd.OutOrStdout(), widget)
			case "text":
				return textgrid.NewWriter().
					WithColorProfile(termenv.EnvColorProfile()).
					WithOptions(flags.options()...).
					Write(ctx, cmd.OutOrStdout(), widget)
			default:
				return fmt.Errorf("unknown format %q, expected text or html", flags.format)
			}
		},
	}
	flags.register(renderCmd.Flags())
	return renderCmd
}
