// Command termfmt renders a stream of YAML objects through a format
// database, the way the rendering core's caller is expected to: load
// views and controls, resolve one per object's declared type, and walk
// it with the complex, list, or table generator.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/gridform/termfmt/cellwidth"
	"github.com/gridform/termfmt/column"
	"github.com/gridform/termfmt/config"
	"github.com/gridform/termfmt/errormanager"
	"github.com/gridform/termfmt/formatdb"
	"github.com/gridform/termfmt/internal/pathexpr"
	"github.com/gridform/termfmt/pipeline"
	"github.com/gridform/termfmt/view"
)

// tableRenderState holds the per-type column layout a table generator
// resolved once against the first object, so every subsequent row in
// the same run reuses it instead of re-solving widths per row.
type tableRenderState struct {
	header view.TableHeaderInfo
	widths []column.Width
}

const tableColumnSeparator = "  "
const tableMinColumnWidth = 3

var (
	flagFormatDB  string
	flagData      string
	flagStylePath string
	flagMode      string
	flagWidth     int
	flagGroupBy   string
	flagPlainText bool
	flagTypeField string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "termfmt",
		Short: "Render a YAML object stream through a termfmt view database",
	}

	render := &cobra.Command{
		Use:   "render",
		Short: "Render --data through the view matching each object's type",
		RunE:  runRender,
	}
	render.Flags().StringVar(&flagFormatDB, "format-db", "", "path to a format database YAML file (required)")
	render.Flags().StringVar(&flagData, "data", "", "path to a YAML document containing a list of objects (required)")
	render.Flags().StringVar(&flagStylePath, "style", "", "path to a style YAML file (optional, defaults to no accents)")
	render.Flags().StringVar(&flagMode, "mode", "complex", "rendering mode: complex, list, or table")
	render.Flags().IntVar(&flagWidth, "width", 0, "override detected terminal width")
	render.Flags().StringVar(&flagGroupBy, "group-by", "", "override the view's grouping expression")
	render.Flags().BoolVar(&flagPlainText, "plain", false, "strip escape sequences from output")
	render.Flags().StringVar(&flagTypeField, "type-field", "type", "object field naming its format-database type")
	_ = render.MarkFlagRequired("format-db")
	_ = render.MarkFlagRequired("data")

	root.AddCommand(render)
	return root
}

func runRender(cmd *cobra.Command, args []string) error {
	db, err := formatdb.Load(flagFormatDB)
	if err != nil {
		return fmt.Errorf("loading format database: %w", err)
	}

	style, err := loadStyle()
	if err != nil {
		return err
	}

	objects, err := loadObjects(flagData)
	if err != nil {
		return fmt.Errorf("loading data: %w", err)
	}
	if len(objects) == 0 {
		return nil
	}

	width := flagWidth
	if width <= 0 {
		width = detectWidth()
	}

	log := logrus.New()
	errors := errormanager.New(log, style, errormanager.Policy{
		DisplayErrorStrings: true,
	})

	sink := newStdoutSink(cmd.OutOrStdout(), width)
	ctx := context.Background()

	kind, err := parseKind(flagMode)
	if err != nil {
		return err
	}

	var currentType string
	var gen view.Generator
	var vc *view.ViewContext
	var table tableRenderState

	for i, object := range objects {
		src := newMapObjectSource(object, flagTypeField, "PSComputerName")
		typeName := ""
		if names := src.TypeNames(); len(names) > 0 {
			typeName = names[0]
		}
		if gen == nil || typeName != currentType {
			viewDef, ok := db.ResolveView(typeName)
			if !ok {
				viewDef = pipeline.ViewDefinition{}
			}
			vc = &view.ViewContext{
				Evaluator:       pathexpr.New(),
				Controls:        db,
				Style:           style,
				Errors:          errors,
				Cfg:             cellwidth.Default(),
				Locale:          "en",
				View:            viewDef,
				GroupByOverride: flagGroupBy,
				AutoSize:        viewDef.AutoSize,
				RepeatHeader:    viewDef.RepeatHeader,
				IsRemoteObject:  src.OriginHost() != "",
			}
			gen = view.NewGenerator(kind, vc)
			currentType = typeName
			table = tableRenderState{}

			header, err := gen.GenerateStartData(ctx, object)
			if err != nil {
				return fmt.Errorf("object %d: %w", i, err)
			}
			if kind == view.KindTable {
				table.header = header
				table.widths = solveTableWidths(header, sink.DisplayCells())
				if !header.HideHeader {
					if err := writeTableRow(sink, style, table, headerCells(header)); err != nil {
						return err
					}
				}
			}
		}

		groupTokens, started, err := gen.GenerateGroupStart(ctx, object)
		if err != nil {
			return fmt.Errorf("object %d: %w", i, err)
		}
		if started {
			if err := renderComplexSink(sink, style, vc, groupTokens); err != nil {
				return err
			}
			if kind == view.KindTable && table.header.RepeatHeader && !table.header.HideHeader {
				if err := writeTableRow(sink, style, table, headerCells(table.header)); err != nil {
					return err
				}
			}
		}

		payload, err := gen.GeneratePayload(ctx, object)
		if err != nil {
			return fmt.Errorf("object %d: %w", i, err)
		}

		if err := renderPayload(sink, style, vc, kind, table, payload); err != nil {
			return fmt.Errorf("object %d: %w", i, err)
		}
	}
	return nil
}

func renderPayload(sink *stdoutSink, style *config.Style, vc *view.ViewContext, kind view.Kind, table tableRenderState, payload any) error {
	switch kind {
	case view.KindComplex:
		return renderComplexSink(sink, style, vc, payload.([]view.FormatValue))
	case view.KindList:
		return view.WriteList(sink, style, vc.Cfg, vc.Locale, payload.([]view.Entry), sink.DisplayCells(), 10)
	default:
		return writeTableRow(sink, style, table, payload.([]string))
	}
}

// solveTableWidths runs the column solver against the header's column
// count, treating every column as auto-sized (view definitions here
// never request an explicit width).
func solveTableWidths(header view.TableHeaderInfo, totalWidth int) []column.Width {
	requests := make([]int, len(header.Columns))
	return column.Solve(totalWidth, tableMinColumnWidth, len(tableColumnSeparator), requests)
}

func headerCells(header view.TableHeaderInfo) []string {
	cells := make([]string, len(header.Columns))
	for i, c := range header.Columns {
		cells[i] = c.Label
	}
	return cells
}

// writeTableRow pads and joins cells per table's solved widths,
// skipping columns the solver hid. Alignment comes from the header's
// ColumnInfo when available.
func writeTableRow(sink *stdoutSink, style *config.Style, table tableRenderState, cells []string) error {
	var line string
	first := true
	for i, cell := range cells {
		if i >= len(table.widths) || table.widths[i] == column.Hidden {
			continue
		}
		width := int(table.widths[i])
		align := view.AlignLeft
		if i < len(table.header.Columns) {
			align = table.header.Columns[i].Alignment
		}
		if !first {
			line += tableColumnSeparator
		}
		first = false
		line += padCell(cell, width, align)
	}
	return sink.WriteLine(line)
}

func padCell(cell string, width int, align view.Alignment) string {
	w := cellwidth.StringWidth(cell, cellwidth.Default())
	if w >= width {
		return cellwidth.TruncateWithSuffix(cell, width, "", cellwidth.Default())
	}
	pad := width - w
	switch align {
	case view.AlignRight:
		return spaces(pad) + cell
	default:
		return cell + spaces(pad)
	}
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

func renderComplexSink(sink *stdoutSink, style *config.Style, vc *view.ViewContext, tokens []view.FormatValue) error {
	w := view.NewComplexWriter(sink, style, vc.Locale, vc.Cfg)
	return w.Process(tokens)
}

func loadStyle() (*config.Style, error) {
	if flagStylePath == "" {
		rendering := pipeline.Automatic
		if flagPlainText {
			rendering = pipeline.PlainText
		}
		return config.NewStyle(config.WithRendering(rendering)), nil
	}
	style, err := config.LoadStyle(flagStylePath)
	if err != nil {
		return nil, fmt.Errorf("loading style: %w", err)
	}
	if flagPlainText {
		style = config.NewStyle(
			config.WithAccent(style.Accent()),
			config.WithErrorAccent(style.ErrorAccent()),
			config.WithTableHeaderAccent(style.TableHeaderAccent()),
			config.WithRendering(pipeline.PlainText),
		)
	}
	return style, nil
}

func loadObjects(path string) ([]map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var objects []map[string]any
	if err := yaml.Unmarshal(raw, &objects); err != nil {
		return nil, err
	}
	return objects, nil
}

func detectWidth() int {
	const fallback = 80
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

func parseKind(mode string) (view.Kind, error) {
	switch mode {
	case "complex":
		return view.KindComplex, nil
	case "list":
		return view.KindList, nil
	case "table":
		return view.KindTable, nil
	default:
		return 0, fmt.Errorf("unknown mode %q: must be complex, list, or table", mode)
	}
}
