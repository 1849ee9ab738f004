package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/asset-atlas/pkg/models/api"
	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected text, json or csv)", s)
	}
}

// Report is one rendered view. Envelope is what json output encodes; Header
// and Rows are the table for text and csv output.
type Report struct {
	Title    string
	Envelope api.Envelope
	Header   []string
	Rows     [][]string
	// Footer lines are printed under the text table only.
	Footer []string
	// StatusColumn is the index of a column coloured by Statuses in text
	// output, or -1.
	StatusColumn int
	Statuses     []string
}

var (
	statusHigh   = color.New(color.FgGreen, color.Bold).SprintFunc()
	statusMedium = color.New(color.FgYellow, color.Bold).SprintFunc()
	statusLow    = color.New(color.FgRed, color.Bold).SprintFunc()
	notice       = color.New(color.FgRed).SprintFunc()
)

const header = `
{{.Title}}
Window: {{.Envelope.Window}}  Currency: {{.Envelope.Currency}}{{with .Envelope.LoadedAt}}  Loaded: {{.Format "2006-01-02 15:04:05"}}{{end}}
{{with .Envelope.Notification}}{{notice .Title}}{{if .Subtitle}}: {{notice .Subtitle}}{{end}}
{{end}}
`

type Reporter struct {
	writer io.Writer
	format Format
}

func NewReporter(writer io.Writer, format Format) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	if format == "" {
		format = FormatText
	}
	return &Reporter{writer: writer, format: format}
}

func (c *Reporter) Handle(report *Report) error {
	switch c.format {
	case FormatJSON:
		enc := json.NewEncoder(c.writer)
		enc.SetIndent("", "  ")
		return enc.Encode(report.Envelope)
	case FormatCSV:
		return c.writeCSV(report)
	default:
		return c.writeText(report)
	}
}

func (c *Reporter) writeCSV(report *Report) error {
	w := csv.NewWriter(c.writer)
	if err := w.Write(report.Header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	if err := w.WriteAll(report.Rows); err != nil {
		return fmt.Errorf("failed to write csv rows: %w", err)
	}
	return nil
}

func (c *Reporter) writeText(report *Report) error {
	funcMap := template.FuncMap{
		"notice": func(s string) string { return notice(s) },
	}
	t, err := template.New("report").Funcs(funcMap).Parse(header)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	if err := t.Execute(c.writer, report); err != nil {
		return err
	}

	if len(report.Rows) == 0 {
		_, err := fmt.Fprintln(c.writer, "No assets found")
		return err
	}

	data := pterm.TableData{report.Header}
	for i, row := range report.Rows {
		cells := append([]string(nil), row...)
		if report.StatusColumn >= 0 && report.StatusColumn < len(cells) && i < len(report.Statuses) {
			cells[report.StatusColumn] = colorize(report.Statuses[i], cells[report.StatusColumn])
		}
		data = append(data, cells)
	}

	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(data).
		Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	if _, err := fmt.Fprintln(c.writer, table); err != nil {
		return err
	}
	for _, line := range report.Footer {
		if _, err := fmt.Fprintln(c.writer, line); err != nil {
			return err
		}
	}
	return nil
}

// colorize paints s by efficiency status: success, warning or danger.
func colorize(status, s string) string {
	switch status {
	case "success":
		return statusHigh(s)
	case "warning":
		return statusMedium(s)
	case "danger":
		return statusLow(s)
	default:
		return s
	}
}
