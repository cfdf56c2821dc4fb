package export

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/template"

	"github.com/de-tools/market-atlas/pkg/models/domain"
)

const (
	FormatTable = "table"
	FormatText  = "text"
	FormatJSON  = "json"
)

// Handler renders a finished report
type Handler interface {
	Handle(report *domain.Report) error
}

// NewHandler returns the reporter for format
func NewHandler(format string, writer io.Writer) (Handler, error) {
	switch format {
	case "", FormatTable:
		return NewReporter(writer), nil
	case FormatText:
		return NewTextReporter(writer), nil
	case FormatJSON:
		return NewJSONReporter(writer), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

type TableConfig struct {
	NameWidth        int
	ValueWidth       int
	WeightWidth      int
	DescriptionWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:        24,
		ValueWidth:       20,
		WeightWidth:      8,
		DescriptionWidth: 40,
	}
}

// Reporter renders reports as one table per region
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(report *domain.Report) error {
	funcMap := template.FuncMap{
		"formatRow": func(name string, value string, weight string, desc string) string {
			return fmt.Sprintf("| %-*s | %*s | %*s | %-*s |",
				c.config.NameWidth, name,
				c.config.ValueWidth, value,
				c.config.WeightWidth, weight,
				c.config.DescriptionWidth, desc)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.NameWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2),
				strings.Repeat("-", c.config.WeightWidth+2),
				strings.Repeat("-", c.config.DescriptionWidth+2))
		},
		"weights": formatWeights,
	}

	tmpl := `
{{.Title}}

Years: {{.Years.Start}} to {{.Years.End}}
Weights: {{weights .Weights}} ({{.Weighting}})
Generated: {{.GeneratedAt.Format "2006-01-02 15:04:05"}}{{if .RunID}} [{{.RunID}}]{{end}}
{{if not .Sections}}
No statistics found for the selected regions and years.
{{end}}{{range .Sections}}
=== Region {{.Title}} ===
{{separator}}
{{formatRow "Statistic" "Total" "Weight" "Description"}}
{{separator}}
{{range .Details}}{{formatRow .Name (printf "%.2f" .Value) (printf "%d%%" .Weight) .Description}}
{{end}}{{separator}}
{{end}}`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}

func formatWeights(weights domain.Weights) string {
	stats := make([]string, 0, len(weights))
	for stat := range weights {
		stats = append(stats, stat)
	}
	sort.Strings(stats)

	parts := make([]string, 0, len(stats))
	for _, stat := range stats {
		parts = append(parts, fmt.Sprintf("%s %d%%", stat, weights[stat]))
	}
	return strings.Join(parts, ", ")
}
