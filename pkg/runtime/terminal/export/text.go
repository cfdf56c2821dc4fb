package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/market-atlas/pkg/models/domain"
)

// TextReporter outputs reports to the console in a plain text form
type TextReporter struct {
	writer io.Writer
}

func NewTextReporter(writer io.Writer) *TextReporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &TextReporter{writer: writer}
}

func (c *TextReporter) Handle(report *domain.Report) error {
	tmpl := `Report Results ({{.Years}})
{{range .Sections}}{{.Title}}:{{range .Details}} {{.Name}}={{printf "%.2f" .Value}}{{end}}
{{end}}`
	t, err := template.New("text").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
