package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/Dogecat0/Aperilex-sub002/pkg/models/domain"
)

// Reporter outputs rendered filings to the console in plain text.
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(filing *domain.RenderedFiling) error {
	funcMap := template.FuncMap{
		"indent": func(depth int) string {
			return strings.Repeat("  ", depth)
		},
	}

	tmpl := `
{{.Ticker}} {{.FilingType}} ({{.Accession}})
{{- if .Placeholder}}

{{.Placeholder}}
{{- end}}
{{range .Sections}}
=== {{.DisplayName}} (sentiment {{printf "%.2f" .OverallSentiment}}) ===
{{- range .CriticalFindings}}
! {{.}}
{{- end}}
{{- range .SubSections}}

--- {{.Title}} ---
{{- range .KPIs}}
{{.Label}}: {{.Value}}
{{- end}}
{{- range .Badges}}
[{{.Label}}]
{{- end}}
{{- range .Blocks}}
{{template "block" .}}
{{- end}}
{{- range .Insights}}
* {{.Title}}: {{.Body}}
{{- end}}
{{- range .Charts}}
{{.Title}}:
{{- range .Series}}
  {{.Name}}: {{printf "%.2f" .Value}}
{{- end}}
{{- end}}
{{- end}}
{{end}}
{{- define "block"}}
{{- indent .Depth}}{{if .Label}}{{.Label}}{{if .Body}}: {{end}}{{end}}{{.Body}}
{{- if .Count}} ({{.Count}}){{end}}
{{- range .Items}}
{{template "block" .}}
{{- end}}
{{- end}}
`

	t, err := template.New("filing").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, filing)
}
