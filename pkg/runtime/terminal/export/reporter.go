package export

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"

	"github.com/yuin/goldmark"

	"github.com/Dogecat0/Aperilex-sub002/pkg/models/domain"
)

// Reporter writes rendered filings as a standalone HTML document.
// Paragraph bodies may carry markdown produced by the analysis
// pipeline; they are converted rather than escaped verbatim.
type Reporter struct {
	writer   io.Writer
	markdown goldmark.Markdown
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer:   writer,
		markdown: goldmark.New(),
	}
}

func (c *Reporter) Handle(filing *domain.RenderedFiling) error {
	funcMap := template.FuncMap{
		"markdown": func(body string) (template.HTML, error) {
			var buf bytes.Buffer
			if err := c.markdown.Convert([]byte(body), &buf); err != nil {
				return "", err
			}
			return template.HTML(buf.String()), nil
		},
	}

	tmpl := `<!DOCTYPE html>
<html>
<head><title>{{.Ticker}} {{.FilingType}}</title></head>
<body>
<h1>{{.Ticker}} {{.FilingType}} <small>{{.Accession}}</small></h1>
{{- if .Placeholder}}
<p><em>{{.Placeholder}}</em></p>
{{- end}}
{{- range .Sections}}
<section>
<h2>{{.DisplayName}} <small>sentiment {{printf "%.2f" .OverallSentiment}}</small></h2>
{{- if .CriticalFindings}}
<ul class="critical">
{{- range .CriticalFindings}}
<li>{{.}}</li>
{{- end}}
</ul>
{{- end}}
{{- range .SubSections}}
<article class="{{.Theme}}">
<h3>{{.Title}}</h3>
{{- range .Badges}}
<span class="badge" style="background:{{.Color}}">{{.Label}}</span>
{{- end}}
{{- range .KPIs}}
<div class="kpi"><strong>{{.Label}}</strong> {{.Value}}</div>
{{- end}}
{{- range .Blocks}}
{{template "block" .}}
{{- end}}
{{- range .Insights}}
<div class="insight {{.Type}}"><strong>{{.Title}}</strong>{{markdown .Body}}</div>
{{- end}}
{{- range .Charts}}
<figure>
<figcaption>{{.Title}}</figcaption>
<ul>
{{- range .Series}}
<li style="color:{{.Color}}">{{.Name}}: {{printf "%.2f" .Value}}</li>
{{- end}}
</ul>
</figure>
{{- end}}
</article>
{{- end}}
</section>
{{- end}}
</body>
</html>
{{- define "block"}}
{{- if eq .Kind "paragraph"}}
<h4>{{.Label}}</h4>
{{markdown .Body}}
{{- else if eq .Kind "field"}}
<div class="field">{{if .Label}}<strong>{{.Label}}</strong> {{end}}{{.Body}}</div>
{{- else if eq .Kind "list"}}
<h4>{{.Label}} ({{.Count}})</h4>
<ul>
{{- range .Items}}
<li>{{template "block" .}}</li>
{{- end}}
</ul>
{{- else}}
{{- if .Label}}<h4>{{.Label}}</h4>{{end}}
{{- range .Items}}
{{template "block" .}}
{{- end}}
{{- end}}
{{- end}}
`

	t, err := template.New("filing").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, filing)
}
