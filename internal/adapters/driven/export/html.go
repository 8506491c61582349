package export

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/fsgc-labs/titan-scout/internal/core/domain"
	"github.com/fsgc-labs/titan-scout/internal/core/ports/driven"
)

// Ensure HTML implements the interface.
var _ driven.Exporter = HTML{}

// HTML writes a printable report with one card per candidate.
type HTML struct {
	// Now stamps the report. Defaults to time.Now.
	Now func() time.Time
}

// Format returns "html".
func (HTML) Format() string {
	return "html"
}

// Export writes candidates to w.
func (h HTML) Export(w io.Writer, candidates []domain.Candidate) error {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	return WriteHTML(w, candidates, now())
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>FSGC Titan Scout Report</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; color: #1e293b; margin: 2em; }
h1 { font-size: 1.4em; border-bottom: 2px solid #009ee3; padding-bottom: .3em; }
.meta { color: #64748b; font-size: .85em; }
.card { border: 1px solid #cbd5e1; border-radius: 6px; padding: .8em 1em; margin: .8em 0; page-break-inside: avoid; }
.card h2 { font-size: 1.1em; margin: 0 0 .3em; }
.badge { font-size: .7em; padding: .1em .5em; border-radius: 4px; background: #e2e8f0; }
.badge.graph { background: #dcfce7; }
.reason { margin: .4em 0; }
</style>
</head>
<body>
<h1>FSGC Titan Scout Report</h1>
<p class="meta">Generated {{.Generated}} &middot; {{len .Candidates}} candidates &middot; leads require human review</p>
{{range .Candidates}}<div class="card">
<h2>{{.Name}} <span class="badge{{if .Verified}} graph{{end}}">{{.DiscoveryMethod}}</span></h2>
<div>{{.Club}}{{with .League}} &middot; {{.}}{{end}}{{with .Position}} &middot; {{.}}{{end}}</div>
<div class="meta">Born {{.YearBorn}} &middot; {{.Country}}{{with .Citizenship}} &middot; {{.}}{{end}} &middot; via {{.FoundVia}}</div>
<p class="reason">{{.Reasoning}}</p>
{{with .SourceURL}}<div class="meta">Source: <a href="{{.}}">{{.}}</a></div>{{end}}
</div>
{{else}}<p>No candidates.</p>
{{end}}</body>
</html>
`))

// WriteHTML renders the report for candidates.
func WriteHTML(w io.Writer, candidates []domain.Candidate, generatedAt time.Time) error {
	data := struct {
		Generated  string
		Candidates []domain.Candidate
	}{
		Generated:  generatedAt.Format("2006-01-02 15:04"),
		Candidates: candidates,
	}
	if err := reportTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// ForFormat returns the exporter for a format name.
func ForFormat(format string) (driven.Exporter, error) {
	switch format {
	case "csv", "":
		return CSV{}, nil
	case "html":
		return HTML{}, nil
	default:
		return nil, fmt.Errorf("%w: export format %q", domain.ErrInvalidInput, format)
	}
}
