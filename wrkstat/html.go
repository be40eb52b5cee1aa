// Copyright 2026 The wrkstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wrkstat

import (
	"fmt"
	"io"
	"path"

	"github.com/google/safehtml/template"

	"github.com/DreamTraveler233/wrkstat/wrkfmt"
	"github.com/DreamTraveler233/wrkstat/wrkseries"
	"github.com/DreamTraveler233/wrkstat/wrkunit"
)

// A Report is everything rendered into the HTML report.
type Report struct {
	// Source is the directory the results were read from.
	Source string

	Results []*wrkfmt.Result
	Series  []*wrkseries.Series

	// Charts are the chart images, as slash-separated paths
	// relative to the report.
	Charts []string

	// Labels overrides the default captions. It may be nil.
	Labels *Labels
}

// noValue stands in for a statistic no run reported.
const noValue = "—"

var summaryColumns = []string{
	"endpoint", "best_req_sec", "best_req_sec_config", "mean_req_sec",
	"best_transfer", "min_lat_p50", "min_lat_p50_config",
}

type htmlChart struct {
	Name, Src string
}

type htmlReport struct {
	Title, Source                                 string
	SourceHeading, SummaryHeading, DetailsHeading string
	ChartsHeading                                 string
	SummaryHeader, DetailHeader                   []string
	Summary, Details                              [][]string
	Charts                                        []htmlChart
}

var htmlTemplate = template.Must(template.New("report").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
.wrkstat { border-collapse: collapse; margin-bottom: 1em; }
.wrkstat th, .wrkstat td { border: 1px solid #999; padding: 3px 6px; }
.wrkstat td { text-align: right; }
.chart img { max-width: 900px; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p>{{.SourceHeading}}: {{.Source}}</p>
<h2>{{.SummaryHeading}}</h2>
<table class="wrkstat">
<tr>{{range .SummaryHeader}}<th>{{.}}</th>{{end}}</tr>
{{range .Summary}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end -}}
</table>
<h2>{{.DetailsHeading}}</h2>
<table class="wrkstat">
<tr>{{range .DetailHeader}}<th>{{.}}</th>{{end}}</tr>
{{range .Details}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end -}}
</table>
<h2>{{.ChartsHeading}}</h2>
{{range .Charts}}<div class="chart"><h3>{{.Name}}</h3><img src="{{.Src}}" alt="{{.Name}}"></div>
{{end -}}
</body>
</html>
`))

// WriteHTML renders rep as a self-contained HTML document.
func WriteHTML(w io.Writer, rep *Report) error {
	l := rep.Labels
	v := &htmlReport{
		Title:          l.ReportTitle(),
		Source:         rep.Source,
		SourceHeading:  l.Heading("source"),
		SummaryHeading: l.Heading("summary"),
		DetailsHeading: l.Heading("details"),
		ChartsHeading:  l.Heading("charts"),
	}
	for _, col := range summaryColumns {
		v.SummaryHeader = append(v.SummaryHeader, l.Column(col))
	}
	for _, s := range rep.Series {
		v.Summary = append(v.Summary, SummaryRow(s))
	}
	for _, col := range Columns {
		v.DetailHeader = append(v.DetailHeader, l.Column(col))
	}
	for _, r := range rep.Results {
		v.Details = append(v.Details, Row(r))
	}
	for _, c := range rep.Charts {
		v.Charts = append(v.Charts, htmlChart{Name: path.Base(c), Src: c})
	}
	return htmlTemplate.Execute(w, v)
}

// SummaryRow formats the summary of s: the endpoint, its best
// throughput and where it was reached, mean throughput, the transfer
// rate of the best run, and its lowest median latency in milliseconds
// and where it was reached.
func SummaryRow(s *wrkseries.Series) []string {
	row := []string{s.Endpoint, noValue, noValue, noValue, noValue, noValue, noValue}
	if b := s.BestReqSec; b != nil {
		row[1] = fmt.Sprintf("%.2f", b.Value)
		row[2] = b.Result.Config()
		if t := b.Result.Stats.Transfer; t != nil {
			row[4] = wrkunit.Scale(*t, wrkunit.Binary) + "B/s"
		}
	}
	if len(s.Results) > 0 {
		row[3] = fmt.Sprintf("%.2f ± %.2f", s.Throughput.Mean, s.Throughput.StdDev)
	}
	if m := s.MinP50; m != nil {
		row[5] = fmt.Sprintf("%.2f", m.Value*1000)
		row[6] = m.Result.Config()
	}
	return row
}
