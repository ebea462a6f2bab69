package web

import (
	"html/template"

	"bullsharks/internal/display"
	"bullsharks/internal/shell"
)

type pageRow struct {
	Rank       string
	Podium     bool
	Athlete    string
	Kilometers string
	Activities int
}

type pageData struct {
	Brand    string
	Title    string
	Subtitle string
	NoData   string
	TryAgain string
	Columns  []string

	Loading bool
	Failed  bool
	Message string
	Rows    []pageRow
}

func newPageData(v shell.View) pageData {
	d := pageData{
		Brand:    display.Brand,
		Title:    display.Title,
		Subtitle: display.Subtitle,
		NoData:   display.NoData,
		TryAgain: display.TryAgain,
		Columns:  display.Columns,
	}
	switch v.Kind {
	case shell.KindLoading:
		d.Loading = true
		d.Message = v.Loading
	case shell.KindFailed:
		d.Failed = true
		d.Message = v.Error
	default:
		for i, s := range v.Board.Rows {
			d.Rows = append(d.Rows, pageRow{
				Rank:       display.Rank(i),
				Podium:     display.Podium(i),
				Athlete:    s.AthleteName,
				Kilometers: display.Kilometers(s.TotalKilometers),
				Activities: s.ActivityCount,
			})
		}
	}
	return d
}

var pageTmpl = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Brand}}</title>
<style>
body{font-family:system-ui,sans-serif;background:#0b2545;color:#f4f5f6;margin:0}
.container{max-width:720px;margin:0 auto;padding:2rem 1rem}
.logo{font-size:2rem;font-weight:700;text-align:center}
.leaderboard-title{color:#13a89e}
.leaderboard-subtitle,.no-data{color:#8d99ae}
.leaderboard-row,.leaderboard-header{display:grid;grid-template-columns:4rem 1fr 8rem 6rem;padding:.5rem 0;border-bottom:1px solid #1e3a5f}
.leaderboard-header{font-weight:700}
.podium{color:#f2c14e;font-weight:700}
.distance-column,.activities-column{text-align:right}
.error-message{color:#e4572e}
.cta-button{background:#13a89e;color:#f4f5f6;border:0;padding:.5rem 1rem;font-weight:700;cursor:pointer}
</style>
</head>
<body>
<div class="app"><div class="container">
<div class="logo">🦈 {{.Brand}}</div>
{{- if .Loading}}
<div class="loading-message"><p>{{.Message}}</p></div>
{{- else if .Failed}}
<div class="error-message">
<p>{{.Message}}</p>
<form method="get" action="/"><button type="submit" class="cta-button">{{.TryAgain}}</button></form>
</div>
{{- else}}
<div class="leaderboard">
<h2 class="leaderboard-title">{{.Title}}</h2>
{{- if .Rows}}
<p class="leaderboard-subtitle">{{.Subtitle}}</p>
<div class="leaderboard-table">
<div class="leaderboard-header">{{range .Columns}}<div>{{.}}</div>{{end}}</div>
{{- range .Rows}}
<div class="leaderboard-row{{if .Podium}} podium{{end}}">
<div class="rank-column">{{.Rank}}</div>
<div class="athlete-column">{{.Athlete}}</div>
<div class="distance-column">{{.Kilometers}}</div>
<div class="activities-column">{{.Activities}}</div>
</div>
{{- end}}
</div>
{{- else}}
<p class="no-data">{{.NoData}}</p>
{{- end}}
</div>
{{- end}}
</div></div>
</body>
</html>
`))
