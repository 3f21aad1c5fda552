package output

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="parkheat-run" content="{{.RunID}}">
<title>{{.Title}}</title>
<script src="{{.PlotlyURL}}" charset="utf-8"></script>
<style>
:root {
  --bg: #fff; --fg: #1a1a2e; --card-bg: #f8f9fa; --border: #dee2e6;
  --table-alt: #f1f3f5; --muted: #6c757d;
}
@media (prefers-color-scheme: dark) {
  :root {
    --bg: #1a1a2e; --fg: #e9ecef; --card-bg: #16213e; --border: #495057;
    --table-alt: #0f3460; --muted: #adb5bd;
  }
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.5; padding: 1rem; max-width: 1400px; margin: 0 auto; }
header { margin-bottom: 1rem; }
header h1 { font-size: 1.5rem; margin-bottom: .25rem; }
header p { color: var(--muted); font-size: .875rem; }
#map { width: 100%; height: 720px; background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; margin-bottom: 1.5rem; }
table { width: 100%; border-collapse: collapse; font-size: .8125rem; }
th, td { padding: .5rem .625rem; text-align: left; border-bottom: 1px solid var(--border); }
td.score { text-align: right; font-variant-numeric: tabular-nums; }
tr:nth-child(even) { background: var(--table-alt); }
</style>
</head>
<body>
<header>
<h1>{{.Title}}</h1>
<p>{{.ParkCount}} parks &middot; generated {{.GeneratedAt}}</p>
</header>

<div id="map"></div>

<section>
<h2>Ranked by {{.RankedBy}}</h2>
<table id="ranking">
<thead><tr><th>#</th><th>Park</th><th>State</th><th>Score</th></tr></thead>
<tbody>
{{- range .Rows}}
<tr class="park-row"><td>{{.Position}}</td><td>{{.Name}}</td><td>{{.State}}</td><td class="score">{{.Score}}</td></tr>
{{- end}}
</tbody>
</table>
</section>

<script>
var figure = {{json .Figure}};
Plotly.newPlot("map", figure.data, figure.layout, {responsive: true});
</script>
</body>
</html>
`
