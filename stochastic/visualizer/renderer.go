// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package visualizer

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
)

// HTML references for the rendered pages.
const histogramRef = "histogram"
const ecdfRef = "ecdf"
const aliasRef = "alias-table"

// maxGraphColumns bounds the alias tables drawn as a graph.
const maxGraphColumns = 256

var mainTemplate = template.Must(template.New("main").Parse(`
<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <title>Aida: Arbitrary Distribution Sampler</title>
  </head>
  <body>
    <h1>Aida: Arbitrary Distribution Sampler</h1>
    <h2>{{.Title}}</h2>
    <table>
      <tr><td>samples</td><td>{{.Summary.N}}</td></tr>
      <tr><td>mean</td><td>{{printf "%.6g" .Summary.Mean}}</td></tr>
      <tr><td>std dev</td><td>{{printf "%.6g" .Summary.StdDev}}</td></tr>
      <tr><td>min</td><td>{{printf "%.6g" .Summary.Min}}</td></tr>
      <tr><td>median</td><td>{{printf "%.6g" .Summary.Median}}</td></tr>
      <tr><td>max</td><td>{{printf "%.6g" .Summary.Max}}</td></tr>
    </table>
    <table>
      <tr><th></th><th>sampled</th><th>configured</th></tr>
      <tr><td>Q1</td><td>{{printf "%.6g" .Summary.Q1}}</td><td>{{printf "%.6g" (index .Quartiles 0)}}</td></tr>
      <tr><td>median</td><td>{{printf "%.6g" .Summary.Median}}</td><td>{{printf "%.6g" (index .Quartiles 1)}}</td></tr>
      <tr><td>Q3</td><td>{{printf "%.6g" .Summary.Q3}}</td><td>{{printf "%.6g" (index .Quartiles 2)}}</td></tr>
    </table>
    <ul>
    <li> <h3> <a href="/` + histogramRef + `"> Histogram </a> </h3> </li>
    <li> <h3> <a href="/` + ecdfRef + `"> Cumulative Distribution </a> </h3> </li>
    {{if .Discrete}}<li> <h3> <a href="/` + aliasRef + `"> Alias Table </a> </h3> </li>{{end}}
    </ul>
</body>
</html>
`))

// renderMain renders the main menu with a summary of the samples.
func renderMain(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	_ = mainTemplate.Execute(w, struct {
		Title     string
		Discrete  bool
		Summary   any
		Quartiles [3]float64
	}{view.title, view.discrete, view.summary, view.quartiles})
}

// globalOptions returns the chart options shared by all pages.
func globalOptions(title, subtitle string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Theme:     types.ThemeChalk,
			PageTitle: title,
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
	}
}

// convertLineData converts CDF points to chart points.
func convertLineData(data [][2]float64) []opts.LineData {
	items := []opts.LineData{}
	for _, pair := range data {
		items = append(items, opts.LineData{Value: pair})
	}
	return items
}

// convertBarData produces a bar series.
func convertBarData(data []float64) []opts.BarData {
	items := []opts.BarData{}
	for _, v := range data {
		items = append(items, opts.BarData{Value: v})
	}
	return items
}

// newHistogramChart compares observed frequencies with the configured probabilities.
func newHistogramChart(title string, labels []string, observed, expected []float64) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOptions(title, "Observed vs. Configured Probability")...)
	bar.SetXAxis(labels).
		AddSeries("Observed", convertBarData(observed)).
		AddSeries("Configured", convertBarData(expected))
	return bar
}

// newECDFChart compares the empirical CDF of the samples with the configured CDF.
func newECDFChart(title string, ecdf, reference [][2]float64) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(globalOptions(title, "Cumulative Distribution")...)
	chart.AddSeries("eCDF", convertLineData(ecdf)).
		AddSeries("Configured", convertLineData(reference))
	return chart
}

// renderHistogram renders the histogram page.
func renderHistogram(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	_ = newHistogramChart(view.title, view.labels, view.observed, view.expected).Render(w)
}

// renderECDF renders the cumulative distribution page.
func renderECDF(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	_ = newECDFChart(view.title, view.ecdf, view.reference).Render(w)
}

// printAliasInDotty renders an alias table in dotty format. Every column is
// a node; a column keeping less than all of its mass points to its alias.
func printAliasInDotty(title string, columns []aliasColumn) (out string, err error) {
	if len(columns) > maxGraphColumns {
		return "", fmt.Errorf("renderAliasTable: %d columns exceed the limit of %d", len(columns), maxGraphColumns)
	}
	g := graphviz.New()
	graph, err := g.Graph()
	if err != nil {
		return "", fmt.Errorf("renderAliasTable: failed to create graph. Error: %v", err)
	}
	defer func() {
		err = errors.Join(err, graph.Close(), g.Close())
	}()

	nodes := make(map[int64]*cgraph.Node, len(columns))
	for _, c := range columns {
		name := fmt.Sprint(c.value)
		node, err := graph.CreateNode(name)
		if err != nil {
			return "", fmt.Errorf("renderAliasTable: failed to create node for %v. Error: %v", c.value, err)
		}
		node.SetLabel(fmt.Sprintf("%v\n%.2f", c.value, c.prob))
		nodes[c.value] = node
	}
	for _, c := range columns {
		if c.prob >= 1.0 || c.alias == c.value {
			continue
		}
		target, ok := nodes[c.alias]
		if !ok {
			return "", fmt.Errorf("renderAliasTable: column %v has unknown alias %v", c.value, c.alias)
		}
		share := 1.0 - c.prob
		e, err := graph.CreateEdge("", nodes[c.value], target)
		if err != nil {
			return "", fmt.Errorf("renderAliasTable: failed to create edge %v -> %v. Error: %v", c.value, c.alias, err)
		}
		e.SetLabel(fmt.Sprintf("%.2f", share))
		var color string
		switch int(4 * share) {
		case 0:
			color = "gray"
		case 1:
			color = "green"
		case 2:
			color = "blue"
		case 3:
			color = "indianred"
		case 4:
			color = "red"
		}
		e.SetColor(color)
	}
	txt, err := renderDotGraph(title, g, graph)
	if err != nil {
		return "", fmt.Errorf("renderAliasTable: failed to render. Error: %v", err)
	}
	return txt, nil
}

const dotGraphHead = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>%s</title>

    <script>
        const dot = ` + "`"

const dotGraphTail = "`" + `;
    </script>
</head>

<body>
    <h1>%s</h1>
    <div id="graph"></div>
    <script type="module">
        import { Graphviz } from "https://cdn.jsdelivr.net/npm/@hpcc-js/wasm/dist/index.js";
        if (Graphviz) {
            const graphviz = await Graphviz.load();
            const svg = graphviz.layout(dot, "svg", "dot");
	    document.getElementById("graph").innerHTML = svg;
        } 
    </script>
</body>
</html>
`

// renderDotGraph lays out the graph and embeds it in a page drawing it in the browser.
func renderDotGraph(title string, g *graphviz.Graphviz, graph *cgraph.Graph) (string, error) {
	var buf bytes.Buffer
	if err := g.Render(graph, graphviz.XDOT, &buf); err != nil {
		return "", err
	}
	return fmt.Sprintf(dotGraphHead, title) + buf.String() + fmt.Sprintf(dotGraphTail, title), nil
}

// renderAliasTable renders the alias table of a discrete sampler.
func renderAliasTable(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	if !view.discrete {
		http.Error(w, "visualizer: alias table requires a discrete sampler", http.StatusNotFound)
		return
	}
	txt, err := printAliasInDotty(view.title+" Alias Table", view.columns)
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	_, _ = fmt.Fprint(w, txt)
}

// FireUpWeb derives the view model of the drawn samples and visualizes
// it with a local web-server.
func FireUpWeb(view *View, addr string) error {
	if err := setViewState(view); err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", renderMain)
	mux.HandleFunc("/"+histogramRef, renderHistogram)
	mux.HandleFunc("/"+ecdfRef, renderECDF)
	mux.HandleFunc("/"+aliasRef, renderAliasTable)
	return http.ListenAndServe(":"+addr, mux)
}
