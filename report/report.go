package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/gridmill/kmeans"
	"github.com/katalvlaran/gridmill/morph"
)

// Meta names the run for report titles and metadata entries.
type Meta struct {
	// Tool is the producing tool name, e.g. "KMeansClustering".
	Tool string
	// Inputs lists the band sources, one per input band, in stack order.
	Inputs []string
}

// Render writes a self-contained HTML page summarizing a clustering run:
// a bar chart of per-class member counts and a heat map of the pairwise
// inter-centroid Euclidean distances.
func Render(w io.Writer, res *kmeans.Result, meta Meta) error {
	classes := classLabels(len(res.Counts))

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: meta.Tool + " Report"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Cluster Size",
			Subtitle: fmt.Sprintf("run=%s iterations=%d stop=%s", res.RunID, res.Iterations, res.Reason),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	sizes := make([]opts.BarData, len(res.Counts))
	for i, n := range res.Counts {
		sizes[i] = opts.BarData{Value: n}
	}
	bar.SetXAxis(classes).AddSeries("pixels", sizes)

	table := res.DistanceTable()
	maxDist := 0.0
	cells := make([]opts.HeatMapData, 0, len(table)*len(table))
	for a := range table {
		for b := range table[a] {
			if table[a][b] > maxDist {
				maxDist = table[a][b]
			}
			cells = append(cells, opts.HeatMapData{Value: [3]interface{}{a, b, table[a][b]}})
		}
	}
	if maxDist == 0 {
		maxDist = 1
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Cluster Centroid Distance Analysis"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: classes}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: classes}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxDist),
		}),
	)
	hm.SetXAxis(classes).AddSeries("distance", cells)

	page := components.NewPage()
	page.AddCharts(bar, hm)
	return page.Render(w)
}

// ClusterEntries returns the metadata strings a caller attaches to the
// clustering output raster: tool provenance, run id, and the effective
// configuration of the run.
func ClusterEntries(meta Meta, o kmeans.Options, res *kmeans.Result) []string {
	init := "diagonal"
	if o.Init == kmeans.Random {
		init = "random"
	}
	entries := []string{
		fmt.Sprintf("Created by gridmill's %s tool", meta.Tool),
		fmt.Sprintf("Run ID: %s", res.RunID),
		fmt.Sprintf("Num. clusters: %d", len(res.Counts)),
		fmt.Sprintf("Num. bands: %d", len(meta.Inputs)),
	}
	for i, in := range meta.Inputs {
		entries = append(entries, fmt.Sprintf("Image %d: %s", i+1, in))
	}
	entries = append(entries,
		fmt.Sprintf("max_iterations: %d", o.MaxIterations),
		fmt.Sprintf("class_change: %v", o.ChangeThreshold),
		fmt.Sprintf("min_class_size: %d", o.MinClassSize),
		fmt.Sprintf("initialize: %s", init),
		fmt.Sprintf("iterations used: %d", res.Iterations),
	)
	return entries
}

// FilterEntries returns the metadata strings for a sliding-extremum filter
// output, recording the window shape actually applied after odd-rounding.
func FilterEntries(tool string, o morph.Options) []string {
	width, height := o.Applied()
	return []string{
		fmt.Sprintf("Created by gridmill's %s tool", tool),
		fmt.Sprintf("Filter size x: %d", width),
		fmt.Sprintf("Filter size y: %d", height),
	}
}

// classLabels returns the 1-based category labels used on both chart axes.
func classLabels(k int) []string {
	labels := make([]string, k)
	for i := range labels {
		labels[i] = fmt.Sprintf("Cluster %d", i+1)
	}
	return labels
}
