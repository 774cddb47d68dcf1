// Package report turns clustering results into the two output surfaces
// the processing core hands to callers: an HTML report (cluster sizes and
// inter-centroid distance analysis rendered with go-echarts) and the
// plain metadata strings attached to output rasters.
//
// ⚙️ Usage:
//
//	var buf bytes.Buffer
//	err := report.Render(&buf, res, report.Meta{
//	    Tool:   "KMeansClustering",
//	    Inputs: []string{"band1.tif", "band2.tif"},
//	})
//
//	entries := report.ClusterEntries(meta, opts, res)   // raster metadata
//	entries  = report.FilterEntries("Opening", fopts)   // filter metadata
//
// The package renders statistics only; it never reads grids and never
// touches the filesystem — callers own where the HTML and metadata go.
package report
