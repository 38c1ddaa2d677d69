package easymeasure

import (
	"bytes"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const defaultChartTitle = "Measurements"

// ChartRenderer renders measurements as an HTML page holding a bar chart of
// the elapsed seconds and the memory delta in kilobytes per key.
type ChartRenderer struct {
	Title string
}

func (r *ChartRenderer) RenderOne(key string, v Value) (string, error) {
	return r.RenderAll([]Entry{{Key: key, Value: v}})
}

func (r *ChartRenderer) RenderAll(entries []Entry) (string, error) {
	title := r.Title
	if len(title) == 0 {
		title = defaultChartTitle
	}

	keys := make([]string, len(entries))
	seconds := make([]opts.BarData, len(entries))
	kilobytes := make([]opts.BarData, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
		seconds[i] = opts.BarData{Name: e.Key, Value: e.Value.Seconds()}
		kilobytes[i] = opts.BarData{Name: e.Key, Value: round2(float64(e.Value.MemoryDelta) / 1024)}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(keys).
		AddSeries("time (Sec)", seconds).
		AddSeries("memory (Kb)", kilobytes)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}
