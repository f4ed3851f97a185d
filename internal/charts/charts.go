// Package charts maps frequency entries onto ECharts option documents.
// Every constructor is a pure transcription of (words, counts) into the
// configuration of one chart type; only the funnel computes anything.
package charts

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/jkorri/pagelens/internal/freq"
)

// Renderer is the narrow rendering contract all go-echarts charts satisfy.
type Renderer interface {
	Render(w io.Writer) error
}

// ForView builds the chart for a data view. entries is the displayed
// top-N list; denomEntries is the full top-20 list the funnel divides by,
// which differs from entries when a smaller top-N is configured.
// ViewImages has no chart and is handled by the gallery path instead.
func ForView(v View, title string, entries, denomEntries []freq.Entry) (Renderer, error) {
	switch v {
	case ViewBar:
		return NewBarChart(title, entries), nil
	case ViewCloud:
		return NewWordCloud(title, entries), nil
	case ViewPie:
		return NewPieChart(title, entries), nil
	case ViewLine:
		return NewLineChart(title, entries), nil
	case ViewScatter:
		return NewScatterChart(title, entries), nil
	case ViewFunnel:
		return NewFunnelChart(title, entries, denomEntries), nil
	case ViewArea:
		return NewAreaChart(title, entries), nil
	default:
		return nil, fmt.Errorf("no chart for view %q", v)
	}
}

func rotatedAxis() charts.GlobalOpts {
	return charts.WithXAxisOpts(opts.XAxis{
		Type:      "category",
		AxisLabel: &opts.AxisLabel{Show: opts.Bool(true), Rotate: 45},
	})
}

// NewBarChart shows the top words as a category bar chart with counts on
// the value axis.
func NewBarChart(title string, entries []freq.Entry) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		rotatedAxis(),
	)

	data := make([]opts.BarData, len(entries))
	for i, e := range entries {
		data[i] = opts.BarData{Name: e.Word, Value: e.Count}
	}
	bar.SetXAxis(freq.Words(entries)).AddSeries("count", data)
	return bar
}

// NewWordCloud sizes each word by its count.
func NewWordCloud(title string, entries []freq.Entry) *charts.WordCloud {
	wc := charts.NewWordCloud()
	wc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title}),
		charts.WithTitleOpts(opts.Title{Title: title}),
	)

	data := make([]opts.WordCloudData, len(entries))
	for i, e := range entries {
		data[i] = opts.WordCloudData{Name: e.Word, Value: e.Count}
	}
	// The option name is the library's own spelling.
	wc.AddSeries("words", data, charts.WithWorldCloudChartOpts(opts.WordCloudChart{
		SizeRange: []float32{14, 80},
	}))
	return wc
}

// NewPieChart shows the count share of each word with a side legend.
func NewPieChart(title string, entries []freq.Entry) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title}),
		charts.WithTitleOpts(opts.Title{Title: title, Left: "center"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Orient: "vertical", Left: "left"}),
	)

	data := make([]opts.PieData, len(entries))
	for i, e := range entries {
		data[i] = opts.PieData{Name: e.Word, Value: e.Count}
	}
	pie.AddSeries("words", data).SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {c}"}),
		charts.WithPieChartOpts(opts.PieChart{Radius: "50%"}),
	)
	return pie
}

// NewLineChart connects the counts along the ranked word axis.
func NewLineChart(title string, entries []freq.Entry) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		rotatedAxis(),
	)

	line.SetXAxis(freq.Words(entries)).AddSeries("count", lineData(entries))
	return line
}

// NewAreaChart is the line chart with a filled area style.
func NewAreaChart(title string, entries []freq.Entry) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		rotatedAxis(),
	)

	line.SetXAxis(freq.Words(entries)).AddSeries("count", lineData(entries))
	line.SetSeriesOptions(charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: 0.4}))
	return line
}

func lineData(entries []freq.Entry) []opts.LineData {
	data := make([]opts.LineData, len(entries))
	for i, e := range entries {
		data[i] = opts.LineData{Value: e.Count}
	}
	return data
}

// NewScatterChart plots one sized point per ranked word.
func NewScatterChart(title string, entries []freq.Entry) *charts.Scatter {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		rotatedAxis(),
	)

	data := make([]opts.ScatterData, len(entries))
	for i, e := range entries {
		data[i] = opts.ScatterData{Name: e.Word, Value: e.Count, SymbolSize: 20}
	}
	sc.SetXAxis(freq.Words(entries)).AddSeries("count", data)
	return sc
}

// NewFunnelChart shows each displayed word as its percentage of the full
// top list. The denominator is the sum over denomEntries, the complete
// top-20 list, even when fewer entries are displayed. The displayed
// percentages therefore need not add up to 100; this matches the behavior
// downstream consumers already expect.
func NewFunnelChart(title string, entries []freq.Entry, denomEntries []freq.Entry) *charts.Funnel {
	funnel := charts.NewFunnel()
	funnel.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
	)

	data := make([]opts.FunnelData, len(entries))
	for i, e := range entries {
		data[i] = opts.FunnelData{Name: e.Word, Value: FunnelPercent(e.Count, freq.SumCounts(denomEntries))}
	}
	funnel.AddSeries("share", data).SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}"}),
	)
	return funnel
}

// FunnelPercent scales count to a 0-100 share of total, rounded to two
// decimals. A zero total yields zero rather than NaN.
func FunnelPercent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*100*100) / 100
}
