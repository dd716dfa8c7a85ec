package widgets

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const defaultChartHeight = "360px"

var sharedChartCache = NewChartCache(5 * time.Minute)

// ChartRenderer turns a bar-chart widget plus its fetched rows into
// server-side ECharts markup. Rows are grouped by scenario per event date.
type ChartRenderer struct {
	cache      RenderCache
	theme      string
	assetsHost string
}

// ChartRendererOption customizes renderer behavior.
type ChartRendererOption func(*ChartRenderer)

// WithRenderCache injects a render cache.
func WithRenderCache(cache RenderCache) ChartRendererOption {
	return func(r *ChartRenderer) {
		r.cache = cache
	}
}

// WithChartTheme sets the ECharts theme (defaults to Westeros).
func WithChartTheme(theme string) ChartRendererOption {
	return func(r *ChartRenderer) {
		r.theme = theme
	}
}

// WithAssetsHost rewrites the assets host so ECharts JS loads from a CDN.
func WithAssetsHost(host string) ChartRendererOption {
	return func(r *ChartRenderer) {
		r.assetsHost = host
	}
}

// NewChartRenderer builds a renderer.
func NewChartRenderer(options ...ChartRendererOption) *ChartRenderer {
	r := &ChartRenderer{
		cache: sharedChartCache,
		theme: types.ThemeWesteros,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Render produces chart HTML for a bar-chart widget. Widgets of any other
// kind are an error; callers dispatch on template kind first.
func (r *ChartRenderer) Render(widget SavedWidget, cfg EffectiveConfig, rows []EventRow) (string, error) {
	chartCfg, ok := DecodeConfig(KindBarChart, widget.Config).(BarChartConfig)
	if !ok {
		return "", fmt.Errorf("widgets: widget %s is not a bar chart", widget.ID)
	}
	renderFn := func() (string, error) {
		return r.renderBar(widget.Title, chartCfg.ChartVariant, rows)
	}
	if r.cache != nil {
		return r.cache.GetOrRender(renderKey(widget, cfg, len(rows)), renderFn)
	}
	return renderFn()
}

type chartSeries struct {
	name   string
	counts map[string]int
}

func (r *ChartRenderer) renderBar(title string, variant BarChartVariant, rows []EventRow) (string, error) {
	dates, series := groupRows(rows)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(r.initOpts()),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(dates)
	for _, s := range series {
		data := make([]opts.BarData, len(dates))
		for i, date := range dates {
			data[i] = opts.BarData{Value: s.counts[date]}
		}
		bar.AddSeries(s.name, data)
	}
	if variant != VariantVerticalGrouped {
		bar.SetSeriesOptions(charts.WithBarChartOpts(opts.BarChart{Stack: "events"}))
	}
	if variant == VariantHorizontalStacked {
		bar.XYReversal()
	}
	return renderChart(bar)
}

func (r *ChartRenderer) initOpts() opts.Initialization {
	init := opts.Initialization{
		Theme:  r.theme,
		Width:  "100%",
		Height: defaultChartHeight,
	}
	if r.assetsHost != "" {
		init.AssetsHost = r.assetsHost
	}
	return init
}

// groupRows buckets rows into one series per scenario, counting events per
// date. Dates and series names come out sorted so renders are deterministic.
func groupRows(rows []EventRow) ([]string, []chartSeries) {
	dateSet := map[string]struct{}{}
	byScenario := map[string]map[string]int{}
	for _, row := range rows {
		name := row.ScenarioName
		if name == "" {
			name = row.ScenarioCode
		}
		if name == "" {
			name = "events"
		}
		dateSet[row.EventDate] = struct{}{}
		if byScenario[name] == nil {
			byScenario[name] = map[string]int{}
		}
		byScenario[name][row.EventDate]++
	}
	dates := make([]string, 0, len(dateSet))
	for date := range dateSet {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	names := make([]string, 0, len(byScenario))
	for name := range byScenario {
		names = append(names, name)
	}
	sort.Strings(names)
	series := make([]chartSeries, len(names))
	for i, name := range names {
		series[i] = chartSeries{name: name, counts: byScenario[name]}
	}
	return dates, series
}

func renderChart(renderable interface{ Render(io.Writer) error }) (string, error) {
	var buf bytes.Buffer
	if err := renderable.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
