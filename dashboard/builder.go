package dashboard

//go:generate mockgen -destination=mocks/mock_fetcher.go -package=mocks github.com/bitmark-inc/ukcovid-dashboard/external/ukcovid Fetcher

import (
	"context"
	"sort"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/ukcovid-dashboard/consts"
	"github.com/bitmark-inc/ukcovid-dashboard/delta"
	"github.com/bitmark-inc/ukcovid-dashboard/external/ukcovid"
	"github.com/bitmark-inc/ukcovid-dashboard/schema"
	"github.com/bitmark-inc/ukcovid-dashboard/utils"
)

// Summary holds the headline totals of an area
type Summary struct {
	Area        string   `json:"area,omitempty"`
	Label       string   `json:"label,omitempty"`
	TotalCases  int64    `json:"totalCases"`
	TotalDeaths int64    `json:"totalDeaths"`
	Lines       []string `json:"lines"`
	Placeholder bool     `json:"placeholder,omitempty"`
}

// Builder turns fetched statistics into chart descriptions. It keeps no
// state between calls; every chart is built from freshly fetched data.
type Builder struct {
	fetcher ukcovid.Fetcher
	lang    string
	loc     *i18n.Localizer
}

// NewBuilder returns a builder localizing labels into lang
func NewBuilder(fetcher ukcovid.Fetcher, lang string) *Builder {
	if lang == "" {
		lang = "en"
	}
	return &Builder{
		fetcher: fetcher,
		lang:    lang,
		loc:     utils.NewLocalizer(lang),
	}
}

func (b *Builder) text(id string) string {
	return utils.Localize(b.loc, id, nil)
}

// MetricLabel returns the localized label of a metric
func (b *Builder) MetricLabel(m schema.Metric) string {
	return b.text(string(m))
}

// fetchAll fetches the daily records of every area concurrently and returns
// them in the order of areas
func (b *Builder) fetchAll(ctx context.Context, areas []string) ([][]schema.DailyRecord, error) {
	results := make([][]schema.DailyRecord, len(areas))

	g, ctx := errgroup.WithContext(ctx)
	for i, area := range areas {
		i, area := i, area
		g.Go(func() error {
			records, err := b.fetcher.DailyRecords(ctx, area)
			if err != nil {
				return err
			}
			results[i] = records
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (b *Builder) trendChart(metric schema.Metric) schema.ChartSpec {
	label := b.MetricLabel(metric)
	chart := schema.NewChart(schema.ChartLine, label)
	chart.XLabel = b.text(utils.MsgDate)
	chart.YLabel = label
	return chart
}

// BuildTrendChart draws metric over time, one line per area
func (b *Builder) BuildTrendChart(ctx context.Context, countries []string, metric schema.Metric) (schema.ChartSpec, error) {
	chart := b.trendChart(metric)
	if len(countries) == 0 {
		return chart, nil
	}

	sets, err := b.fetchAll(ctx, countries)
	if err != nil {
		if isSoft(err) {
			return chart, nil
		}
		return chart, err
	}

	var order []string
	byArea := make(map[string][]schema.DailyRecord)
	for _, records := range sets {
		for _, r := range records {
			if _, ok := byArea[r.AreaName]; !ok {
				order = append(order, r.AreaName)
			}
			byArea[r.AreaName] = append(byArea[r.AreaName], r)
		}
	}

	for _, area := range order {
		records := byArea[area]
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Date.Before(records[j].Date)
		})

		series := schema.Series{
			Name:   area,
			Points: make([]schema.Point, 0, len(records)),
		}
		for _, r := range records {
			p := schema.Point{X: r.Date.String()}
			if v, ok := r.Value(metric); ok {
				p.Y = schema.Float64(float64(v))
			}
			series.Points = append(series.Points, p)
		}
		chart.Series = append(chart.Series, series)
	}

	return chart, nil
}

func (b *Builder) placeholder() Summary {
	return Summary{
		Lines:       []string{b.text(utils.MsgSelectCountry)},
		Placeholder: true,
	}
}

// BuildSummary reports the latest cumulative cases and deaths of an area
func (b *Builder) BuildSummary(ctx context.Context, country string) (Summary, error) {
	if country == "" {
		return b.placeholder(), nil
	}

	records, err := b.fetcher.DailyRecords(ctx, country)
	if err == nil && len(records) == 0 {
		err = &NoDataError{Area: country, Err: ErrNoRows}
	}
	if err != nil {
		if isSoft(err) {
			return b.placeholder(), nil
		}
		return b.placeholder(), err
	}

	var cases, deaths int64
	for _, r := range records {
		if v, ok := r.Value(schema.MetricCumulativeCases); ok && v > cases {
			cases = v
		}
		if v, ok := r.Value(schema.MetricCumulativeDeaths); ok && v > deaths {
			deaths = v
		}
	}

	label := consts.SummaryLabel(country)
	return Summary{
		Area:        country,
		Label:       label,
		TotalCases:  cases,
		TotalDeaths: deaths,
		Lines: []string{
			utils.Localize(b.loc, utils.MsgTotalCases, map[string]interface{}{
				"Area":  label,
				"Count": utils.FormatCount(b.lang, cases),
			}),
			utils.Localize(b.loc, utils.MsgTotalDeaths, map[string]interface{}{
				"Area":  label,
				"Count": utils.FormatCount(b.lang, deaths),
			}),
		},
	}, nil
}

func (b *Builder) comparisonChart(metric schema.Metric) schema.ChartSpec {
	label := b.MetricLabel(metric)
	chart := schema.NewChart(schema.ChartBar, label)
	chart.XLabel = b.text(utils.MsgCountry)
	chart.YLabel = label
	return chart
}

// BuildComparisonBarChart compares metric across areas on a single date
func (b *Builder) BuildComparisonBarChart(ctx context.Context, countries []string, date schema.Date, metric schema.Metric) (schema.ChartSpec, error) {
	chart := b.comparisonChart(metric)
	if len(countries) == 0 || date.IsZero() {
		return chart, nil
	}

	sets, err := b.fetchAll(ctx, countries)
	if err != nil {
		if isSoft(err) {
			return chart, nil
		}
		return chart, err
	}

	series := make([]schema.Series, 0, len(countries))
	for i, country := range countries {
		v, err := valueOn(sets[i], country, date, metric)
		if err != nil {
			// a single missing area empties the whole comparison
			return chart, nil
		}

		name := consts.DisplayName(country)
		series = append(series, schema.Series{
			Name: name,
			Points: []schema.Point{{
				X:    name,
				Y:    schema.Float64(float64(v)),
				Text: utils.FormatSI(float64(v)),
			}},
		})
	}
	chart.Series = series

	return chart, nil
}

func valueOn(records []schema.DailyRecord, area string, date schema.Date, metric schema.Metric) (int64, error) {
	for _, r := range records {
		if r.Date != date {
			continue
		}
		v, ok := r.Value(metric)
		if !ok {
			return 0, &NoDataError{Area: area, Date: date, Err: ErrMissingField}
		}
		return v, nil
	}
	return 0, &NoDataError{Area: area, Date: date, Err: ErrNoRows}
}

func (b *Builder) ageGenderChart() schema.ChartSpec {
	chart := schema.NewChart(schema.ChartGroupedBar, b.text(utils.MsgCasesInEngland))
	chart.XLabel = b.text(utils.MsgAge)
	chart.YLabel = b.text(utils.MsgNumberOfCases)
	chart.BarMode = schema.BarModeGroup
	return chart
}

// BuildAgeGenderChart shows England's new cases on date by age bracket and gender
func (b *Builder) BuildAgeGenderChart(ctx context.Context, date schema.Date) (schema.ChartSpec, error) {
	chart := b.ageGenderChart()
	if date.IsZero() {
		return chart, nil
	}

	snapshots, err := b.fetcher.AgeGenderSnapshots(ctx)
	if err != nil {
		if isSoft(err) {
			return chart, nil
		}
		return chart, err
	}

	deltas, err := delta.ForDate(snapshots, date)
	if err != nil {
		return chart, nil
	}

	for _, gender := range []schema.Gender{schema.GenderMale, schema.GenderFemale} {
		series := schema.Series{
			Name:   b.text(string(gender)),
			Points: []schema.Point{},
		}
		for _, d := range deltas {
			if d.Gender != gender {
				continue
			}
			series.Points = append(series.Points, schema.Point{
				X: AgeLabel(d.Age),
				Y: schema.Float64(float64(d.Delta)),
			})
		}
		chart.Series = append(chart.Series, series)
	}

	return chart, nil
}

// AgeLabel turns a feed age bracket such as "0_to_4" into "0 to 4"
func AgeLabel(age string) string {
	return strings.Replace(age, "_", " ", -1)
}
