package dashboard

import (
	"context"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ukcovid-dashboard/dashboard/mocks"
	"github.com/bitmark-inc/ukcovid-dashboard/external/ukcovid"
	"github.com/bitmark-inc/ukcovid-dashboard/schema"
)

func record(date, area string, newCases, cumCases, newDeaths, cumDeaths *int64) schema.DailyRecord {
	return schema.DailyRecord{
		Date:             schema.Date(date),
		AreaName:         area,
		AreaCode:         "X" + area,
		NewCases:         newCases,
		CumulativeCases:  cumCases,
		NewDeaths:        newDeaths,
		CumulativeDeaths: cumDeaths,
	}
}

var i = schema.Int64

// newest first, like the feed
var (
	walesRecords = []schema.DailyRecord{
		record("2021-01-03", "Wales", i(15), i(45), i(2), i(5)),
		record("2021-01-02", "Wales", i(20), i(30), i(2), i(3)),
		record("2021-01-01", "Wales", i(10), i(10), i(1), i(1)),
	}
	ukRecords = []schema.DailyRecord{
		record("2021-01-03", "United Kingdom", i(54990), i(2654779), i(454), i(75024)),
		record("2021-01-02", "United Kingdom", i(57725), i(2599789), i(445), i(74570)),
		record("2021-01-01", "United Kingdom", i(53285), i(2542065), nil, nil),
	}
)

func englandSnapshots() []schema.AgeGenderSnapshot {
	return []schema.AgeGenderSnapshot{
		{
			Date:     "2021-01-02",
			AreaName: "England",
			Male:     []schema.AgeCount{{Age: "5_to_9", Value: 30}, {Age: "0_to_4", Value: 15}},
			Female:   []schema.AgeCount{{Age: "5_to_9", Value: 25}, {Age: "0_to_4", Value: 12}},
		},
		{
			Date:     "2021-01-01",
			AreaName: "England",
			Male:     []schema.AgeCount{{Age: "5_to_9", Value: 22}, {Age: "0_to_4", Value: 10}},
			Female:   []schema.AgeCount{{Age: "5_to_9", Value: 20}, {Age: "0_to_4", Value: 11}},
		},
	}
}

func TestBuildTrendChartWithoutCountries(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f := mocks.NewMockFetcher(ctl)
	b := NewBuilder(f, "en")

	chart, err := b.BuildTrendChart(context.Background(), nil, schema.MetricNewCases)
	assert.NoError(t, err)
	assert.True(t, chart.IsEmpty())
	assert.Equal(t, schema.ChartLine, chart.Kind)
}

func TestBuildTrendChart(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f := mocks.NewMockFetcher(ctl)
	f.EXPECT().DailyRecords(gomock.Any(), "Wales").Return(walesRecords, nil).Times(1)

	b := NewBuilder(f, "en")
	chart, err := b.BuildTrendChart(context.Background(), []string{"Wales"}, schema.MetricNewCases)
	require.NoError(t, err)

	assert.Equal(t, "New Cases By Publish Date", chart.Title)
	assert.Equal(t, "Date", chart.XLabel)
	require.Len(t, chart.Series, 1)

	s := chart.Series[0]
	assert.Equal(t, "Wales", s.Name)
	assert.Len(t, s.Points, len(walesRecords))
	assert.Equal(t, []string{"2021-01-01", "2021-01-02", "2021-01-03"}, s.XValues())
	assert.Equal(t, []float64{10, 20, 15}, s.YValues())

	// the fetched slice is left in feed order
	assert.Equal(t, schema.Date("2021-01-03"), walesRecords[0].Date)
}

func TestBuildTrendChartSeveralCountries(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f := mocks.NewMockFetcher(ctl)
	f.EXPECT().DailyRecords(gomock.Any(), "overview").Return(ukRecords, nil).Times(1)
	f.EXPECT().DailyRecords(gomock.Any(), "Wales").Return(walesRecords, nil).Times(1)

	b := NewBuilder(f, "en")
	chart, err := b.BuildTrendChart(context.Background(), []string{"overview", "Wales"}, schema.MetricNewDeaths)
	require.NoError(t, err)
	require.Len(t, chart.Series, 2)

	assert.Equal(t, "United Kingdom", chart.Series[0].Name)
	assert.Equal(t, "Wales", chart.Series[1].Name)

	// a null value keeps its point
	uk := chart.Series[0]
	assert.Len(t, uk.Points, 3)
	assert.Nil(t, uk.Points[0].Y)
	assert.Equal(t, 445.0, *uk.Points[1].Y)
}

func TestBuildTrendChartFetchFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f := mocks.NewMockFetcher(ctl)
	f.EXPECT().DailyRecords(gomock.Any(), "Scotland").Return(nil, &ukcovid.FetchError{
		Area:   "Scotland",
		Status: http.StatusInternalServerError,
		Err:    ukcovid.ErrResponseStatus,
	}).Times(1)
	f.EXPECT().DailyRecords(gomock.Any(), "Wales").Return(nil, &ukcovid.FetchError{
		Area: "Wales",
		Err:  context.DeadlineExceeded,
	}).Times(1)

	b := NewBuilder(f, "en")

	chart, err := b.BuildTrendChart(context.Background(), []string{"Scotland"}, schema.MetricNewCases)
	assert.NoError(t, err, "bad status should degrade to an empty chart")
	assert.True(t, chart.IsEmpty())

	chart, err = b.BuildTrendChart(context.Background(), []string{"Wales"}, schema.MetricNewCases)
	assert.Error(t, err, "unreachable endpoint should propagate")
	assert.True(t, ukcovid.IsUnreachable(err))
	assert.True(t, chart.IsEmpty())
}

func TestBuildSummaryWithoutCountry(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := NewBuilder(mocks.NewMockFetcher(ctl), "en")
	s, err := b.BuildSummary(context.Background(), "")
	assert.NoError(t, err)
	assert.True(t, s.Placeholder)
	assert.Equal(t, []string{"Please select a country to view total cases and deaths"}, s.Lines)
}

func TestBuildSummaryOverview(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f := mocks.NewMockFetcher(ctl)
	f.EXPECT().DailyRecords(gomock.Any(), "overview").Return(ukRecords, nil).Times(1)

	b := NewBuilder(f, "en")
	countries := []string{"overview"}
	s, err := b.BuildSummary(context.Background(), countries[0])
	require.NoError(t, err)

	assert.Equal(t, "the UK", s.Label)
	assert.Equal(t, "overview", s.Area)
	assert.Equal(t, "overview", countries[0], "selection must not be rewritten")
	assert.Equal(t, []string{
		"Total cases in the UK: 2,654,779",
		"Total deaths in the UK: 75,024",
	}, s.Lines)

	latest, _ := ukRecords[0].Value(schema.MetricCumulativeCases)
	assert.Equal(t, latest, s.TotalCases)
}

func TestBuildSummaryNoRows(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f := mocks.NewMockFetcher(ctl)
	f.EXPECT().DailyRecords(gomock.Any(), "Wales").Return([]schema.DailyRecord{}, nil).Times(1)

	b := NewBuilder(f, "en")
	s, err := b.BuildSummary(context.Background(), "Wales")
	assert.NoError(t, err)
	assert.True(t, s.Placeholder)
}

func TestBuildSummaryWelsh(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f := mocks.NewMockFetcher(ctl)
	f.EXPECT().DailyRecords(gomock.Any(), "Wales").Return(walesRecords, nil).Times(1)

	b := NewBuilder(f, "cy")
	s, err := b.BuildSummary(context.Background(), "Wales")
	require.NoError(t, err)
	assert.Equal(t, "Cyfanswm yr achosion yn Wales: 45", s.Lines[0])
}

func TestBuildComparisonBarChartWithoutDate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := NewBuilder(mocks.NewMockFetcher(ctl), "en")
	chart, err := b.BuildComparisonBarChart(context.Background(), []string{"overview", "Wales"}, "", schema.MetricNewCases)
	assert.NoError(t, err)
	assert.True(t, chart.IsEmpty())
	assert.Equal(t, schema.ChartBar, chart.Kind)

	chart, err = b.BuildComparisonBarChart(context.Background(), nil, "2021-01-02", schema.MetricNewCases)
	assert.NoError(t, err)
	assert.True(t, chart.IsEmpty())
}

func TestBuildComparisonBarChart(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f := mocks.NewMockFetcher(ctl)
	f.EXPECT().DailyRecords(gomock.Any(), "overview").Return(ukRecords, nil).Times(1)
	f.EXPECT().DailyRecords(gomock.Any(), "Wales").Return(walesRecords, nil).Times(1)

	b := NewBuilder(f, "en")
	chart, err := b.BuildComparisonBarChart(context.Background(), []string{"overview", "Wales"}, "2021-01-02", schema.MetricNewCases)
	require.NoError(t, err)
	require.Len(t, chart.Series, 2)

	assert.Equal(t, "Country", chart.XLabel)
	assert.Equal(t, "United Kingdom", chart.Series[0].Name)
	assert.Equal(t, []float64{57725}, chart.Series[0].YValues())
	assert.Equal(t, "57.7k", chart.Series[0].Points[0].Text)
	assert.Equal(t, "Wales", chart.Series[1].Points[0].X)
	assert.Equal(t, []float64{20}, chart.Series[1].YValues())
}

func TestBuildComparisonBarChartNoData(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f := mocks.NewMockFetcher(ctl)
	f.EXPECT().DailyRecords(gomock.Any(), "overview").Return(ukRecords, nil).Times(2)
	f.EXPECT().DailyRecords(gomock.Any(), "Wales").Return(walesRecords, nil).Times(1)

	b := NewBuilder(f, "en")

	// Wales has no row for that date
	chart, err := b.BuildComparisonBarChart(context.Background(), []string{"overview", "Wales"}, "2020-12-31", schema.MetricNewCases)
	assert.NoError(t, err)
	assert.True(t, chart.IsEmpty())

	// deaths were not yet published on 2021-01-01
	chart, err = b.BuildComparisonBarChart(context.Background(), []string{"overview"}, "2021-01-01", schema.MetricNewDeaths)
	assert.NoError(t, err)
	assert.True(t, chart.IsEmpty())
}

func TestBuildAgeGenderChart(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f := mocks.NewMockFetcher(ctl)
	f.EXPECT().AgeGenderSnapshots(gomock.Any()).Return(englandSnapshots(), nil).Times(1)

	b := NewBuilder(f, "en")
	chart, err := b.BuildAgeGenderChart(context.Background(), "2021-01-02")
	require.NoError(t, err)

	assert.Equal(t, schema.ChartGroupedBar, chart.Kind)
	assert.Equal(t, schema.BarModeGroup, chart.BarMode)
	assert.Equal(t, "Cases in England", chart.Title)
	assert.Equal(t, "Age", chart.XLabel)
	assert.Equal(t, "Number of Cases", chart.YLabel)
	require.Len(t, chart.Series, 2)

	male, ok := chart.SeriesByName("Male")
	require.True(t, ok)
	assert.Equal(t, []string{"0 to 4", "5 to 9"}, male.XValues())
	assert.Equal(t, []float64{5, 8}, male.YValues())

	female, ok := chart.SeriesByName("Female")
	require.True(t, ok)
	assert.Equal(t, []float64{1, 5}, female.YValues())
}

func TestBuildAgeGenderChartEarliestDate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f := mocks.NewMockFetcher(ctl)
	f.EXPECT().AgeGenderSnapshots(gomock.Any()).Return(englandSnapshots(), nil).Times(2)

	b := NewBuilder(f, "en")
	chart, err := b.BuildAgeGenderChart(context.Background(), "2021-01-01")
	assert.NoError(t, err)
	assert.True(t, chart.IsEmpty())
	assert.Equal(t, "Cases in England", chart.Title)

	chart, err = b.BuildAgeGenderChart(context.Background(), "2022-06-01")
	assert.NoError(t, err)
	assert.True(t, chart.IsEmpty())
}

func TestBuildAgeGenderChartWithoutDate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	b := NewBuilder(mocks.NewMockFetcher(ctl), "en")
	chart, err := b.BuildAgeGenderChart(context.Background(), "")
	assert.NoError(t, err)
	assert.True(t, chart.IsEmpty())
}

func TestBuildAgeGenderChartMismatchedBrackets(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	snapshots := englandSnapshots()
	snapshots[1].Male = []schema.AgeCount{{Age: "0_to_4", Value: 10}, {Age: "10_to_14", Value: 22}}

	f := mocks.NewMockFetcher(ctl)
	f.EXPECT().AgeGenderSnapshots(gomock.Any()).Return(snapshots, nil).Times(1)

	b := NewBuilder(f, "en")
	chart, err := b.BuildAgeGenderChart(context.Background(), "2021-01-02")
	assert.NoError(t, err)
	assert.True(t, chart.IsEmpty())
}

func TestIsSoft(t *testing.T) {
	assert.True(t, isSoft(&NoDataError{Area: "Wales", Err: ErrNoRows}))
	assert.True(t, isSoft(&ukcovid.FetchError{Area: "Wales", Status: 502, Err: ukcovid.ErrResponseStatus}))
	assert.False(t, isSoft(&ukcovid.FetchError{Area: "Wales", Err: context.Canceled}))
	assert.False(t, isSoft(context.Canceled))
}
