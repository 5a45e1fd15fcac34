package dashboard

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ukcovid-dashboard/dashboard/mocks"
	"github.com/bitmark-inc/ukcovid-dashboard/schema"
)

func keys(m map[string]interface{}) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	return ks
}

func TestChanged(t *testing.T) {
	prev := schema.Selection{Countries: []string{"overview"}, Metric: schema.MetricNewCases}

	assert.Empty(t, Changed(prev, prev))
	assert.Equal(t, map[Input]bool{InputDate: true}, Changed(prev, schema.Selection{
		Countries: []string{"overview"},
		Metric:    schema.MetricNewCases,
		Date:      "2021-01-02",
	}))
	assert.Equal(t, map[Input]bool{InputCountries: true, InputMetric: true}, Changed(prev, schema.Selection{
		Countries: []string{"overview", "Wales"},
		Metric:    schema.MetricNewDeaths,
	}))
}

func TestGraphEvaluate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f := mocks.NewMockFetcher(ctl)
	// trend, summary and comparison each fetch once
	f.EXPECT().DailyRecords(gomock.Any(), "Wales").Return(walesRecords, nil).Times(3)
	f.EXPECT().AgeGenderSnapshots(gomock.Any()).Return(englandSnapshots(), nil).Times(1)

	g := NewGraph(NewBuilder(f, "en"))
	sel := schema.Selection{
		Countries: []string{"Wales", "Wales", ""},
		Metric:    schema.MetricNewCases,
		Date:      "2021-01-02",
	}

	out, err := g.Evaluate(context.Background(), sel)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{OutputTrend, OutputSummary, OutputComparison, OutputAgeGender}, keys(out))
	assert.Equal(t, []string{"Wales", "Wales", ""}, sel.Countries, "selection must not be rewritten")

	trend := out[OutputTrend].(schema.ChartSpec)
	assert.Len(t, trend.Series, 1)

	summary := out[OutputSummary].(Summary)
	assert.Equal(t, int64(45), summary.TotalCases)
}

func TestGraphUpdateDate(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f := mocks.NewMockFetcher(ctl)
	f.EXPECT().DailyRecords(gomock.Any(), "Wales").Return(walesRecords, nil).Times(1)
	f.EXPECT().AgeGenderSnapshots(gomock.Any()).Return(englandSnapshots(), nil).Times(1)

	g := NewGraph(NewBuilder(f, "en"))
	prev := schema.Selection{Countries: []string{"Wales"}, Metric: schema.MetricNewCases}
	next := schema.Selection{Countries: []string{"Wales"}, Metric: schema.MetricNewCases, Date: "2021-01-02"}

	out, err := g.Update(context.Background(), prev, next)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{OutputComparison, OutputAgeGender}, keys(out))
}

func TestGraphUpdateMetric(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	f := mocks.NewMockFetcher(ctl)
	f.EXPECT().DailyRecords(gomock.Any(), "Wales").Return(walesRecords, nil).Times(1)

	g := NewGraph(NewBuilder(f, "en"))
	prev := schema.Selection{Countries: []string{"Wales"}, Metric: schema.MetricNewCases}
	next := schema.Selection{Countries: []string{"Wales"}, Metric: schema.MetricCumulativeCases}

	// comparison depends on the metric too but has no date, so it does not fetch
	out, err := g.Update(context.Background(), prev, next)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{OutputTrend, OutputComparison}, keys(out))
}

func TestGraphUpdateNothingChanged(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	g := NewGraph(NewBuilder(mocks.NewMockFetcher(ctl), "en"))
	sel := schema.Selection{Countries: []string{"Wales"}, Metric: schema.MetricNewCases}

	out, err := g.Update(context.Background(), sel, sel)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestGraphDependencies(t *testing.T) {
	g := NewGraph(NewBuilder(nil, "en"))
	assert.Equal(t, []Input{InputDate}, g.Dependencies(OutputAgeGender))
	assert.Equal(t, []Input{InputCountries}, g.Dependencies(OutputSummary))
	assert.Nil(t, g.Dependencies("unknown"))
}
