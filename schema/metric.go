package schema

// Metric - a published case or death field of the statistics feed
type Metric string

const (
	MetricNewCases         Metric = "newCasesByPublishDate"
	MetricCumulativeCases  Metric = "cumCasesByPublishDate"
	MetricNewDeaths        Metric = "newDeaths28DaysByPublishDate"
	MetricCumulativeDeaths Metric = "cumDeaths28DaysByPublishDate"
)

// Metrics lists the selectable metrics in dropdown order
var Metrics = []Metric{
	MetricNewCases,
	MetricNewDeaths,
	MetricCumulativeCases,
	MetricCumulativeDeaths,
}

// Valid reports whether m is one of the published metrics
func (m Metric) Valid() bool {
	for _, v := range Metrics {
		if m == v {
			return true
		}
	}
	return false
}
