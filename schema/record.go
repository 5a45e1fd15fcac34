package schema

// Field names of the statistics feed
const (
	FieldDate       = "date"
	FieldAreaName   = "areaName"
	FieldAreaCode   = "areaCode"
	FieldMaleCases  = "maleCases"
	FieldFemaleCase = "femaleCases"
)

// DailyRecordCollection - mongo collection of archived daily records
const DailyRecordCollection = "daily_records"

// DailyRecord is one row of the feed for a (date, area) pair. Counts are nil
// when the feed publishes null for that metric on that date.
type DailyRecord struct {
	Date             Date   `json:"date" bson:"date"`
	AreaName         string `json:"areaName" bson:"area_name"`
	AreaCode         string `json:"areaCode" bson:"area_code"`
	NewCases         *int64 `json:"newCasesByPublishDate" bson:"new_cases"`
	CumulativeCases  *int64 `json:"cumCasesByPublishDate" bson:"cum_cases"`
	NewDeaths        *int64 `json:"newDeaths28DaysByPublishDate" bson:"new_deaths"`
	CumulativeDeaths *int64 `json:"cumDeaths28DaysByPublishDate" bson:"cum_deaths"`
}

// Value returns the count of the given metric and whether it was published
func (r DailyRecord) Value(m Metric) (int64, bool) {
	var v *int64
	switch m {
	case MetricNewCases:
		v = r.NewCases
	case MetricCumulativeCases:
		v = r.CumulativeCases
	case MetricNewDeaths:
		v = r.NewDeaths
	case MetricCumulativeDeaths:
		v = r.CumulativeDeaths
	}
	if v == nil {
		return 0, false
	}
	return *v, true
}

// DailyRecordStructure is the field projection requested for daily records
func DailyRecordStructure() map[string]string {
	return map[string]string{
		FieldDate:                      FieldDate,
		FieldAreaName:                  FieldAreaName,
		FieldAreaCode:                  FieldAreaCode,
		string(MetricNewCases):         string(MetricNewCases),
		string(MetricCumulativeCases):  string(MetricCumulativeCases),
		string(MetricNewDeaths):        string(MetricNewDeaths),
		string(MetricCumulativeDeaths): string(MetricCumulativeDeaths),
	}
}

// Int64 returns a pointer to v
func Int64(v int64) *int64 {
	return &v
}
