package schema

import "math"

// ChartKind - the kind of chart a ChartSpec describes
type ChartKind string

const (
	ChartLine       ChartKind = "line"
	ChartBar        ChartKind = "bar"
	ChartGroupedBar ChartKind = "grouped_bar"
)

// BarModeGroup places bars of different series side by side
const BarModeGroup = "group"

// Point is one datum of a series. Y is nil where the feed published no value.
type Point struct {
	X    string   `json:"x"`
	Y    *float64 `json:"y"`
	Text string   `json:"text,omitempty"`
}

// Series - a named, ordered list of points
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// ChartSpec describes a chart independently of how it is drawn
type ChartSpec struct {
	Kind    ChartKind `json:"kind"`
	Title   string    `json:"title,omitempty"`
	XLabel  string    `json:"xLabel,omitempty"`
	YLabel  string    `json:"yLabel,omitempty"`
	BarMode string    `json:"barMode,omitempty"`
	Series  []Series  `json:"series"`
}

// NewChart returns an empty chart of the given kind
func NewChart(kind ChartKind, title string) ChartSpec {
	return ChartSpec{
		Kind:   kind,
		Title:  title,
		Series: []Series{},
	}
}

// IsEmpty reports whether the chart has nothing to draw
func (c ChartSpec) IsEmpty() bool {
	for _, s := range c.Series {
		if len(s.Points) > 0 {
			return false
		}
	}
	return true
}

// SeriesByName returns the series with the given name
func (c ChartSpec) SeriesByName(name string) (Series, bool) {
	for _, s := range c.Series {
		if s.Name == name {
			return s, true
		}
	}
	return Series{}, false
}

// XValues returns the x coordinates of the series in order
func (s Series) XValues() []string {
	xs := make([]string, len(s.Points))
	for i, p := range s.Points {
		xs[i] = p.X
	}
	return xs
}

// YValues returns the y coordinates of the series in order, NaN for missing values
func (s Series) YValues() []float64 {
	ys := make([]float64, len(s.Points))
	for i, p := range s.Points {
		if p.Y == nil {
			ys[i] = math.NaN()
			continue
		}
		ys[i] = *p.Y
	}
	return ys
}

// Float64 returns a pointer to v
func Float64(v float64) *float64 {
	return &v
}
