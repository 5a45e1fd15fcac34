package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"time"

	log "github.com/sirupsen/logrus"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bitmark-inc/ukcovid-dashboard/schema"
)

const logPrefix = "render"

// Format - output image format
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ContentType returns the mime type of the format
func (f Format) ContentType() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

var ErrUnknownFormat = fmt.Errorf("unknown image format")

// palette follows the default plotly trace colours
var palette = []drawing.Color{
	drawing.ColorFromHex("636efa"),
	drawing.ColorFromHex("ef553b"),
	drawing.ColorFromHex("00cc96"),
	drawing.ColorFromHex("ab63fa"),
	drawing.ColorFromHex("ffa15a"),
	drawing.ColorFromHex("19d3f3"),
}

func colorOf(i int) drawing.Color {
	return palette[i%len(palette)]
}

// Renderer draws chart specs at a fixed size
type Renderer struct {
	Width  int
	Height int
}

// New - new renderer, falling back to 1024x480 for non-positive sizes
func New(width, height int) *Renderer {
	if width <= 0 {
		width = 1024
	}
	if height <= 0 {
		height = 480
	}
	return &Renderer{Width: width, Height: height}
}

// Render writes spec in the given format. Empty charts, and charts go-chart
// refuses to draw, come out as a blank canvas.
func (r *Renderer) Render(spec schema.ChartSpec, format Format, w io.Writer) error {
	var provider chart.RendererProvider
	switch format {
	case FormatPNG:
		provider = chart.PNG
	case FormatSVG:
		provider = chart.SVG
	default:
		return ErrUnknownFormat
	}

	var renderable interface {
		Render(chart.RendererProvider, io.Writer) error
	}

	switch spec.Kind {
	case schema.ChartLine:
		if c, ok := r.lineChart(spec); ok {
			renderable = c
		}
	case schema.ChartBar, schema.ChartGroupedBar:
		if c, ok := r.barChart(spec); ok {
			renderable = c
		}
	}

	if renderable == nil {
		return r.blank(format, w)
	}

	var buf bytes.Buffer
	if err := renderable.Render(provider, &buf); err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"kind":   spec.Kind,
			"error":  err,
		}).Warn("render chart")
		return r.blank(format, w)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func (r *Renderer) lineChart(spec schema.ChartSpec) (*chart.Chart, bool) {
	series := []chart.Series{}
	for i, s := range spec.Series {
		var xs []time.Time
		var ys []float64
		for _, p := range s.Points {
			if p.Y == nil {
				continue
			}
			t := schema.Date(p.X).Time()
			if t.IsZero() {
				continue
			}
			xs = append(xs, t)
			ys = append(ys, *p.Y)
		}
		if len(xs) == 0 {
			continue
		}
		if len(xs) == 1 {
			// go-chart needs a non-zero x range
			xs = append(xs, xs[0].Add(24*time.Hour))
			ys = append(ys, ys[0])
		}

		series = append(series, chart.TimeSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: colorOf(i),
				StrokeWidth: 2,
			},
		})
	}

	if len(series) == 0 {
		return nil, false
	}

	c := &chart.Chart{
		Title:      spec.Title,
		Width:      r.Width,
		Height:     r.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           spec.XLabel,
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: spec.YLabel,
		},
		Series: series,
	}
	c.Elements = []chart.Renderable{chart.Legend(c)}
	return c, true
}

func (r *Renderer) barChart(spec schema.ChartSpec) (*chart.BarChart, bool) {
	bars := []chart.Value{}

	if spec.BarMode == schema.BarModeGroup {
		// interleave the series so that every x value shows its bars side by side
		var order []string
		seen := map[string]bool{}
		for _, s := range spec.Series {
			for _, p := range s.Points {
				if !seen[p.X] {
					seen[p.X] = true
					order = append(order, p.X)
				}
			}
		}

		for _, x := range order {
			for i, s := range spec.Series {
				for _, p := range s.Points {
					if p.X != x || p.Y == nil {
						continue
					}
					bars = append(bars, bar(fmt.Sprintf("%s %s", x, initial(s.Name)), *p.Y, i))
				}
			}
		}
	} else {
		for i, s := range spec.Series {
			for _, p := range s.Points {
				if p.Y == nil {
					continue
				}
				label := p.X
				if p.Text != "" {
					label = fmt.Sprintf("%s (%s)", p.X, p.Text)
				}
				bars = append(bars, bar(label, *p.Y, i))
			}
		}
	}

	if len(bars) == 0 {
		return nil, false
	}

	width := (r.Width - 120) / (2 * len(bars))
	if width < 4 {
		width = 4
	}

	return &chart.BarChart{
		Title:      spec.Title,
		BarWidth:   width,
		BarSpacing: width,
		Width:      r.Width,
		Height:     r.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		YAxis: chart.YAxis{
			Name:  spec.YLabel,
			Range: barRange(bars),
		},
		UseBaseValue: true,
		BaseValue:    0,
		Bars:         bars,
	}, true
}

// barRange spans every bar and zero. go-chart refuses a zero-width range,
// which a single bar or a row of equal bars would otherwise produce.
func barRange(bars []chart.Value) *chart.ContinuousRange {
	lo, hi := 0.0, 0.0
	for _, b := range bars {
		if b.Value < lo {
			lo = b.Value
		}
		if b.Value > hi {
			hi = b.Value
		}
	}
	if hi == lo {
		hi = lo + 1
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}

func bar(label string, v float64, i int) chart.Value {
	return chart.Value{
		Label: label,
		Value: v,
		Style: chart.Style{
			FillColor:   colorOf(i),
			StrokeColor: colorOf(i),
			StrokeWidth: 1,
		},
	}
}

func initial(name string) string {
	for _, r := range name {
		return string(r)
	}
	return ""
}

func (r *Renderer) blank(format Format, w io.Writer) error {
	if format == FormatSVG {
		_, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d"></svg>`, r.Width, r.Height)
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	return png.Encode(w, img)
}
