package api

import (
	"bytes"
	"context"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/ukcovid-dashboard/consts"
	"github.com/bitmark-inc/ukcovid-dashboard/render"
	"github.com/bitmark-inc/ukcovid-dashboard/schema"
)

// chart names accepted by /charts/:name
const (
	chartTrend      = "trend"
	chartComparison = "comparison"
	chartAgeGender  = "age-gender"
)

func (s *Server) chartSpec(ctx context.Context, name string, sel schema.Selection) (schema.ChartSpec, bool, error) {
	switch name {
	case chartTrend:
		spec, err := s.builder.BuildTrendChart(ctx, sel.Countries, sel.Metric)
		return spec, true, err
	case chartComparison:
		spec, err := s.builder.BuildComparisonBarChart(ctx, sel.Countries, sel.Date, sel.Metric)
		return spec, true, err
	case chartAgeGender:
		spec, err := s.builder.BuildAgeGenderChart(ctx, sel.Date)
		return spec, true, err
	default:
		return schema.ChartSpec{}, false, nil
	}
}

func (s *Server) chartJSON(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sel, ok := bindSelection(c)
		if !ok {
			return
		}

		spec, _, err := s.chartSpec(c.Request.Context(), name, sel)
		if shouldInterupt(err, c) {
			return
		}

		c.JSON(http.StatusOK, spec)
	}
}

func (s *Server) trendChart(c *gin.Context) {
	s.chartJSON(chartTrend)(c)
}

func (s *Server) comparisonChart(c *gin.Context) {
	s.chartJSON(chartComparison)(c)
}

func (s *Server) ageGenderChart(c *gin.Context) {
	s.chartJSON(chartAgeGender)(c)
}

// chartImage renders a chart as an image, e.g. /charts/trend.png
func (s *Server) chartImage(c *gin.Context) {
	file := c.Param("name")
	ext := path.Ext(file)
	name := strings.TrimSuffix(file, ext)

	format := render.Format(strings.TrimPrefix(ext, "."))
	if format == "" {
		format = render.FormatPNG
	}
	if format != render.FormatPNG && format != render.FormatSVG {
		abortWithEncoding(c, http.StatusNotFound, errorUnknownChart, render.ErrUnknownFormat)
		return
	}

	sel, ok := bindSelection(c)
	if !ok {
		return
	}

	spec, known, err := s.chartSpec(c.Request.Context(), name, sel)
	if !known {
		abortWithEncoding(c, http.StatusNotFound, errorUnknownChart)
		return
	}
	if shouldInterupt(err, c) {
		return
	}

	var buf bytes.Buffer
	if err := s.renderer.Render(spec, format, &buf); shouldInterupt(err, c) {
		return
	}

	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

func (s *Server) summary(c *gin.Context) {
	sel, ok := bindSelection(c)
	if !ok {
		return
	}

	var country string
	if len(sel.Countries) > 0 {
		country = sel.Countries[0]
	}

	summary, err := s.builder.BuildSummary(c.Request.Context(), country)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, summary)
}

type option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func (s *Server) areaOptions() []option {
	options := make([]option, 0, len(consts.Areas))
	for _, area := range consts.Areas {
		options = append(options, option{
			Value: area,
			Label: consts.DisplayName(area),
		})
	}
	return options
}

func (s *Server) metricOptions() []option {
	options := make([]option, 0, len(schema.Metrics))
	for _, m := range schema.Metrics {
		options = append(options, option{
			Value: string(m),
			Label: s.builder.MetricLabel(m),
		})
	}
	return options
}

// options lists the selectable areas and metrics
func (s *Server) options(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"areas":   s.areaOptions(),
		"metrics": s.metricOptions(),
	})
}
