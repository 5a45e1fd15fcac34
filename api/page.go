package api

import (
	"html/template"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/ukcovid-dashboard/consts"
	"github.com/bitmark-inc/ukcovid-dashboard/schema"
)

type pageOption struct {
	option
	Selected bool
}

type pageData struct {
	Areas   []pageOption
	Metrics []pageOption
	Date    string
	Summary []string
	Query   template.URL
}

func encodeSelection(sel schema.Selection) template.URL {
	q := url.Values{}
	for _, country := range sel.Countries {
		q.Add("country", country)
	}
	q.Set("metric", string(sel.Metric))
	if !sel.Date.IsZero() {
		q.Set("date", sel.Date.String())
	}
	return template.URL(q.Encode())
}

func markSelected(options []option, selected ...string) []pageOption {
	set := make(map[string]bool, len(selected))
	for _, s := range selected {
		set[s] = true
	}

	result := make([]pageOption, 0, len(options))
	for _, o := range options {
		result = append(result, pageOption{option: o, Selected: set[o.Value]})
	}
	return result
}

// page serves the dashboard. The form resubmits on every input change and
// the chart images are loaded from /charts with the same query.
func (s *Server) page(c *gin.Context) {
	sel, ok := bindSelection(c)
	if !ok {
		return
	}
	if c.Request.URL.RawQuery == "" {
		sel.Countries = []string{consts.Overview}
	}

	var country string
	if len(sel.Countries) > 0 {
		country = sel.Countries[0]
	}
	summary, err := s.builder.BuildSummary(c.Request.Context(), country)
	if shouldInterupt(err, c) {
		return
	}

	c.HTML(http.StatusOK, "index.tmpl", pageData{
		Areas:   markSelected(s.areaOptions(), sel.Countries...),
		Metrics: markSelected(s.metricOptions(), string(sel.Metric)),
		Date:    sel.Date.String(),
		Summary: summary.Lines,
		Query:   encodeSelection(sel),
	})
}
