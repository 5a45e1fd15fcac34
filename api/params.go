package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/ukcovid-dashboard/consts"
	"github.com/bitmark-inc/ukcovid-dashboard/schema"
)

// selectionParams is the query form of a dashboard selection
type selectionParams struct {
	Countries []string `form:"country"`
	Metric    string   `form:"metric"`
	Date      string   `form:"date"`
}

func (p selectionParams) selection() (schema.Selection, error) {
	var sel schema.Selection

	for _, name := range p.Countries {
		if name == "" {
			continue
		}
		key, err := consts.AreaKey(name)
		if err != nil {
			return sel, err
		}
		sel.Countries = append(sel.Countries, key)
	}

	if p.Metric == "" {
		sel.Metric = schema.MetricNewCases
	} else {
		sel.Metric = schema.Metric(p.Metric)
		if !sel.Metric.Valid() {
			return sel, fmt.Errorf("unknown metric %q", p.Metric)
		}
	}

	if p.Date != "" {
		d, err := schema.ParseDate(p.Date)
		if err != nil {
			return sel, err
		}
		sel.Date = d
	}

	return sel.Normalize(), nil
}

// bindSelection reads the selection from the query string. On failure the
// request is aborted with 400 and false is returned.
func bindSelection(c *gin.Context) (schema.Selection, bool) {
	var params selectionParams
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return schema.Selection{}, false
	}

	sel, err := params.selection()
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return schema.Selection{}, false
	}
	return sel, true
}

// validateSelection checks a selection decoded from a request body
func validateSelection(sel schema.Selection) (schema.Selection, error) {
	params := selectionParams{
		Countries: sel.Countries,
		Metric:    string(sel.Metric),
		Date:      string(sel.Date),
	}
	return params.selection()
}
