package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/ukcovid-dashboard/schema"
)

type dashboardRequest struct {
	Previous *schema.Selection `json:"previous"`
	Current  schema.Selection  `json:"current"`
}

// dashboard recomputes the views affected by a selection change. Without a
// previous selection every view is computed.
func (s *Server) dashboard(c *gin.Context) {
	var req dashboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	current, err := validateSelection(req.Current)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var outputs map[string]interface{}
	if req.Previous == nil {
		outputs, err = s.graph.Evaluate(c.Request.Context(), current)
	} else {
		previous, verr := validateSelection(*req.Previous)
		if verr != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, verr)
			return
		}
		outputs, err = s.graph.Update(c.Request.Context(), previous, current)
	}
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"selection": current,
		"outputs":   outputs,
	})
}
