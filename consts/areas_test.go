package consts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ukcovid-dashboard/consts"
)

func TestAreaKey(t *testing.T) {
	mapping := map[string]string{
		"United Kingdom":   "overview",
		"overview":         "overview",
		"England":          "England",
		"scotland":         "Scotland",
		"Wales":            "Wales",
		"Northern Ireland": "Northern Ireland",
	}

	for key, value := range mapping {
		actual, err := consts.AreaKey(key)
		assert.NoError(t, err)
		assert.Equal(t, value, actual, "wrong key")
	}

	_, err := consts.AreaKey("Atlantis")
	assert.Error(t, err)
}

func TestSummaryLabel(t *testing.T) {
	assert.Equal(t, "the UK", consts.SummaryLabel(consts.Overview))
	assert.Equal(t, "Wales", consts.SummaryLabel("Wales"))
	assert.Equal(t, "United Kingdom", consts.DisplayName(consts.Overview))
	assert.Equal(t, "Elsewhere", consts.DisplayName("Elsewhere"))
}
