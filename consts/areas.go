package consts

import (
	"fmt"
	"strings"
)

// Overview is the area selector of the nationwide aggregate
const Overview = "overview"

// Area types understood by the statistics feed
const (
	AreaTypeOverview = "overview"
	AreaTypeNation   = "nation"
)

// England is the only area the age/gender breakdown is published for
const England = "England"

var (
	// AreaDisplayName maps an area selector to the name shown on charts
	AreaDisplayName map[string]string

	// Areas lists the selectable areas in dropdown order
	Areas = []string{Overview, "England", "Scotland", "Wales", "Northern Ireland"}
)

func init() {
	AreaDisplayName = make(map[string]string)

	AreaDisplayName[Overview] = "United Kingdom"
	AreaDisplayName["England"] = "England"
	AreaDisplayName["Scotland"] = "Scotland"
	AreaDisplayName["Wales"] = "Wales"
	AreaDisplayName["Northern Ireland"] = "Northern Ireland"
}

// AreaKey - convert a display name or selector into an area selector
func AreaKey(name string) (string, error) {
	for key, display := range AreaDisplayName {
		if strings.EqualFold(name, key) || strings.EqualFold(name, display) {
			return key, nil
		}
	}
	return "", fmt.Errorf("%s not exist", name)
}

// DisplayName returns the chart name of an area selector
func DisplayName(area string) string {
	if name, ok := AreaDisplayName[area]; ok {
		return name
	}
	return area
}

// SummaryLabel returns how an area is referred to in running text
func SummaryLabel(area string) string {
	if area == Overview {
		return "the UK"
	}
	return DisplayName(area)
}
