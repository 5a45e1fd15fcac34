package schema

// Selection is the state of the dashboard inputs
type Selection struct {
	Countries []string `json:"countries"`
	Metric    Metric   `json:"metric"`
	Date      Date     `json:"date,omitempty"`
}

// Normalize returns a copy with duplicate and blank countries removed, keeping
// the first occurrence order. The receiver is left untouched.
func (s Selection) Normalize() Selection {
	seen := make(map[string]struct{}, len(s.Countries))
	countries := make([]string, 0, len(s.Countries))
	for _, c := range s.Countries {
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		countries = append(countries, c)
	}

	return Selection{
		Countries: countries,
		Metric:    s.Metric,
		Date:      s.Date,
	}
}

// SameCountries reports whether both selections list the same countries in the same order
func (s Selection) SameCountries(o Selection) bool {
	if len(s.Countries) != len(o.Countries) {
		return false
	}
	for i := range s.Countries {
		if s.Countries[i] != o.Countries[i] {
			return false
		}
	}
	return true
}
