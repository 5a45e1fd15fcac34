package utils

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var siPrefixes = map[int]string{
	-9: "n",
	-6: "µ",
	-3: "m",
	0:  "",
	3:  "k",
	6:  "M",
	9:  "G",
	12: "T",
}

// FormatCount renders n with the digit grouping of lang
func FormatCount(lang string, n int64) string {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag).Sprintf("%d", n)
}

// FormatSI renders v with three significant figures and an SI suffix, e.g. 12.3k
func FormatSI(v float64) string {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return "0.00"
	}

	r := roundSignificant(v, 3)
	exp := int(math.Floor(math.Log10(math.Abs(r))/3)) * 3
	if exp < -9 {
		exp = -9
	} else if exp > 12 {
		exp = 12
	}

	scaled := r / math.Pow(10, float64(exp))
	decimals := 2 - int(math.Floor(math.Log10(math.Abs(scaled))))
	if decimals < 0 {
		decimals = 0
	}

	return strconv.FormatFloat(scaled, 'f', decimals, 64) + siPrefixes[exp]
}

func roundSignificant(v float64, digits int) float64 {
	p := math.Pow(10, float64(digits-1)-math.Floor(math.Log10(math.Abs(v))))
	return math.Round(v*p) / p
}
