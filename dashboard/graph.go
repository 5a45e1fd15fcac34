package dashboard

import (
	"context"

	"github.com/bitmark-inc/ukcovid-dashboard/schema"
)

// Input - a dashboard input an output can depend on
type Input string

const (
	InputCountries Input = "countries"
	InputMetric    Input = "metric"
	InputDate      Input = "date"
)

// Outputs produced by the dashboard graph
const (
	OutputTrend      = "trend"
	OutputSummary    = "summary"
	OutputComparison = "comparison"
	OutputAgeGender  = "ageGender"
)

// OutputFunc computes one output from the current selection
type OutputFunc func(ctx context.Context, sel schema.Selection) (interface{}, error)

type output struct {
	name string
	deps []Input
	fn   OutputFunc
}

// Graph records which inputs every output depends on, so that a change of
// selection only recomputes the outputs it affects.
type Graph struct {
	outputs []output
}

// Register adds an output. Outputs are evaluated in registration order.
func (g *Graph) Register(name string, deps []Input, fn OutputFunc) {
	g.outputs = append(g.outputs, output{
		name: name,
		deps: deps,
		fn:   fn,
	})
}

// Dependencies returns the inputs an output was registered with
func (g *Graph) Dependencies(name string) []Input {
	for _, o := range g.outputs {
		if o.name == name {
			return o.deps
		}
	}
	return nil
}

// Evaluate computes every output for sel
func (g *Graph) Evaluate(ctx context.Context, sel schema.Selection) (map[string]interface{}, error) {
	sel = sel.Normalize()
	results := make(map[string]interface{}, len(g.outputs))
	for _, o := range g.outputs {
		v, err := o.fn(ctx, sel)
		if err != nil {
			return nil, err
		}
		results[o.name] = v
	}
	return results, nil
}

// Update recomputes the outputs depending on an input that differs between prev and next
func (g *Graph) Update(ctx context.Context, prev, next schema.Selection) (map[string]interface{}, error) {
	prev, next = prev.Normalize(), next.Normalize()
	changed := Changed(prev, next)

	results := make(map[string]interface{})
	for _, o := range g.outputs {
		if !dependsOn(o.deps, changed) {
			continue
		}
		v, err := o.fn(ctx, next)
		if err != nil {
			return nil, err
		}
		results[o.name] = v
	}
	return results, nil
}

func dependsOn(deps []Input, changed map[Input]bool) bool {
	for _, d := range deps {
		if changed[d] {
			return true
		}
	}
	return false
}

// Changed lists the inputs that differ between two selections
func Changed(prev, next schema.Selection) map[Input]bool {
	changed := make(map[Input]bool)
	if !prev.SameCountries(next) {
		changed[InputCountries] = true
	}
	if prev.Metric != next.Metric {
		changed[InputMetric] = true
	}
	if prev.Date != next.Date {
		changed[InputDate] = true
	}
	return changed
}

func firstCountry(sel schema.Selection) string {
	if len(sel.Countries) == 0 {
		return ""
	}
	return sel.Countries[0]
}

// NewGraph wires the four dashboard views to the builder
func NewGraph(b *Builder) *Graph {
	g := &Graph{}

	g.Register(OutputTrend, []Input{InputCountries, InputMetric}, func(ctx context.Context, sel schema.Selection) (interface{}, error) {
		return b.BuildTrendChart(ctx, sel.Countries, sel.Metric)
	})

	g.Register(OutputSummary, []Input{InputCountries}, func(ctx context.Context, sel schema.Selection) (interface{}, error) {
		return b.BuildSummary(ctx, firstCountry(sel))
	})

	g.Register(OutputComparison, []Input{InputCountries, InputDate, InputMetric}, func(ctx context.Context, sel schema.Selection) (interface{}, error) {
		return b.BuildComparisonBarChart(ctx, sel.Countries, sel.Date, sel.Metric)
	})

	g.Register(OutputAgeGender, []Input{InputDate}, func(ctx context.Context, sel schema.Selection) (interface{}, error) {
		return b.BuildAgeGenderChart(ctx, sel.Date)
	})

	return g
}
