// Package validate checks generated dashboards and rules: every PromQL
// expression must parse and reference only known metrics.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/cog/variants"
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/model/labels"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/mong0520/kapaipai-api/tools/dashgen/rules"
)

// Result collects validation findings. Errors fail generation; warnings
// are reported but do not.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// histogramSuffixes are the series a histogram metric is exported as.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Expr parses expr and checks every selected metric against known.
func Expr(expr string, known map[string]bool) error {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", expr, err)
	}

	var unknown []string
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok {
			return nil
		}
		name := metricName(vs)
		if name != "" && !isKnown(name, known) {
			unknown = append(unknown, name)
		}
		return nil
	})
	if len(unknown) > 0 {
		return fmt.Errorf("unknown metrics %s in %q", strings.Join(unknown, ", "), expr)
	}
	return nil
}

func metricName(vs *parser.VectorSelector) string {
	if vs.Name != "" {
		return vs.Name
	}
	for _, m := range vs.LabelMatchers {
		if m.Name == labels.MetricName && m.Type == labels.MatchEqual {
			return m.Value
		}
	}
	return ""
}

func isKnown(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}

// Dashboard validates every panel query in dash.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) *Result {
	res := &Result{}
	for _, p := range dash.Panels {
		if p.Panel != nil {
			checkPanel(res, p.Panel, known)
		}
		if p.RowPanel != nil {
			for i := range p.RowPanel.Panels {
				checkPanel(res, &p.RowPanel.Panels[i], known)
			}
		}
	}
	return res
}

func checkPanel(res *Result, p *dashboard.Panel, known map[string]bool) {
	title := "(untitled)"
	if p.Title != nil {
		title = *p.Title
	}
	if p.Description == nil || *p.Description == "" {
		res.warnf("panel %q has no description", title)
	}
	if len(p.Targets) == 0 {
		res.errorf("panel %q has no queries", title)
		return
	}
	for _, t := range p.Targets {
		expr, ok := promExpr(t)
		if !ok {
			res.errorf("panel %q has a non-Prometheus query", title)
			continue
		}
		if err := Expr(expr, known); err != nil {
			res.errorf("panel %q: %v", title, err)
		}
	}
}

// promExpr extracts the PromQL expression of a panel target through its
// JSON form, which is what Grafana itself reads.
func promExpr(t variants.Dataquery) (string, bool) {
	data, err := json.Marshal(t)
	if err != nil {
		return "", false
	}
	var q struct {
		Expr string `json:"expr"`
	}
	if err := json.Unmarshal(data, &q); err != nil || q.Expr == "" {
		return "", false
	}
	return q.Expr, true
}

// Rules validates every expression of cr. Recording rule names are added
// to known so later rules and dashboards may reference them.
func Rules(cr rules.PrometheusRule, known map[string]bool) *Result {
	res := &Result{}
	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Record + r.Alert
			if name == "" {
				res.errorf("group %q has a rule with neither record nor alert", g.Name)
				continue
			}
			if err := Expr(r.Expr, known); err != nil {
				res.errorf("rule %q: %v", name, err)
			}
			if r.Alert != "" && r.Annotations["summary"] == "" {
				res.warnf("alert %q has no summary", r.Alert)
			}
		}
	}
	return res
}
