// Package validate checks generated dashboards and rules against the
// metrics droplist actually exports.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/droplist/tools/dashgen/rules"
)

// histogramSuffixes are series Prometheus derives from a histogram name.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Result collects problems found during validation. Errors fail the
// generator; warnings are reported only.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation produced no errors.
func (r *Result) Ok() bool { return len(r.Errors) == 0 }

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

type panelJSON struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Panels      []panelJSON `json:"panels"`
	Targets     []struct {
		Expr  string `json:"expr"`
		RefID string `json:"refId"`
	} `json:"targets"`
}

// Dashboard parses every panel query in dash and checks that each metric
// it selects is in known.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var res Result

	raw, err := json.Marshal(dash)
	if err != nil {
		res.errorf("encoding dashboard: %v", err)
		return res
	}
	var doc struct {
		Panels []panelJSON `json:"panels"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		res.errorf("decoding dashboard: %v", err)
		return res
	}

	for _, row := range doc.Panels {
		for _, p := range row.Panels {
			if p.Description == "" {
				res.warnf("panel %q has no description", p.Title)
			}
			if len(p.Targets) == 0 {
				res.errorf("panel %q has no queries", p.Title)
			}
			for _, t := range p.Targets {
				checkExpr(&res, fmt.Sprintf("panel %q query %s", p.Title, t.RefID), t.Expr, known)
			}
		}
	}
	return res
}

// Rules parses every expression in cr and checks the metrics it selects.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result
	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Record
			if name == "" {
				name = r.Alert
			}
			if name == "" {
				res.errorf("group %s: rule with neither record nor alert", g.Name)
				continue
			}
			checkExpr(&res, fmt.Sprintf("rule %s", name), r.Expr, known)
		}
	}
	return res
}

func checkExpr(res *Result, where, expr string, known map[string]bool) {
	if strings.TrimSpace(expr) == "" {
		res.errorf("%s: empty expression", where)
		return
	}
	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.errorf("%s: %v", where, err)
		return
	}
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !isKnown(vs.Name, known) {
			res.errorf("%s: unknown metric %s", where, vs.Name)
		}
		return nil
	})
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
