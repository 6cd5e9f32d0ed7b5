// Package rules builds droplist's Prometheus recording and alerting rules,
// wrapped as Prometheus Operator PrometheusRule resources.
package rules

import "strings"

const (
	ruleAPIVersion = "monitoring.coreos.com/v1"
	ruleKind       = "PrometheusRule"

	// ruleSelector is the label the cluster Prometheus selects rule CRs by.
	ruleSelector = "system-rules-prometheus"
)

// PrometheusRule is the Prometheus Operator custom resource.
type PrometheusRule struct {
	APIVersion string                 `yaml:"apiVersion"`
	Kind       string                 `yaml:"kind"`
	Metadata   PrometheusRuleMetadata `yaml:"metadata"`
	Spec       PrometheusRuleSpec     `yaml:"spec"`
}

// PrometheusRuleMetadata is the subset of object metadata droplist sets.
type PrometheusRuleMetadata struct {
	Name   string            `yaml:"name"`
	Labels map[string]string `yaml:"labels,omitempty"`
}

// PrometheusRuleSpec is the rule group list.
type PrometheusRuleSpec struct {
	Groups []RuleGroup `yaml:"groups"`
}

// RuleGroup is evaluated as a unit on the group (or global) interval.
type RuleGroup struct {
	Name     string `yaml:"name"`
	Interval string `yaml:"interval,omitempty"`
	Rules    []Rule `yaml:"rules"`
}

// Rule sets exactly one of Record or Alert.
type Rule struct {
	Record      string            `yaml:"record,omitempty"`
	Alert       string            `yaml:"alert,omitempty"`
	Expr        string            `yaml:"expr"`
	For         string            `yaml:"for,omitempty"`
	Labels      map[string]string `yaml:"labels,omitempty"`
	Annotations map[string]string `yaml:"annotations,omitempty"`
}

// newPrometheusRule wraps a single group named after the resource.
func newPrometheusRule(name string, rules ...Rule) PrometheusRule {
	return PrometheusRule{
		APIVersion: ruleAPIVersion,
		Kind:       ruleKind,
		Metadata: PrometheusRuleMetadata{
			Name:   name,
			Labels: map[string]string{"prometheus": ruleSelector},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{{Name: groupName(name), Rules: rules}},
		},
	}
}

// groupName drops the "-rules" suffix so droplist-recording-rules holds
// the droplist-recording group.
func groupName(resource string) string {
	return strings.TrimSuffix(resource, "-rules")
}

func record(name, expr string) Rule {
	return Rule{Record: name, Expr: expr}
}

func alert(name, expr, pending, severity, summary, description string) Rule {
	return Rule{
		Alert:       name,
		Expr:        expr,
		For:         pending,
		Labels:      map[string]string{"severity": severity},
		Annotations: map[string]string{"summary": summary, "description": description},
	}
}
