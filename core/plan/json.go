package plan

import (
	"strings"

	"github.com/leofalp/agentplan/core/normalize"
	"github.com/leofalp/agentplan/core/parse"
	"github.com/leofalp/agentplan/core/validate"
)

// maxSearchDepth bounds the recursive search for a unit array.
const maxSearchDepth = 3

var knownPlanFields = normalize.Known(normalize.PlanFields()...)

// fromJSON decodes text and converts the unit array it carries.
func fromJSON(text string) []candidate {
	value, ok := parse.DecodeValue(text)
	if !ok {
		return nil
	}
	return filter(fromElements(locateUnits(value)))
}

// fromFirstObject retries the JSON stage on the first balanced {...} span.
func fromFirstObject(text string) []candidate {
	span, ok := parse.FirstObject(text)
	if !ok {
		return nil
	}
	return fromJSON(span)
}

// locateUnits finds the unit array in a decoded document: a list key on the
// root, then a list key inside a well-known container, then a recursive
// search for an array of unit-like objects.
func locateUnits(root any) []any {
	if obj, ok := root.(map[string]any); ok {
		if items := listUnder(obj); len(items) > 0 {
			return items
		}
		for _, key := range normalize.ContainerKeys {
			if inner, ok := obj[key].(map[string]any); ok {
				if items := listUnder(inner); len(items) > 0 {
					return items
				}
			}
		}
	}
	return searchUnits(root, 0)
}

func listUnder(obj map[string]any) []any {
	for _, key := range normalize.ListKeys {
		if items, ok := obj[key].([]any); ok && len(items) > 0 {
			return items
		}
	}
	return nil
}

func searchUnits(v any, depth int) []any {
	if depth > maxSearchDepth {
		return nil
	}
	switch val := v.(type) {
	case []any:
		if len(val) == 0 {
			return nil
		}
		for _, item := range val {
			obj, ok := item.(map[string]any)
			if !ok || !(normalize.Has(obj, normalize.PlanName) || normalize.Has(obj, normalize.PlanNumber)) {
				return nil
			}
		}
		return val
	case map[string]any:
		for _, keys := range [][]string{normalize.ListKeys, normalize.ContainerKeys} {
			for _, key := range keys {
				if found := searchUnits(val[key], depth+1); found != nil {
					return found
				}
			}
		}
	}
	return nil
}

func fromElements(items []any) []candidate {
	var cands []candidate
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			cands = append(cands, fromObject(obj))
		}
	}
	return cands
}

// fromObject maps one JSON object onto a candidate through the alias tables.
// Fields no table claims are kept in Extra. An object without a usable number
// is rejected rather than numbered by position.
func fromObject(obj map[string]any) candidate {
	c := candidate{Proposal: Proposal{
		Name:          stripQuotes(normalize.LookupString(obj, normalize.PlanName)),
		Rationale:     strings.TrimSpace(normalize.LookupString(obj, normalize.PlanRationale)),
		Description:   strings.TrimSpace(normalize.LookupString(obj, normalize.PlanDescription)),
		EstimatedTime: strings.TrimSpace(normalize.LookupString(obj, normalize.PlanEstimatedTime)),
		Kind:          strings.TrimSpace(normalize.LookupString(obj, normalize.PlanKind)),
	}}

	if v, ok := normalize.Lookup(obj, normalize.PlanKeyActions); ok {
		c.KeyActions = normalize.StringList(v)
	}

	c.state = numberRejected
	if v, ok := normalize.Lookup(obj, normalize.PlanNumber); ok {
		if n, valid := validate.ResolveNumber(v); valid {
			c.Number, c.state = n, numberResolved
		}
	}

	for key, v := range obj {
		if _, known := knownPlanFields[key]; known {
			continue
		}
		if c.Extra == nil {
			c.Extra = make(map[string]any)
		}
		c.Extra[key] = v
	}
	return c
}
