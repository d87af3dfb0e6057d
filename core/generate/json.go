package generate

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/leofalp/agentplan/core/normalize"
	"github.com/leofalp/agentplan/core/parse"
)

// jsonFormat turns decoded JSON into units.
type jsonFormat struct {
	positional
}

// elements locates the unit elements in a JSON document: the document itself
// when it is an array, or the first units list on an object. With single set,
// an object without a units list is returned as the only element.
func (f jsonFormat) elements(data []byte, single bool) ([]json.RawMessage, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, false
	}

	switch data[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, false
		}
		return items, true
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(data, &fields); err != nil {
			return nil, false
		}
		for _, key := range normalize.ListKeys {
			raw, ok := fields[key]
			if !ok {
				continue
			}
			var items []json.RawMessage
			if err := json.Unmarshal(raw, &items); err == nil {
				return items, true
			}
		}
		if single {
			return []json.RawMessage{data}, true
		}
	}
	return nil, false
}

// units converts elements to units, numbering from offset. Strings become
// text units; objects are normalised; anything else is skipped.
func (f jsonFormat) units(elements []json.RawMessage, offset int) []Unit {
	var units []Unit
	for _, raw := range elements {
		value, err := parse.Unmarshal(raw)
		if err != nil {
			continue
		}
		index := offset + len(units)
		switch v := value.(type) {
		case string:
			units = append(units, f.textUnit(v, index))
		case map[string]any:
			units = append(units, f.object(v, raw, index))
		}
	}
	return units
}

func (f jsonFormat) object(obj map[string]any, raw json.RawMessage, index int) Unit {
	u := Unit{
		ID:            f.id(index),
		Name:          f.name(index),
		Kind:          normalize.LookupString(obj, normalize.UnitKind),
		Purpose:       normalize.LookupString(obj, normalize.UnitPurpose),
		Instructions:  normalize.LookupString(obj, normalize.UnitInstructions),
		DemoScript:    normalize.LookupString(obj, normalize.UnitDemoScript),
		BusinessValue: normalize.LookupString(obj, normalize.UnitBusinessValue),
		Transition:    normalize.LookupString(obj, normalize.UnitTransition),
	}
	if v, ok := normalize.Lookup(obj, normalize.UnitID); ok {
		u.ID = normalize.String(v)
	}
	if v, ok := normalize.Lookup(obj, normalize.UnitName); ok {
		u.Name = normalize.String(v)
	}

	if v, ok := normalize.Lookup(obj, normalize.UnitRaw); ok {
		if s, isString := v.(string); isString {
			u.Raw = s
		}
	}
	if u.Raw == "" {
		u.Raw = indent(raw)
	}
	return u
}

// indent re-serialises raw with two-space indentation, keeping key order.
func indent(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return strings.TrimSpace(string(raw))
	}
	return buf.String()
}
