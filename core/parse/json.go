package parse

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// DecodeJSON returns text as valid JSON bytes when it looks like a JSON object
// or array. Strictly valid input is returned unchanged; otherwise the text is
// passed through jsonrepair and accepted if the repaired form is valid.
//
// Candidates that do not start with '{' or '[' are rejected without attempting
// a repair, since jsonrepair happily turns plain prose into a JSON string.
func DecodeJSON(text string) ([]byte, bool) {
	s := strings.TrimSpace(text)
	if s == "" || (s[0] != '{' && s[0] != '[') {
		return nil, false
	}
	if json.Valid([]byte(s)) {
		return []byte(s), true
	}

	repaired, err := jsonrepair.JSONRepair(s)
	if err != nil {
		return nil, false
	}
	repaired = strings.TrimSpace(repaired)
	if repaired == "" || !json.Valid([]byte(repaired)) {
		return nil, false
	}
	return []byte(repaired), true
}

// DecodeValue decodes text into a generic value (map[string]any, []any, ...)
// using [DecodeJSON]. Numbers are kept as json.Number so integers survive
// without float rounding.
func DecodeValue(text string) (any, bool) {
	data, ok := DecodeJSON(text)
	if !ok {
		return nil, false
	}
	v, err := Unmarshal(data)
	if err != nil {
		return nil, false
	}
	return v, true
}

// Unmarshal decodes a single JSON document into a generic value with
// json.Number numbers.
func Unmarshal(data []byte) (any, error) {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// FirstObject returns the first balanced top-level {...} span in text.
// Brackets inside string literals are ignored and escape sequences honoured.
// An opening brace that never balances is skipped and the scan resumes at the
// next one.
func FirstObject(text string) (string, bool) {
	for start := strings.IndexByte(text, '{'); start != -1; {
		if span, ok := scanBalanced(text, start); ok {
			return span, true
		}
		next := strings.IndexByte(text[start+1:], '{')
		if next == -1 {
			break
		}
		start += next + 1
	}
	return "", false
}

// scanBalanced scans for a balanced object/array starting at start.
func scanBalanced(s string, start int) (string, bool) {
	stack := make([]byte, 0, 8)
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}
		if inString {
			switch c {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{', '[':
			stack = append(stack, c)
		case '}', ']':
			if len(stack) == 0 {
				return "", false
			}
			top := stack[len(stack)-1]
			if (top == '{' && c != '}') || (top == '[' && c != ']') {
				return "", false
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

// ParseStringAs parses content into T. Primitive kinds are converted with
// strconv; every other kind goes through [DecodeJSON] (so fenced-free,
// repairable JSON is accepted) followed by json.Unmarshal. When unmarshalling
// still fails, schema-style {"type": ..., "value": ...} wrappers are unwrapped
// and the unmarshal retried.
//
// Example:
//
//	type envelope struct {
//	    Choices []choice `json:"choices"`
//	}
//	env, err := parse.ParseStringAs[envelope](body)
func ParseStringAs[T any](content string) (T, error) {
	var result T
	rv := reflect.ValueOf(&result).Elem()

	switch rv.Kind() {
	case reflect.String:
		rv.SetString(content)
		return result, nil

	case reflect.Bool:
		val, err := strconv.ParseBool(strings.TrimSpace(content))
		if err != nil {
			return result, fmt.Errorf("failed to parse content as bool: %w", err)
		}
		rv.SetBool(val)
		return result, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val, err := strconv.ParseInt(strings.TrimSpace(content), 10, 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as int: %w", err)
		}
		rv.SetInt(val)
		return result, nil

	case reflect.Float32, reflect.Float64:
		val, err := strconv.ParseFloat(strings.TrimSpace(content), 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as float: %w", err)
		}
		rv.SetFloat(val)
		return result, nil
	}

	data, ok := DecodeJSON(content)
	if !ok {
		return result, fmt.Errorf("content is not JSON and could not be repaired as %T", result)
	}
	err := json.Unmarshal(data, &result)
	if err == nil {
		return result, nil
	}

	unwrapped, unwrapErr := unwrapSchemaValues(data)
	if unwrapErr == nil {
		var retry T
		if json.Unmarshal(unwrapped, &retry) == nil {
			return retry, nil
		}
	}
	return result, fmt.Errorf("failed to unmarshal JSON as %T: %w", result, err)
}

// unwrapSchemaValues replaces {"type": ..., "value": X} wrappers with X,
// a frequent mistake when models confuse a JSON schema with the data it describes.
func unwrapSchemaValues(data []byte) ([]byte, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return json.Marshal(recursiveUnwrap(v))
}

func recursiveUnwrap(data any) any {
	switch v := data.(type) {
	case map[string]any:
		if _, hasType := v["type"]; hasType {
			if value, hasValue := v["value"]; hasValue && len(v) == 2 {
				return recursiveUnwrap(value)
			}
		}
		out := make(map[string]any, len(v))
		for key, val := range v {
			out[key] = recursiveUnwrap(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = recursiveUnwrap(val)
		}
		return out
	default:
		return data
	}
}
