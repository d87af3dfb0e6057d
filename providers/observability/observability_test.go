package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestAttributes(t *testing.T) {
	tests := []struct {
		name      string
		attr      Attribute
		wantKey   string
		wantValue any
	}{
		{"string", String(AttrParseStrategy, "json"), AttrParseStrategy, "json"},
		{"int", Int(AttrParseRecords, 3), AttrParseRecords, 3},
		{"int64", Int64("n", 9), "n", int64(9)},
		{"float64", Float64("ratio", 0.5), "ratio", 0.5},
		{"bool", Bool("ok", true), "ok", true},
		{"duration", Duration(AttrDuration, time.Second), AttrDuration, time.Second},
		{"error", Error(errors.New("boom")), AttrError, "boom"},
		{"nil error", Error(nil), AttrError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", tt.attr.Key, tt.wantKey)
			}
			if tt.attr.Value != tt.wantValue {
				t.Errorf("Value = %v, want %v", tt.attr.Value, tt.wantValue)
			}
		})
	}
}

func TestStrings(t *testing.T) {
	attr := Strings(AttrParseStages, []string{"json", "headings"})
	values, ok := attr.Value.([]string)
	if !ok || len(values) != 2 || values[1] != "headings" {
		t.Errorf("Strings() = %#v", attr)
	}
}

func TestStatusCode_String(t *testing.T) {
	if StatusOK.String() != "ok" || StatusError.String() != "error" || StatusUnset.String() != "unset" {
		t.Errorf("unexpected status names: %s %s %s", StatusOK, StatusError, StatusUnset)
	}
}

type stubSpan struct{}

func (stubSpan) End() {}
func (stubSpan) SetAttributes(...Attribute) {}
func (stubSpan) SetStatus(StatusCode, string) {}
func (stubSpan) RecordError(error) {}
func (stubSpan) AddEvent(string, ...Attribute) {}

func TestContextWithSpan(t *testing.T) {
	//nolint:staticcheck // nil context is part of the contract
	if SpanFromContext(nil) != nil {
		t.Error("SpanFromContext(nil) should be nil")
	}
	if SpanFromContext(context.Background()) != nil {
		t.Error("SpanFromContext() on empty context should be nil")
	}

	span := stubSpan{}
	ctx := ContextWithSpan(context.Background(), span)
	if SpanFromContext(ctx) != span {
		t.Error("SpanFromContext() did not return the attached span")
	}
}

func TestContextWithObserver(t *testing.T) {
	if ObserverFromContext(context.Background()) != nil {
		t.Error("ObserverFromContext() on empty context should be nil")
	}
	//nolint:staticcheck // nil context is part of the contract
	ctx := ContextWithObserver(nil, nil)
	if ctx == nil {
		t.Fatal("ContextWithObserver(nil, nil) returned nil context")
	}
	if ObserverFromContext(ctx) != nil {
		t.Error("ObserverFromContext() should be nil when a nil provider was attached")
	}
}
