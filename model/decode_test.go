package model

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestAsString(t *testing.T) {
	tests := []struct {
		in   any
		want string
		ok   bool
	}{
		{"abc", "abc", true},
		{json.Number("812"), "812", true},
		{json.Number("1.5"), "", false},
		{float64(42), "42", true},
		{3.25, "", false},
		{7, "7", true},
		{true, "", false},
		{map[string]any{}, "", false},
	}
	for _, tt := range tests {
		got, ok := asString(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("asString(%#v) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestAsInt64(t *testing.T) {
	tests := []struct {
		in   any
		want int64
		ok   bool
	}{
		{json.Number("1963465985517105840"), 1963465985517105840, true},
		{float64(3), 3, true},
		{2.5, 0, false},
		{" 12 ", 12, true},
		{"twelve", 0, false},
		{int64(-9), -9, true},
		{false, 0, false},
		{1e300, 0, false},
		{9.3e18, 0, false},
		{-9.3e18, 0, false},
		{math.Inf(1), 0, false},
		{float64(-1 << 63), -1 << 63, true},
	}
	for _, tt := range tests {
		got, ok := asInt64(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("asInt64(%#v) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestJoinPath(t *testing.T) {
	tests := []struct{ parent, child, want string }{
		{"status", "color", "status.color"},
		{"assignees[1]", "id", "assignees[1].id"},
		{"", "id", "id"},
		{"shared", "", "shared"},
		{"tasks", "[2].id", "tasks[2].id"},
	}
	for _, tt := range tests {
		if got := joinPath(tt.parent, tt.child); got != tt.want {
			t.Errorf("joinPath(%q, %q) = %q, want %q", tt.parent, tt.child, got, tt.want)
		}
	}
}

func TestDecoderStopsAfterFirstError(t *testing.T) {
	d := newDecoder("thing", map[string]any{"b": "x"})
	_ = d.RequiredString("a")
	if got := d.String("b"); got != nil {
		t.Errorf("String after error = %q, want nil", *got)
	}
	se, ok := d.Err().(*SchemaValidationError)
	if !ok || se.Field != "a" {
		t.Errorf("Err() = %v, want missing field a", d.Err())
	}
}

func TestOutOfRangeFloatIsSchemaError(t *testing.T) {
	tests := []struct {
		name   string
		decode func() error
		field  string
	}{
		{"user id", func() error {
			_, err := DecodeUser(map[string]any{"id": 1e300, "username": "a", "color": "#000"})
			return err
		}, "id"},
		{"user id just past int64", func() error {
			_, err := DecodeUser(map[string]any{"id": 9.3e18, "username": "a", "color": "#000"})
			return err
		}, "id"},
		{"status orderindex", func() error {
			_, err := DecodeStatus(map[string]any{"orderindex": 1e20})
			return err
		}, "orderindex"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.decode()
			var se *SchemaValidationError
			if !errors.As(err, &se) {
				t.Fatalf("error = %v, want *SchemaValidationError", err)
			}
			if se.Field != tt.field {
				t.Errorf("Field = %q, want %q", se.Field, tt.field)
			}
		})
	}
}
