// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"testing"
)

func TestFlexStringUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  FlexString
	}{
		{"string", `"3"`, "3"},
		{"integer", `3`, "3"},
		{"float", `2.5`, "2.5"},
		{"null", `null`, ""},
		{"empty string", `""`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got FlexString
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Unmarshal(%s) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFlexStringRejectsObjects(t *testing.T) {
	var got FlexString
	if err := json.Unmarshal([]byte(`{"a":1}`), &got); err == nil {
		t.Error("expected error for object value")
	}
}

func TestAnswerMarshalsValueAsString(t *testing.T) {
	var a Answer
	if err := json.Unmarshal([]byte(`{"teamId":"t1","value":2}`), &a); err != nil {
		t.Fatal(err)
	}

	out, err := json.Marshal(a)
	if err != nil {
		t.Fatal(err)
	}

	expected := `{"teamId":"t1","value":"2"}`
	if string(out) != expected {
		t.Errorf("expected %s, got %s", expected, out)
	}
}

func TestStageDisplayName(t *testing.T) {
	tests := []struct {
		stage Stage
		want  string
	}{
		{Stage{Number: "1", Name: "Sprint"}, "1. Sprint"},
		{Stage{Name: "Relay"}, "Relay"},
	}

	for _, tt := range tests {
		if got := tt.stage.DisplayName(); got != tt.want {
			t.Errorf("DisplayName() = %q, want %q", got, tt.want)
		}
	}
}
