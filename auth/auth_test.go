// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestGenerateSubmissionToken(t *testing.T) {
	// Test basic generation
	token, err := GenerateSubmissionToken()
	if err != nil {
		t.Fatalf("GenerateSubmissionToken() error = %v", err)
	}

	if token == "" {
		t.Error("GenerateSubmissionToken() returned empty string")
	}

	// Should be URL-safe (no padding, no path separators)
	if strings.ContainsAny(token, "=/+") {
		t.Errorf("GenerateSubmissionToken() contains non URL-safe characters: %s", token)
	}

	// 24 bytes encode to 32 characters
	if len(token) != 32 {
		t.Errorf("GenerateSubmissionToken() length = %d, want 32", len(token))
	}

	// Test randomness - should not produce duplicates
	tokens := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateSubmissionToken()
		if err != nil {
			t.Fatalf("GenerateSubmissionToken() error on iteration %d: %v", i, err)
		}
		if tokens[token] {
			t.Errorf("GenerateSubmissionToken() produced duplicate token: %s", token)
		}
		tokens[token] = true
	}
}

func TestNewID(t *testing.T) {
	id := NewID()

	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("NewID() returned invalid UUID %q: %v", id, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("NewID() version = %d, want 7", parsed.Version())
	}

	if NewID() == id {
		t.Error("NewID() produced duplicate IDs")
	}
}
