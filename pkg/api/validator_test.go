package api

import (
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "Scout", false},
		{"with spaces", "Dana the Brave", false},
		{"unicode", "Охотник", false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", MaxNameLen+1), true},
		{"max length", strings.Repeat("a", MaxNameLen), false},
		{"control char", "bad\x00name", true},
		{"newline", "two\nlines", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateName(tc.input)
			if tc.wantErr && err == nil {
				t.Errorf("ValidateName(%q) expected error", tc.input)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("ValidateName(%q) unexpected error: %v", tc.input, err)
			}
		})
	}
}
