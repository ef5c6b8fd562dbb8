package domain_test

import (
	"testing"

	"github.com/front10k/tarrot7/internal/domain"
)

func TestNormalizeText(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"plain string", "hello", "hello"},
		{"trims whitespace", "  hello \n\t", "hello"},
		{"whitespace only", "   ", ""},
		{"empty string", "", ""},
		{"nil", nil, ""},
		{"number", 3.14, ""},
		{"bool", true, ""},
		{"object", map[string]any{"a": 1}, ""},
		{"array", []any{"a"}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := domain.NormalizeText(tc.in); got != tc.want {
				t.Errorf("NormalizeText(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
