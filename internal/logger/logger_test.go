package logger

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	for _, env := range []string{"development", "production"} {
		log, err := New(env)
		if err != nil {
			t.Fatalf("New(%q): %v", env, err)
		}
		log.Info("logger smoke test")
	}
}

func TestTruncateForLog(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"short string untouched", "hello", 10, "hello"},
		{"exact limit untouched", "hello", 5, "hello"},
		{"long string truncated", "hello world", 5, "hello..."},
		{"surrounding space trimmed", "  hello  ", 10, "hello"},
		{"zero limit", "hello", 0, ""},
		{"multibyte runes", "áéíóú", 3, "áéí..."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TruncateForLog(tc.in, tc.limit)
			if got != tc.want {
				t.Errorf("TruncateForLog(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
			}
			if tc.limit > 0 && len([]rune(strings.TrimSuffix(got, "..."))) > tc.limit {
				t.Errorf("result exceeds limit: %q", got)
			}
		})
	}
}
