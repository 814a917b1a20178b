package config

import "testing"

func TestSplitOrigins(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"single", "https://example.com", 1},
		{"multiple with spaces", "https://a.com, https://b.com ,https://c.com", 3},
		{"trailing comma", "https://a.com,", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitOrigins(tt.in)
			if len(got) != tt.want {
				t.Errorf("splitOrigins(%q) returned %d origins, want %d", tt.in, len(got), tt.want)
			}
			for _, origin := range got {
				if origin == "" {
					t.Error("splitOrigins returned an empty origin")
				}
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("FT_TEST_KEY", "set")
	if got := getEnv("FT_TEST_KEY", "fallback"); got != "set" {
		t.Errorf("getEnv returned %q, want %q", got, "set")
	}
	if got := getEnv("FT_TEST_KEY_MISSING", "fallback"); got != "fallback" {
		t.Errorf("getEnv returned %q, want fallback", got)
	}
}
