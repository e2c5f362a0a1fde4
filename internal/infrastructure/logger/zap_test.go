package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	for _, tc := range []struct {
		level, format string
		wantErr       bool
	}{
		{"info", "json", false},
		{"", "", false},
		{"DEBUG", "console", false},
		{"warning", "json", false},
		{"loud", "json", true},
		{"info", "xml", true},
	} {
		l, err := New(tc.level, tc.format)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("New(%q,%q): want error", tc.level, tc.format)
			}
			continue
		}
		if err != nil || l == nil {
			t.Fatalf("New(%q,%q): %v", tc.level, tc.format, err)
		}
	}
}

func TestParseLevel(t *testing.T) {
	lvl, err := parseLevel("error")
	if err != nil || lvl != zapcore.ErrorLevel {
		t.Fatalf("parseLevel(error) = %v, %v", lvl, err)
	}
}
