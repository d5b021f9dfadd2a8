package logger

import "testing"

type stubLevelProvider struct {
	level string
}

func (s stubLevelProvider) MinLogLevel() string {
	return s.level
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  int
	}{
		{"Debug", "debug", levelDebug},
		{"Info", "info", levelInfo},
		{"Warning", "warning", levelWarning},
		{"WarnAlias", "warn", levelWarning},
		{"Error", "error", levelError},
		{"Empty", "", levelInfo},
		{"Unknown", "loud", levelInfo},
		{"CaseInsensitive", "DEBUG", levelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseLevel(tt.level); got != tt.want {
				t.Errorf("parseLevel(%q) = %d, want %d", tt.level, got, tt.want)
			}
		})
	}
}

func TestNewLoggerLevelGate(t *testing.T) {
	if got := NewLogger(stubLevelProvider{"debug"}, "test").minLevel; got != levelDebug {
		t.Errorf("minLevel = %d, want %d", got, levelDebug)
	}
	if got := NewLogger(nil, "test").minLevel; got != levelInfo {
		t.Errorf("minLevel with no provider = %d, want %d", got, levelInfo)
	}
	if got := NewLogger(42, "test").minLevel; got != levelInfo {
		t.Errorf("minLevel with a non-provider = %d, want %d", got, levelInfo)
	}
}
