package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{" warn ", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"chatty", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	t.Setenv(LogFileEnvVar, "")

	if err := Initialize(Options{}); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger should be a no-op when no level is configured")
	}
}

func TestInitializeWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "learnquest.log")
	t.Setenv(LogLevelEnvVar, "debug")
	t.Setenv(LogFileEnvVar, path)

	if err := Initialize(Options{}); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	t.Cleanup(func() { SetLogger(nil) })

	LogSectionChange("home", "games")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "Section changed") {
		t.Errorf("log file = %q, want it to contain %q", data, "Section changed")
	}
}

func TestDomainHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	LogCrystalSelected(4, "Розовый кварц", "Анахата", 341.3)
	LogLockedSelection(7, 15)
	LogCelebration("started", 1)
	LogToneSkipped(440, "audio unavailable")

	if got := logs.Len(); got != 4 {
		t.Fatalf("logged %d entries, want 4", got)
	}

	selected := logs.FilterMessage("Crystal selected").All()
	if len(selected) != 1 {
		t.Fatalf("Crystal selected entries = %d, want 1", len(selected))
	}
	if got := selected[0].ContextMap()["chakra"]; got != "Анахата" {
		t.Errorf("chakra field = %v, want Анахата", got)
	}
}
