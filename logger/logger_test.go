package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		expected  zapcore.Level
	}{
		{0, zapcore.WarnLevel},
		{1, zapcore.InfoLevel},
		{2, zapcore.DebugLevel},
		{3, zapcore.DebugLevel},
		{7, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		if got := VerbosityToLevel(tt.verbosity); got != tt.expected {
			t.Errorf("VerbosityToLevel(%d) = %v, want %v", tt.verbosity, got, tt.expected)
		}
	}
}

func TestInitialize(t *testing.T) {
	if err := Initialize(true); err != nil {
		t.Fatalf("Initialize(json) failed: %v", err)
	}
	if !JSONOutput {
		t.Error("JSONOutput should be true after Initialize(true)")
	}

	if err := Initialize(false); err != nil {
		t.Fatalf("Initialize(console) failed: %v", err)
	}
	if JSONOutput {
		t.Error("JSONOutput should be false after Initialize(false)")
	}

	// Package-level helpers must not panic regardless of init state.
	Debugw("debug", FieldEvent, EventMissingAtom)
	Infow("info", FieldResname, "ALA")
	Warnw("warn", FieldEvent, EventBadAtomNames)
}

func TestNamed(t *testing.T) {
	if err := Initialize(false); err != nil {
		t.Fatal(err)
	}
	if Named("repair") == nil {
		t.Error("Named returned nil logger")
	}
}
