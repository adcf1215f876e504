package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	Init()
	if Log == nil {
		t.Fatal("Init must set the global logger")
	}
	if !Log.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("default level must enable info")
	}
	Sync()
}

func TestInitLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	Init()
	if Log.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("LOG_LEVEL=warn must disable info")
	}
	if !Log.Core().Enabled(zapcore.WarnLevel) {
		t.Fatal("LOG_LEVEL=warn must enable warn")
	}
}

func TestInitIgnoresBadLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	Init()
	if Log == nil || !Log.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("unknown LOG_LEVEL must fall back to info")
	}
}

func TestSyncWithoutInit(t *testing.T) {
	prev := Log
	defer func() { Log = prev }()
	Log = nil
	Sync()
}
