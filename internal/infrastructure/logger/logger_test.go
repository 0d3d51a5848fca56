package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	for _, env := range []string{"development", "production", ""} {
		t.Run(env, func(t *testing.T) {
			l, err := New(env)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if l == nil {
				t.Fatalf("expected logger")
			}
			production := !l.Core().Enabled(zapcore.DebugLevel)
			if env == "production" && !production {
				t.Fatalf("production logger must not log debug")
			}
			if env != "production" && production {
				t.Fatalf("development logger must log debug")
			}
		})
	}
}
