package logger

import "testing"

func TestNew(t *testing.T) {
	for _, env := range []string{"production", "local"} {
		l, err := New(env)
		if err != nil {
			t.Fatalf("New(%q): %v", env, err)
		}
		l.Info("hello")
	}
}
