package logger

import "testing"

type store struct{}

type handlerFunc func()

func TestNameOf(t *testing.T) {
	const pkg = "github.com/philipp01105/namedlog/logger"
	tests := []struct {
		name string
		v    interface{}
		want string
	}{
		{"value", store{}, pkg + ".store"},
		{"pointer", &store{}, pkg + ".store"},
		{"nil typed pointer", (*store)(nil), pkg + ".store"},
		{"func type", handlerFunc(nil), pkg + ".handlerFunc"},
		{"builtin", 42, "int"},
		{"unnamed", []string{}, "[]string"},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NameOf(tt.v); got != tt.want {
				t.Errorf("NameOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestForValue(t *testing.T) {
	reg := NewRegistry(InfoLevel)
	a := reg.ForValue(&store{})
	b := reg.ForValue(store{})
	if a != b {
		t.Error("values of the same type share one logger")
	}
	if a.Name() != "github.com/philipp01105/namedlog/logger.store" {
		t.Errorf("unexpected name %q", a.Name())
	}
}
