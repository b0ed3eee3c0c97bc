package manifest

import (
	"testing"

	"go.uber.org/zap"
)

func TestRegistry_Register(t *testing.T) {
	registry := NewRegistry(zap.NewNop())

	err := registry.Register(&Manifest{Name: "greet", Version: "1.0.0"})
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	if registry.Count() != 1 {
		t.Errorf("expected count 1, got %d", registry.Count())
	}
}

func TestRegistry_Duplicate(t *testing.T) {
	registry := NewRegistry(zap.NewNop())

	if err := registry.Register(&Manifest{Name: "greet"}); err != nil {
		t.Fatalf("First Register() failed: %v", err)
	}

	err := registry.Register(&Manifest{Name: "greet"})
	if err == nil {
		t.Fatal("Register() should fail for duplicate command")
	}
	if _, ok := err.(*AlreadyRegisteredError); !ok {
		t.Errorf("expected AlreadyRegisteredError, got %T", err)
	}
}

func TestRegistry_Get(t *testing.T) {
	registry := NewRegistry(zap.NewNop())

	if _, ok := registry.Get("greet"); ok {
		t.Error("Get() should return false for unknown command")
	}

	registry.Register(&Manifest{Name: "greet", Version: "1.0.0"})

	m, ok := registry.Get("greet")
	if !ok {
		t.Fatal("Get() should return true for registered command")
	}
	if m.Version != "1.0.0" {
		t.Errorf("version = %q, want 1.0.0", m.Version)
	}
}

func TestRegistry_NamesSorted(t *testing.T) {
	registry := NewRegistry(zap.NewNop())

	registry.Register(&Manifest{Name: "zeta"})
	registry.Register(&Manifest{Name: "alpha"})
	registry.Register(&Manifest{Name: "mid"})

	names := registry.Names()
	want := []string{"alpha", "mid", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names = %v, want %v", names, want)
		}
	}
}

func TestRegistry_Unregister(t *testing.T) {
	registry := NewRegistry(zap.NewNop())

	registry.Register(&Manifest{Name: "greet"})
	registry.Unregister("greet")

	if registry.Count() != 0 {
		t.Errorf("expected count 0 after unregister, got %d", registry.Count())
	}

	// Unregistering an unknown name is a no-op.
	registry.Unregister("absent")
}
