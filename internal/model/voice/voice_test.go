package voice

import "testing"

func TestResolveKnownPreset(t *testing.T) {
	registry := NewRegistry(Seed())

	got := registry.Resolve("Bubbly")
	if got.Name != "Gigi" {
		t.Fatalf("expected Gigi for Bubbly, got %s", got.Name)
	}
}

func TestResolveFallsBackToDefault(t *testing.T) {
	registry := NewRegistry(Seed())

	for _, id := range []string{"", "unknown"} {
		got := registry.Resolve(id)
		if got.Name != "Lily" {
			t.Fatalf("Resolve(%q) should fall back to Lily, got %s", id, got.Name)
		}
	}
}

func TestResolveID(t *testing.T) {
	registry := NewRegistry(Seed())

	if got := registry.ResolveID("Rational"); got != "IKne3meq5aSn9XLyUdCD" {
		t.Fatalf("unexpected voice id: %s", got)
	}
}
