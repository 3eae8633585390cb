package theme

import "testing"

func TestKnown(t *testing.T) {
	for _, name := range Names() {
		if !Known(name) {
			t.Fatalf("catalog theme %s should be known", name)
		}
	}
	if Known("neon") {
		t.Fatal("neon is not a catalog theme")
	}
}

func TestPaletteFallsBackToDefault(t *testing.T) {
	if got := Palette("neon"); got != Palette(Default) {
		t.Fatalf("unknown theme should use the default palette, got %+v", got)
	}
}

func TestClassicAccent(t *testing.T) {
	if got := Palette("classic").Accent; got != "#FF8FA3" {
		t.Fatalf("unexpected classic accent: %s", got)
	}
}
