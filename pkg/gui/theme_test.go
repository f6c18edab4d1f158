package gui

import (
	"encoding/json"
	"testing"
)

func TestThemeHexRoundTrip(t *testing.T) {
	// Palette indices come back as RGB colors, so compare the hex forms.
	// ColorDefault is the interesting case: it has no real hex value and
	// must not turn into black.
	hex := ThemeBasic.Hex()
	back := hex.Theme().Hex()
	if back != hex {
		t.Errorf("round trip changed the theme:\n got %+v\nwant %+v", back, hex)
	}
	if hex.Input != "#0" {
		t.Errorf("ColorDefault encoded as %q, want \"#0\"", hex.Input)
	}
}

func TestImportThemes(t *testing.T) {
	data, err := json.Marshal([]ThemeHex{ThemeBasic.Hex()})
	if err != nil {
		t.Fatal(err)
	}
	var themes []ThemeHex
	if err := json.Unmarshal(data, &themes); err != nil {
		t.Fatal(err)
	}

	theme, err := ImportThemes("basic", themes)
	if err != nil {
		t.Fatalf("ImportThemes: %v", err)
	}
	if theme.Hex() != ThemeBasic.Hex() {
		t.Error("imported theme differs from the original")
	}

	if _, err := ImportThemes("no-such-theme", themes); err == nil {
		t.Error("importing a missing theme should fail")
	}
}
