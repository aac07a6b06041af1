package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	want := []string{"Noir", "Nightfox", "Kanagawa", "Slate"}
	if len(names) != len(want) {
		t.Fatalf("ThemeNames() returned %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ThemeNames()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Noir"); got != "Nightfox" {
		t.Fatalf("NextTheme(Noir) = %q, want Nightfox", got)
	}
	if got := NextTheme("Slate"); got != "Noir" {
		t.Fatalf("NextTheme(Slate) = %q, want Noir", got)
	}
	if got := NextTheme("unknown"); got != "Noir" {
		t.Fatalf("NextTheme(unknown) = %q, want Noir", got)
	}
}

func TestGetThemeFallsBackToNoir(t *testing.T) {
	if got := GetTheme("missing").Name; got != "Noir" {
		t.Fatalf("GetTheme(missing).Name = %q, want Noir", got)
	}
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		if th.Name != name {
			t.Fatalf("GetTheme(%q).Name = %q", name, th.Name)
		}
		if th.Brand == "" || th.Background == "" || th.Text == "" {
			t.Fatalf("theme %q has empty core colors", name)
		}
	}
}
