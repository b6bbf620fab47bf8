package styles

import "testing"

func TestApply(t *testing.T) {
	defer Apply(Dark)

	Apply(Light)
	if string(TextPrimary) != LightTheme.Colors.TextPrimary {
		t.Errorf("TextPrimary = %q, want %q", TextPrimary, LightTheme.Colors.TextPrimary)
	}

	Apply(Dark)
	if string(BgPrimary) != DarkTheme.Colors.BgPrimary {
		t.Errorf("BgPrimary = %q, want %q", BgPrimary, DarkTheme.Colors.BgPrimary)
	}
}

func TestGetTheme_UnknownFallsBackToDark(t *testing.T) {
	if got := GetTheme("solarized"); got.Name != Dark || got.DisplayName != "Dark" {
		t.Errorf("GetTheme(unknown) = %q/%q, want dark/Dark", got.Name, got.DisplayName)
	}
}
