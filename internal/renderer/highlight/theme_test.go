package highlight

import (
	"errors"
	"testing"

	"github.com/dshills/picoterm/internal/renderer/core"
)

func TestThemeByName(t *testing.T) {
	for _, name := range ThemeNames() {
		th, err := ThemeByName(name)
		if err != nil {
			t.Fatalf("ThemeByName(%q) failed: %v", name, err)
		}
		if th.Name != name {
			t.Errorf("expected name %q, got %q", name, th.Name)
		}
	}

	if _, err := ThemeByName("neon"); !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("expected ErrUnknownTheme, got %v", err)
	}
}

func TestTheme1KeywordColor(t *testing.T) {
	th := Theme1()

	want := core.ColorFromRGB(180, 105, 184)
	if got := th.SpanStyle(SpanKeyword).Foreground; got != want {
		t.Errorf("expected keyword color %s, got %s", want, got)
	}
	if th.SpanStyle(SpanPlain) != th.Style(ElementText) {
		t.Error("plain spans should use the text style")
	}
}

func TestThemeDefinesEveryElement(t *testing.T) {
	for _, name := range ThemeNames() {
		th, _ := ThemeByName(name)
		for e := ElementText; e <= ElementCursorEdit; e++ {
			if _, ok := th.styles[e]; !ok {
				t.Errorf("%s: element %d has no style", name, e)
			}
		}
	}
}

func TestThemeUnknownElementFallsBack(t *testing.T) {
	th := Theme2()
	if th.Style(Element(200)) != th.Style(ElementText) {
		t.Error("unknown element should use the text style")
	}
}

func TestThemeCurrentGutterTinted(t *testing.T) {
	for _, name := range ThemeNames() {
		th, _ := ThemeByName(name)
		gutter := th.Style(ElementGutter).Background
		current := th.Style(ElementGutterCurrent).Background
		if current == gutter {
			t.Errorf("%s: current line number background should differ from the gutter", name)
		}
	}
}
