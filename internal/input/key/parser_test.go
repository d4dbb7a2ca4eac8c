package key

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"a", NewRuneEvent('a', ModNone)},
		{"q", NewRuneEvent('q', ModNone)},
		{"@", NewRuneEvent('@', ModNone)},
		{"+", NewRuneEvent('+', ModNone)},
		{"Space", NewRuneEvent(' ', ModNone)},
		{"Esc", NewSpecialEvent(KeyEscape, ModNone)},
		{"escape", NewSpecialEvent(KeyEscape, ModNone)},
		{"Enter", NewSpecialEvent(KeyEnter, ModNone)},
		{"F2", NewSpecialEvent(KeyF2, ModNone)},
		{"f12", NewSpecialEvent(KeyF12, ModNone)},
		{"PageDown", NewSpecialEvent(KeyPageDown, ModNone)},
		{"Ctrl+S", NewRuneEvent('s', ModCtrl)},
		{"Alt+J", NewRuneEvent('j', ModAlt)},
		{"alt+l", NewRuneEvent('l', ModAlt)},
		{"Ctrl+Shift+P", NewRuneEvent('p', ModCtrl|ModShift)},
		{"Ctrl+Left", NewSpecialEvent(KeyLeft, ModCtrl)},
		{"Ctrl++", NewRuneEvent('+', ModCtrl)},
		{" Alt + I ", NewRuneEvent('i', ModAlt)},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	specs := []string{"", "   ", "Hyper+J", "Ctrl+", "Alt+Foo", "F13", "abc"}

	for _, spec := range specs {
		if _, err := Parse(spec); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("Parse(%q): expected ErrInvalidKey, got %v", spec, err)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustParse("Hyper+X")
}

func TestStringRoundTrip(t *testing.T) {
	specs := []string{"Ctrl+S", "Alt+J", "F2", "Esc", "q", "Space", "Ctrl+Left"}

	for _, spec := range specs {
		ev := MustParse(spec)
		if ev.String() != spec {
			t.Errorf("String() of %q = %q", spec, ev.String())
		}
		again, err := Parse(ev.String())
		if err != nil || again != ev {
			t.Errorf("re-parse of %q gave %+v, %v", ev.String(), again, err)
		}
	}
}
