package mode

import (
	"errors"
	"testing"
)

func TestNewController(t *testing.T) {
	c := NewController()
	if c.Current() != Write {
		t.Errorf("expected Write, got %s", c.Current())
	}
	if c.Pending() != ActionNone {
		t.Errorf("expected no pending action, got %s", c.Pending())
	}
}

func TestToggleEdit(t *testing.T) {
	c := NewController()

	if err := c.ToggleEdit(); err != nil {
		t.Fatalf("ToggleEdit failed: %v", err)
	}
	if !c.Is(Edit) {
		t.Fatalf("expected Edit, got %s", c.Current())
	}
	if err := c.ToggleEdit(); err != nil {
		t.Fatalf("ToggleEdit failed: %v", err)
	}
	if !c.Is(Write) {
		t.Errorf("expected Write, got %s", c.Current())
	}
}

func TestToggleMenu(t *testing.T) {
	for _, start := range []Mode{Write, Edit} {
		t.Run(start.String(), func(t *testing.T) {
			c := NewController()
			if start == Edit {
				c.ToggleEdit()
			}

			if err := c.ToggleMenu(); err != nil || !c.Is(Menu) {
				t.Fatalf("expected Menu, got %s (%v)", c.Current(), err)
			}
			if c.Previous() != start {
				t.Errorf("expected previous %s, got %s", start, c.Previous())
			}
			if err := c.ToggleMenu(); err != nil || !c.Is(Write) {
				t.Errorf("menu toggle should return to Write, got %s (%v)", c.Current(), err)
			}
		})
	}
}

func TestMenuToEdit(t *testing.T) {
	c := NewController()
	c.ToggleMenu()

	if err := c.ToggleEdit(); err != nil {
		t.Fatalf("ToggleEdit from Menu failed: %v", err)
	}
	if !c.Is(Edit) {
		t.Errorf("expected Edit, got %s", c.Current())
	}
}

func TestConsoleFlow(t *testing.T) {
	c := NewController()
	c.ToggleMenu()

	if err := c.EnterConsole(ActionSaveAs); err != nil {
		t.Fatalf("EnterConsole failed: %v", err)
	}
	if !c.Is(Console) || c.Pending() != ActionSaveAs {
		t.Fatalf("expected Console/save-as, got %s/%s", c.Current(), c.Pending())
	}

	if err := c.Finish(); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	if !c.Is(Write) || c.Pending() != ActionNone {
		t.Errorf("expected Write with no pending action, got %s/%s", c.Current(), c.Pending())
	}
}

func TestInvalidTransitions(t *testing.T) {
	tests := []struct {
		name string
		run  func(c *Controller) error
	}{
		{"console from write", func(c *Controller) error { return c.EnterConsole(ActionOpen) }},
		{"console without action", func(c *Controller) error {
			c.ToggleMenu()
			return c.EnterConsole(ActionNone)
		}},
		{"edit from console", func(c *Controller) error {
			c.ToggleMenu()
			c.EnterConsole(ActionOpen)
			return c.ToggleEdit()
		}},
		{"menu from console", func(c *Controller) error {
			c.ToggleMenu()
			c.EnterConsole(ActionOpen)
			return c.ToggleMenu()
		}},
		{"finish from write", func(c *Controller) error { return c.Finish() }},
		{"write to write", func(c *Controller) error { return c.Switch(Write) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController()
			if err := tt.run(c); !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("expected ErrInvalidTransition, got %v", err)
			}
		})
	}
}

func TestFailedSwitchKeepsState(t *testing.T) {
	c := NewController()
	c.ToggleMenu()
	c.EnterConsole(ActionOpen)

	_ = c.ToggleEdit()
	if !c.Is(Console) || c.Pending() != ActionOpen {
		t.Errorf("failed switch changed state to %s/%s", c.Current(), c.Pending())
	}
}

func TestOnChange(t *testing.T) {
	c := NewController()

	var got [][2]Mode
	unregister := c.OnChange(func(from, to Mode) {
		got = append(got, [2]Mode{from, to})
	})

	c.ToggleEdit()
	c.ToggleMenu()
	_ = c.EnterConsole(ActionNone)

	if len(got) != 2 {
		t.Fatalf("expected 2 callbacks, got %d", len(got))
	}
	if got[0] != [2]Mode{Write, Edit} || got[1] != [2]Mode{Edit, Menu} {
		t.Errorf("unexpected transitions %v", got)
	}

	unregister()
	c.ToggleMenu()
	if len(got) != 2 {
		t.Error("callback should not run after unregister")
	}
}

func TestModeStrings(t *testing.T) {
	tests := []struct {
		mode    Mode
		name    string
		display string
	}{
		{Write, "write", "WRITE"},
		{Edit, "edit", "EDIT"},
		{Menu, "menu", "MENU"},
		{Console, "console", "CONSOLE"},
	}
	for _, tt := range tests {
		if tt.mode.String() != tt.name || tt.mode.DisplayName() != tt.display {
			t.Errorf("unexpected names for %d: %s/%s", tt.mode, tt.mode.String(), tt.mode.DisplayName())
		}
	}
	if ActionSaveAs.Prompt() != "Save as: " || ActionOpen.String() != "open" {
		t.Error("unexpected action strings")
	}
}
