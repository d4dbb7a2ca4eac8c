package mode

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a switch is not allowed from the
// current mode.
var ErrInvalidTransition = errors.New("invalid mode transition")

// transitions lists the modes reachable from each mode.
var transitions = map[Mode][]Mode{
	Write:   {Edit, Menu},
	Edit:    {Write, Menu},
	Menu:    {Write, Edit, Console},
	Console: {Write},
}

// ChangeCallback is called after the mode changes.
type ChangeCallback func(from, to Mode)

// Controller holds the active mode and the action pending in Console mode.
type Controller struct {
	current   Mode
	previous  Mode
	pending   Action
	callbacks []ChangeCallback
}

// NewController creates a controller in Write mode.
func NewController() *Controller {
	return &Controller{current: Write, previous: Write}
}

// Current returns the active mode.
func (c *Controller) Current() Mode {
	return c.current
}

// Previous returns the mode active before the last switch.
func (c *Controller) Previous() Mode {
	return c.previous
}

// Is reports whether m is the active mode.
func (c *Controller) Is(m Mode) bool {
	return c.current == m
}

// Pending returns the action awaiting console input.
func (c *Controller) Pending() Action {
	return c.pending
}

// CanSwitch reports whether the controller may switch to m.
func (c *Controller) CanSwitch(to Mode) bool {
	for _, allowed := range transitions[c.current] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Switch changes the active mode. Leaving Console clears the pending action.
func (c *Controller) Switch(to Mode) error {
	if !c.CanSwitch(to) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, c.current, to)
	}

	from := c.current
	c.previous = from
	c.current = to
	if to != Console {
		c.pending = ActionNone
	}

	for _, cb := range c.callbacks {
		if cb != nil {
			cb(from, to)
		}
	}
	return nil
}

// ToggleEdit switches Write to Edit and Edit back to Write. From Menu it
// closes the menu and enters Edit.
func (c *Controller) ToggleEdit() error {
	if c.current == Edit {
		return c.Switch(Write)
	}
	return c.Switch(Edit)
}

// ToggleMenu opens the menu from Write or Edit and closes it to Write.
func (c *Controller) ToggleMenu() error {
	if c.current == Menu {
		return c.Switch(Write)
	}
	return c.Switch(Menu)
}

// EnterConsole switches to Console with the action to run on confirm.
func (c *Controller) EnterConsole(action Action) error {
	if action == ActionNone {
		return fmt.Errorf("%w: console needs a pending action", ErrInvalidTransition)
	}
	if err := c.Switch(Console); err != nil {
		return err
	}
	c.pending = action
	return nil
}

// Finish returns to Write mode from any other mode.
func (c *Controller) Finish() error {
	return c.Switch(Write)
}

// OnChange registers a callback for mode changes.
// Returns a function to unregister the callback.
func (c *Controller) OnChange(callback ChangeCallback) func() {
	c.callbacks = append(c.callbacks, callback)
	index := len(c.callbacks) - 1

	return func() {
		// Remove callback by setting to nil (preserves indices)
		if index < len(c.callbacks) {
			c.callbacks[index] = nil
		}
	}
}
