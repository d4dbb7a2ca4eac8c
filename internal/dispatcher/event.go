package dispatcher

import (
	"fmt"

	"github.com/dshills/picoterm/internal/input/key"
)

// EventType identifies the kind of event being dispatched.
type EventType uint8

const (
	// EventKey is a key press.
	EventKey EventType = iota
	// EventWheel is a mouse wheel notch.
	EventWheel
	// EventResize is a terminal size change.
	EventResize
	// EventFocus is a terminal focus change.
	EventFocus
	// EventDiskChange reports that the open file changed on disk.
	EventDiskChange
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventKey:
		return "key"
	case EventWheel:
		return "wheel"
	case EventResize:
		return "resize"
	case EventFocus:
		return "focus"
	case EventDiskChange:
		return "disk-change"
	default:
		return fmt.Sprintf("event(%d)", t)
	}
}

// Event is a single input to Dispatch.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Event

	// Wheel is -1 for a notch up and +1 for a notch down.
	Wheel int

	// Width and Height are the new screen size for EventResize.
	Width  int
	Height int

	// Focused is the new focus state for EventFocus.
	Focused bool

	// Path is the changed file for EventDiskChange.
	Path string
}

// KeyEvent creates a key press event.
func KeyEvent(k key.Event) Event {
	return Event{Type: EventKey, Key: k}
}

// WheelEvent creates a mouse wheel event.
func WheelEvent(delta int) Event {
	return Event{Type: EventWheel, Wheel: delta}
}

// ResizeEvent creates a resize event.
func ResizeEvent(width, height int) Event {
	return Event{Type: EventResize, Width: width, Height: height}
}

// FocusEvent creates a focus change event.
func FocusEvent(focused bool) Event {
	return Event{Type: EventFocus, Focused: focused}
}

// DiskChangeEvent creates a disk change event for path.
func DiskChangeEvent(path string) Event {
	return Event{Type: EventDiskChange, Path: path}
}

// String returns a debug representation of the event.
func (e Event) String() string {
	switch e.Type {
	case EventKey:
		return "key " + e.Key.String()
	case EventWheel:
		return fmt.Sprintf("wheel %+d", e.Wheel)
	case EventResize:
		return fmt.Sprintf("resize %dx%d", e.Width, e.Height)
	case EventFocus:
		return fmt.Sprintf("focus %t", e.Focused)
	case EventDiskChange:
		return "disk-change " + e.Path
	default:
		return e.Type.String()
	}
}
