package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/picoterm/internal/renderer/core"
)

// Terminal implements Backend using tcell for terminal output.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen creates a terminal backend around an existing
// screen, such as a tcell simulation screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.SetStyle(tcell.StyleDefault)
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	if cell.IsContinuation() {
		// tcell fills the trailing half of wide clusters itself.
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	mainc, combc := splitCluster(cell.Content)
	t.screen.SetContent(x, y, mainc, combc, convertStyle(cell.Style))
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

func (t *Terminal) PollEvent() Event {
	ev := t.screen.PollEvent()
	if ev == nil {
		return Event{Type: EventClosed}
	}
	return convertEvent(ev)
}

// PostEvent queues an event. Key events are converted to tcell key events;
// every other event travels as an interrupt whose payload is the event.
func (t *Terminal) PostEvent(event Event) error {
	var ev tcell.Event
	if event.Type == EventKey {
		ev = tcell.NewEventKey(convertToTcellKey(event), event.Rune, convertToTcellMod(event.Mod))
	} else {
		ev = tcell.NewEventInterrupt(event)
	}
	return t.screen.PostEvent(ev)
}

func (t *Terminal) EnableMouse() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.EnableMouse(tcell.MouseButtonEvents)
}

func (t *Terminal) EnableFocus() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.EnableFocus()
}

// splitCluster splits a grapheme cluster into its base rune and combining
// runes. An empty cluster renders as a space.
func splitCluster(cluster string) (rune, []rune) {
	runes := []rune(cluster)
	if len(runes) == 0 {
		return ' ', nil
	}
	if runes[0] < ' ' || runes[0] == 0x7F {
		runes[0] = '?'
	}
	return runes[0], runes[1:]
}

// convertStyle converts our Style to tcell.Style.
func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault

	if !s.Foreground.IsDefault() {
		style = style.Foreground(tcell.NewRGBColor(int32(s.Foreground.R), int32(s.Foreground.G), int32(s.Foreground.B)))
	}
	if !s.Background.IsDefault() {
		style = style.Background(tcell.NewRGBColor(int32(s.Background.R), int32(s.Background.G), int32(s.Background.B)))
	}

	if s.Attributes.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if s.Attributes.Has(core.AttrDim) {
		style = style.Dim(true)
	}
	if s.Attributes.Has(core.AttrItalic) {
		style = style.Italic(true)
	}
	if s.Attributes.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attributes.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}

	return style
}

// convertEvent converts tcell events to our Event type.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		key, r, mod := convertKey(e.Key(), e.Rune())
		return Event{
			Type: EventKey,
			Key:  key,
			Rune: r,
			Mod:  mod | convertMod(e.Modifiers()),
		}

	case *tcell.EventMouse:
		x, y := e.Position()
		return Event{
			Type:        EventMouse,
			MouseX:      x,
			MouseY:      y,
			MouseButton: convertMouseButton(e.Buttons()),
			Mod:         convertMod(e.Modifiers()),
		}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{
			Type:   EventResize,
			Width:  w,
			Height: h,
		}

	case *tcell.EventFocus:
		return Event{
			Type:    EventFocus,
			Focused: e.Focused,
		}

	case *tcell.EventInterrupt:
		if posted, ok := e.Data().(Event); ok {
			return posted
		}
		return Event{Type: EventInterrupt, Data: e.Data()}

	default:
		return Event{Type: EventNone}
	}
}

// convertKey converts a tcell key to our Key, rune and any modifier
// implied by the key code itself.
func convertKey(k tcell.Key, r rune) (Key, rune, ModMask) {
	switch k {
	case tcell.KeyRune:
		return KeyRune, r, ModNone
	case tcell.KeyEscape:
		return KeyEscape, 0, ModNone
	case tcell.KeyEnter:
		return KeyEnter, 0, ModNone
	case tcell.KeyTab:
		return KeyTab, 0, ModNone
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace, 0, ModNone
	case tcell.KeyDelete:
		return KeyDelete, 0, ModNone
	case tcell.KeyInsert:
		return KeyInsert, 0, ModNone
	case tcell.KeyHome:
		return KeyHome, 0, ModNone
	case tcell.KeyEnd:
		return KeyEnd, 0, ModNone
	case tcell.KeyPgUp:
		return KeyPageUp, 0, ModNone
	case tcell.KeyPgDn:
		return KeyPageDown, 0, ModNone
	case tcell.KeyUp:
		return KeyUp, 0, ModNone
	case tcell.KeyDown:
		return KeyDown, 0, ModNone
	case tcell.KeyLeft:
		return KeyLeft, 0, ModNone
	case tcell.KeyRight:
		return KeyRight, 0, ModNone
	}

	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return KeyF1 + Key(k-tcell.KeyF1), 0, ModNone
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return KeyRune, 'a' + rune(k-tcell.KeyCtrlA), ModCtrl
	}
	return KeyNone, 0, ModNone
}

// convertToTcellKey converts a key event back to a tcell key.
func convertToTcellKey(ev Event) tcell.Key {
	switch ev.Key {
	case KeyRune:
		if ev.Mod.Has(ModCtrl) && ev.Rune >= 'a' && ev.Rune <= 'z' {
			return tcell.KeyCtrlA + tcell.Key(ev.Rune-'a')
		}
		return tcell.KeyRune
	case KeyEscape:
		return tcell.KeyEscape
	case KeyEnter:
		return tcell.KeyEnter
	case KeyTab:
		return tcell.KeyTab
	case KeyBackspace:
		return tcell.KeyBackspace2
	case KeyDelete:
		return tcell.KeyDelete
	case KeyInsert:
		return tcell.KeyInsert
	case KeyHome:
		return tcell.KeyHome
	case KeyEnd:
		return tcell.KeyEnd
	case KeyPageUp:
		return tcell.KeyPgUp
	case KeyPageDown:
		return tcell.KeyPgDn
	case KeyUp:
		return tcell.KeyUp
	case KeyDown:
		return tcell.KeyDown
	case KeyLeft:
		return tcell.KeyLeft
	case KeyRight:
		return tcell.KeyRight
	}
	if ev.Key >= KeyF1 && ev.Key <= KeyF12 {
		return tcell.KeyF1 + tcell.Key(ev.Key-KeyF1)
	}
	return tcell.KeyRune
}

// convertMod converts tcell modifier mask to our ModMask.
func convertMod(m tcell.ModMask) ModMask {
	var result ModMask
	if m&tcell.ModShift != 0 {
		result |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= ModMeta
	}
	return result
}

// convertToTcellMod converts our ModMask to tcell.ModMask.
func convertToTcellMod(m ModMask) tcell.ModMask {
	var result tcell.ModMask
	if m&ModShift != 0 {
		result |= tcell.ModShift
	}
	if m&ModCtrl != 0 {
		result |= tcell.ModCtrl
	}
	if m&ModAlt != 0 {
		result |= tcell.ModAlt
	}
	if m&ModMeta != 0 {
		result |= tcell.ModMeta
	}
	return result
}

// convertMouseButton converts tcell button mask to our MouseButton.
func convertMouseButton(b tcell.ButtonMask) MouseButton {
	switch {
	case b&tcell.Button1 != 0:
		return MouseLeft
	case b&tcell.Button2 != 0:
		return MouseMiddle
	case b&tcell.Button3 != 0:
		return MouseRight
	case b&tcell.WheelUp != 0:
		return MouseWheelUp
	case b&tcell.WheelDown != 0:
		return MouseWheelDown
	default:
		return MouseNone
	}
}
