package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/avray/skiff/internal/input/key"
	"github.com/avray/skiff/internal/renderer/core"
)

// Terminal implements Backend on top of a tcell screen. It is driven
// from the main loop goroutine only.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

func (t *Terminal) Init() error {
	return t.screen.Init()
}

func (t *Terminal) Shutdown() {
	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	t.screen.SetContent(x, y, cell.Rune, nil, convertStyle(cell.Style))
}

func (t *Terminal) GetCell(x, y int) core.Cell {
	mainc, _, style, _ := t.screen.GetContent(x, y)
	return core.Cell{
		Rune:  mainc,
		Width: core.RuneWidth(mainc),
		Style: convertTcellStyle(style),
	}
}

func (t *Terminal) Fill(rect core.ScreenRect, cell core.Cell) {
	style := convertStyle(cell.Style)
	width, height := t.screen.Size()

	for y := rect.Top; y < rect.Bottom && y < height; y++ {
		for x := rect.Left; x < rect.Right && x < width; x++ {
			if x >= 0 && y >= 0 {
				t.screen.SetContent(x, y, cell.Rune, nil, style)
			}
		}
	}
}

func (t *Terminal) Clear() {
	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.screen.HideCursor()
}

func (t *Terminal) PollEvent() Event {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			return Event{Type: EventKey, Key: convertKeyEvent(ev)}
		case *tcell.EventResize:
			w, h := ev.Size()
			return Event{Type: EventResize, Width: w, Height: h}
		case nil:
			// Screen was finalized.
			return Event{Type: EventNone}
		default:
			// Mouse, paste, and focus events are not used.
		}
	}
}

func (t *Terminal) PostEvent(event Event) {
	if event.Type != EventKey {
		return
	}
	k := event.Key
	var tev *tcell.EventKey
	if k.Key == key.KeyRune {
		tev = tcell.NewEventKey(tcell.KeyRune, k.Rune, convertToTcellMod(k.Modifiers))
	} else {
		tev = tcell.NewEventKey(convertToTcellKey(k.Key), 0, convertToTcellMod(k.Modifiers))
	}
	_ = t.screen.PostEvent(tev) // best effort, queue may be full
}

// convertKeyEvent decodes a tcell key event. Control chords arrive from
// tcell as C0 key codes and are normalized back to rune+Ctrl form.
func convertKeyEvent(ev *tcell.EventKey) key.Event {
	mods := convertMod(ev.Modifiers())

	switch k := ev.Key(); k {
	case tcell.KeyRune:
		return key.NewRuneEvent(ev.Rune(), mods)
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods)
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods)
	case tcell.KeyBacktab:
		return key.NewSpecialEvent(key.KeyTab, mods.With(key.ModShift))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods)
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods)
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods)
	case tcell.KeyInsert:
		return key.NewSpecialEvent(key.KeyInsert, mods)
	case tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods)
	case tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods)
	case tcell.KeyPgUp:
		return key.NewSpecialEvent(key.KeyPageUp, mods)
	case tcell.KeyPgDn:
		return key.NewSpecialEvent(key.KeyPageDown, mods)
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods)
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods)
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods)
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods)
	case tcell.KeyF1:
		return key.NewSpecialEvent(key.KeyF1, mods)
	case tcell.KeyF2:
		return key.NewSpecialEvent(key.KeyF2, mods)
	case tcell.KeyF3:
		return key.NewSpecialEvent(key.KeyF3, mods)
	case tcell.KeyF4:
		return key.NewSpecialEvent(key.KeyF4, mods)
	case tcell.KeyF5:
		return key.NewSpecialEvent(key.KeyF5, mods)
	case tcell.KeyF6:
		return key.NewSpecialEvent(key.KeyF6, mods)
	case tcell.KeyF7:
		return key.NewSpecialEvent(key.KeyF7, mods)
	case tcell.KeyF8:
		return key.NewSpecialEvent(key.KeyF8, mods)
	case tcell.KeyF9:
		return key.NewSpecialEvent(key.KeyF9, mods)
	case tcell.KeyF10:
		return key.NewSpecialEvent(key.KeyF10, mods)
	case tcell.KeyF11:
		return key.NewSpecialEvent(key.KeyF11, mods)
	case tcell.KeyF12:
		return key.NewSpecialEvent(key.KeyF12, mods)
	default:
		// Ctrl+letter comes through as the raw C0 code. Enter, Tab,
		// Backspace, and Escape alias into this range but were handled
		// above.
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			r := 'a' + rune(k-tcell.KeyCtrlA)
			return key.NewRuneEvent(r, mods.With(key.ModCtrl))
		}
		if k == tcell.KeyCtrlSpace {
			return key.NewRuneEvent(' ', mods.With(key.ModCtrl))
		}
		return key.NewSpecialEvent(key.KeyNone, mods)
	}
}

// convertToTcellKey maps special keys back to tcell for posting
// synthetic events.
func convertToTcellKey(k key.Key) tcell.Key {
	switch k {
	case key.KeyEscape:
		return tcell.KeyEscape
	case key.KeyEnter:
		return tcell.KeyEnter
	case key.KeyTab:
		return tcell.KeyTab
	case key.KeyBackspace:
		return tcell.KeyBackspace2
	case key.KeyDelete:
		return tcell.KeyDelete
	case key.KeyInsert:
		return tcell.KeyInsert
	case key.KeyHome:
		return tcell.KeyHome
	case key.KeyEnd:
		return tcell.KeyEnd
	case key.KeyPageUp:
		return tcell.KeyPgUp
	case key.KeyPageDown:
		return tcell.KeyPgDn
	case key.KeyUp:
		return tcell.KeyUp
	case key.KeyDown:
		return tcell.KeyDown
	case key.KeyLeft:
		return tcell.KeyLeft
	case key.KeyRight:
		return tcell.KeyRight
	case key.KeyF1:
		return tcell.KeyF1
	case key.KeyF2:
		return tcell.KeyF2
	case key.KeyF3:
		return tcell.KeyF3
	case key.KeyF4:
		return tcell.KeyF4
	case key.KeyF5:
		return tcell.KeyF5
	case key.KeyF6:
		return tcell.KeyF6
	case key.KeyF7:
		return tcell.KeyF7
	case key.KeyF8:
		return tcell.KeyF8
	case key.KeyF9:
		return tcell.KeyF9
	case key.KeyF10:
		return tcell.KeyF10
	case key.KeyF11:
		return tcell.KeyF11
	case key.KeyF12:
		return tcell.KeyF12
	default:
		return tcell.KeyRune
	}
}

// convertMod converts a tcell modifier mask.
func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result = result.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		result = result.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		result = result.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		result = result.With(key.ModMeta)
	}
	return result
}

// convertToTcellMod converts a modifier set to tcell form.
func convertToTcellMod(m key.Modifier) tcell.ModMask {
	var result tcell.ModMask
	if m.HasShift() {
		result |= tcell.ModShift
	}
	if m.HasCtrl() {
		result |= tcell.ModCtrl
	}
	if m.HasAlt() {
		result |= tcell.ModAlt
	}
	if m.HasMeta() {
		result |= tcell.ModMeta
	}
	return result
}

// convertStyle converts a core style to tcell.
func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault

	if !s.Foreground.IsDefault() {
		if s.Foreground.Indexed {
			style = style.Foreground(tcell.PaletteColor(int(s.Foreground.R)))
		} else {
			style = style.Foreground(tcell.NewRGBColor(int32(s.Foreground.R), int32(s.Foreground.G), int32(s.Foreground.B)))
		}
	}
	if !s.Background.IsDefault() {
		if s.Background.Indexed {
			style = style.Background(tcell.PaletteColor(int(s.Background.R)))
		} else {
			style = style.Background(tcell.NewRGBColor(int32(s.Background.R), int32(s.Background.G), int32(s.Background.B)))
		}
	}

	if s.Attributes.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if s.Attributes.Has(core.AttrDim) {
		style = style.Dim(true)
	}
	if s.Attributes.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attributes.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}

	return style
}

// convertTcellStyle converts a tcell style back to core form.
func convertTcellStyle(ts tcell.Style) core.Style {
	fg, bg, attrs := ts.Decompose()

	s := core.Style{
		Foreground: convertTcellColor(fg),
		Background: convertTcellColor(bg),
		Attributes: core.AttrNone,
	}

	if attrs&tcell.AttrBold != 0 {
		s.Attributes |= core.AttrBold
	}
	if attrs&tcell.AttrDim != 0 {
		s.Attributes |= core.AttrDim
	}
	if attrs&tcell.AttrUnderline != 0 {
		s.Attributes |= core.AttrUnderline
	}
	if attrs&tcell.AttrReverse != 0 {
		s.Attributes |= core.AttrReverse
	}

	return s
}

// convertTcellColor converts a tcell color to core form.
func convertTcellColor(tc tcell.Color) core.Color {
	if tc == tcell.ColorDefault {
		return core.ColorDefault
	}
	if tc >= tcell.ColorValid && tc < tcell.ColorIsRGB {
		return core.ColorFromIndex(uint8(tc - tcell.ColorValid))
	}
	// tcell reports components in 0-255 already.
	r, g, b := tc.RGB()
	return core.ColorFromRGB(uint8(r), uint8(g), uint8(b))
}
