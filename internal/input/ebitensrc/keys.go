package ebitensrc

import (
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/dshills/helios/internal/event"
)

var specialKeys = map[ebiten.Key]event.Key{
	ebiten.KeyEscape:       event.KeyEscape,
	ebiten.KeyEnter:        event.KeyEnter,
	ebiten.KeyNumpadEnter:  event.KeyEnter,
	ebiten.KeyTab:          event.KeyTab,
	ebiten.KeyBackspace:    event.KeyBackspace,
	ebiten.KeyDelete:       event.KeyDelete,
	ebiten.KeyInsert:       event.KeyInsert,
	ebiten.KeyHome:         event.KeyHome,
	ebiten.KeyEnd:          event.KeyEnd,
	ebiten.KeyPageUp:       event.KeyPageUp,
	ebiten.KeyPageDown:     event.KeyPageDown,
	ebiten.KeyArrowUp:      event.KeyUp,
	ebiten.KeyArrowDown:    event.KeyDown,
	ebiten.KeyArrowLeft:    event.KeyLeft,
	ebiten.KeyArrowRight:   event.KeyRight,
	ebiten.KeyF1:           event.KeyF1,
	ebiten.KeyF2:           event.KeyF2,
	ebiten.KeyF3:           event.KeyF3,
	ebiten.KeyF4:           event.KeyF4,
	ebiten.KeyF5:           event.KeyF5,
	ebiten.KeyF6:           event.KeyF6,
	ebiten.KeyF7:           event.KeyF7,
	ebiten.KeyF8:           event.KeyF8,
	ebiten.KeyF9:           event.KeyF9,
	ebiten.KeyF10:          event.KeyF10,
	ebiten.KeyF11:          event.KeyF11,
	ebiten.KeyF12:          event.KeyF12,
	ebiten.KeySpace:        ' ',
	ebiten.KeyMinus:        '-',
	ebiten.KeyEqual:        '=',
	ebiten.KeyComma:        ',',
	ebiten.KeyPeriod:       '.',
	ebiten.KeySlash:        '/',
	ebiten.KeySemicolon:    ';',
	ebiten.KeyQuote:        '\'',
	ebiten.KeyBracketLeft:  '[',
	ebiten.KeyBracketRight: ']',
	ebiten.KeyBackslash:    '\\',
	ebiten.KeyBackquote:    '`',
}

// convertKey maps an ebiten key to a key code. Letters map to their lower
// case rune and digits to theirs; modifier keys map to KeyNone.
func convertKey(k ebiten.Key) event.Key {
	if key, ok := specialKeys[k]; ok {
		return key
	}

	name := k.String()
	if len(name) == 1 && name[0] >= 'A' && name[0] <= 'Z' {
		return event.KeyFromRune(unicode.ToLower(rune(name[0])))
	}
	if digit, ok := strings.CutPrefix(name, "Digit"); ok && len(digit) == 1 {
		return event.KeyFromRune(rune(digit[0]))
	}
	return event.KeyNone
}
