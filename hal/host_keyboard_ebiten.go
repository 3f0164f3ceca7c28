//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hostKeyBinding maps a PC key to a calculator key. Bindings marked typed
// deliver their event through the text input path instead, so a digit
// key does not produce two events.
type hostKeyBinding struct {
	pc    ebiten.Key
	key   Key
	event Event
	typed bool
}

var hostKeyBindings = []hostKeyBinding{
	{pc: ebiten.KeyArrowLeft, key: KeyLeft, event: EventLeft},
	{pc: ebiten.KeyArrowUp, key: KeyUp, event: EventUp},
	{pc: ebiten.KeyArrowDown, key: KeyDown, event: EventDown},
	{pc: ebiten.KeyArrowRight, key: KeyRight, event: EventRight},
	{pc: ebiten.KeyEnter, key: KeyOK, event: EventOK},
	{pc: ebiten.KeyNumpadEnter, key: KeyEXE, event: EventEXE},
	{pc: ebiten.KeyEscape, key: KeyBack, event: EventBack},
	{pc: ebiten.KeyHome, key: KeyHome, event: EventNone},
	{pc: ebiten.KeyEnd, key: KeyOnOff, event: EventNone},
	{pc: ebiten.KeyBackspace, key: KeyBackspace, event: EventBackspace},
	{pc: ebiten.KeyShiftLeft, key: KeyShift, event: EventShift},
	{pc: ebiten.KeyAltLeft, key: KeyAlpha, event: EventAlpha},
	{pc: ebiten.KeyTab, key: KeyToolbox, event: EventToolbox},
	{pc: ebiten.KeyDigit0, key: KeyZero, typed: true},
	{pc: ebiten.KeyDigit1, key: KeyOne, typed: true},
	{pc: ebiten.KeyDigit2, key: KeyTwo, typed: true},
	{pc: ebiten.KeyDigit3, key: KeyThree, typed: true},
	{pc: ebiten.KeyDigit4, key: KeyFour, typed: true},
	{pc: ebiten.KeyDigit5, key: KeyFive, typed: true},
	{pc: ebiten.KeyDigit6, key: KeySix, typed: true},
	{pc: ebiten.KeyDigit7, key: KeySeven, typed: true},
	{pc: ebiten.KeyDigit8, key: KeyEight, typed: true},
	{pc: ebiten.KeyDigit9, key: KeyNine, typed: true},
	{pc: ebiten.KeyMinus, key: KeyMinus, typed: true},
	{pc: ebiten.KeyNumpadAdd, key: KeyPlus, typed: true},
	{pc: ebiten.KeyNumpadMultiply, key: KeyMultiplication, typed: true},
	{pc: ebiten.KeySlash, key: KeyDivision, typed: true},
	{pc: ebiten.KeyPeriod, key: KeyDot, typed: true},
	{pc: ebiten.KeyComma, key: KeyComma, typed: true},
	{pc: ebiten.KeyBracketLeft, key: KeyLeftParenthesis, typed: true},
	{pc: ebiten.KeyBracketRight, key: KeyRightParenthesis, typed: true},
}

func (k *hostKeyboard) poll() {
	var bits uint64
	for _, b := range hostKeyBindings {
		if ebiten.IsKeyPressed(b.pc) {
			bits |= 1 << uint(b.key)
		}
		if !b.typed && b.event != EventNone && inpututil.IsKeyJustPressed(b.pc) {
			k.post(b.event)
		}
	}

	k.mu.Lock()
	k.bits = bits
	k.mu.Unlock()

	for _, r := range ebiten.AppendInputChars(nil) {
		if e, ok := EventForRune(r); ok {
			k.post(e)
		}
	}
}
