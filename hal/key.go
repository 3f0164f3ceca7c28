package hal

import "fmt"

// Key is a physical key. Values are the firmware scan codes; the gaps are
// part of the contract.
type Key uint8

const (
	KeyLeft             Key = 0
	KeyUp               Key = 1
	KeyDown             Key = 2
	KeyRight            Key = 3
	KeyOK               Key = 4
	KeyBack             Key = 5
	KeyHome             Key = 6
	KeyOnOff            Key = 8
	KeyShift            Key = 12
	KeyAlpha            Key = 13
	KeyXNT              Key = 14
	KeyVar              Key = 15
	KeyToolbox          Key = 16
	KeyBackspace        Key = 17
	KeyExp              Key = 18
	KeyLn               Key = 19
	KeyLog              Key = 20
	KeyImaginary        Key = 21
	KeyComma            Key = 22
	KeyPower            Key = 23
	KeySine             Key = 24
	KeyCosine           Key = 25
	KeyTangent          Key = 26
	KeyPi               Key = 27
	KeySqrt             Key = 28
	KeySquare           Key = 29
	KeySeven            Key = 30
	KeyEight            Key = 31
	KeyNine             Key = 32
	KeyLeftParenthesis  Key = 33
	KeyRightParenthesis Key = 34
	KeyFour             Key = 36
	KeyFive             Key = 37
	KeySix              Key = 38
	KeyMultiplication   Key = 39
	KeyDivision         Key = 40
	KeyOne              Key = 42
	KeyTwo              Key = 43
	KeyThree            Key = 44
	KeyPlus             Key = 45
	KeyMinus            Key = 46
	KeyZero             Key = 48
	KeyDot              Key = 49
	KeyEE               Key = 50
	KeyAns              Key = 51
	KeyEXE              Key = 52
)

// Keys lists every key in scan-code order.
var Keys = []Key{
	KeyLeft, KeyUp, KeyDown, KeyRight, KeyOK, KeyBack, KeyHome, KeyOnOff,
	KeyShift, KeyAlpha, KeyXNT, KeyVar, KeyToolbox, KeyBackspace,
	KeyExp, KeyLn, KeyLog, KeyImaginary, KeyComma, KeyPower,
	KeySine, KeyCosine, KeyTangent, KeyPi, KeySqrt, KeySquare,
	KeySeven, KeyEight, KeyNine, KeyLeftParenthesis, KeyRightParenthesis,
	KeyFour, KeyFive, KeySix, KeyMultiplication, KeyDivision,
	KeyOne, KeyTwo, KeyThree, KeyPlus, KeyMinus,
	KeyZero, KeyDot, KeyEE, KeyAns, KeyEXE,
}

var keyNames = map[Key]string{
	KeyLeft: "Left", KeyUp: "Up", KeyDown: "Down", KeyRight: "Right",
	KeyOK: "OK", KeyBack: "Back", KeyHome: "Home", KeyOnOff: "OnOff",
	KeyShift: "Shift", KeyAlpha: "Alpha", KeyXNT: "XNT", KeyVar: "Var",
	KeyToolbox: "Toolbox", KeyBackspace: "Backspace",
	KeyExp: "Exp", KeyLn: "Ln", KeyLog: "Log", KeyImaginary: "Imaginary",
	KeyComma: "Comma", KeyPower: "Power",
	KeySine: "Sine", KeyCosine: "Cosine", KeyTangent: "Tangent", KeyPi: "Pi",
	KeySqrt: "Sqrt", KeySquare: "Square",
	KeySeven: "Seven", KeyEight: "Eight", KeyNine: "Nine",
	KeyLeftParenthesis: "LeftParenthesis", KeyRightParenthesis: "RightParenthesis",
	KeyFour: "Four", KeyFive: "Five", KeySix: "Six",
	KeyMultiplication: "Multiplication", KeyDivision: "Division",
	KeyOne: "One", KeyTwo: "Two", KeyThree: "Three", KeyPlus: "Plus", KeyMinus: "Minus",
	KeyZero: "Zero", KeyDot: "Dot", KeyEE: "EE", KeyAns: "Ans", KeyEXE: "EXE",
}

// KeyFromCode maps a scan code to its Key. Codes in the firmware gaps and
// past the last key report false.
func KeyFromCode(code uint8) (Key, bool) {
	k := Key(code)
	if _, ok := keyNames[k]; !ok {
		return 0, false
	}
	return k, true
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}

// KeyboardState is one keyboard scan. Bit n is set while the key with scan
// code n is held.
type KeyboardState struct {
	bits uint64
}

// KeyboardStateFromRaw wraps a firmware bitmask.
func KeyboardStateFromRaw(bits uint64) KeyboardState {
	return KeyboardState{bits: bits}
}

// Raw returns the firmware bitmask.
func (s KeyboardState) Raw() uint64 { return s.bits }

// KeyDown reports whether k was held when the snapshot was taken.
func (s KeyboardState) KeyDown(k Key) bool {
	return (s.bits>>uint(k))&1 != 0
}

// Held returns the catalogued keys set in the snapshot, in scan-code order.
func (s KeyboardState) Held() []Key {
	var out []Key
	for _, k := range Keys {
		if s.KeyDown(k) {
			out = append(out, k)
		}
	}
	return out
}

// With returns a copy of s with k marked as held.
func (s KeyboardState) With(k Key) KeyboardState {
	return KeyboardState{bits: s.bits | 1<<uint(k)}
}

// Without returns a copy of s with k released.
func (s KeyboardState) Without(k Key) KeyboardState {
	return KeyboardState{bits: s.bits &^ (1 << uint(k))}
}
