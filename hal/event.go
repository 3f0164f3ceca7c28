package hal

import "fmt"

// Event is a logical input event delivered by the firmware queue. Values are
// the firmware event codes; the gaps are part of the contract.
type Event uint16

const (
	EventLeft             Event = 0
	EventUp               Event = 1
	EventDown             Event = 2
	EventRight            Event = 3
	EventOK               Event = 4
	EventBack             Event = 5
	EventShift            Event = 12
	EventAlpha            Event = 13
	EventXNT              Event = 14
	EventVar              Event = 15
	EventToolbox          Event = 16
	EventBackspace        Event = 17
	EventExp              Event = 18
	EventLn               Event = 19
	EventLog              Event = 20
	EventImaginary        Event = 21
	EventComma            Event = 22
	EventPower            Event = 23
	EventSine             Event = 24
	EventCosine           Event = 25
	EventTangent          Event = 26
	EventPi               Event = 27
	EventSqrt             Event = 28
	EventSquare           Event = 29
	EventSeven            Event = 30
	EventEight            Event = 31
	EventNine             Event = 32
	EventLeftParenthesis  Event = 33
	EventRightParenthesis Event = 34
	EventFour             Event = 36
	EventFive             Event = 37
	EventSix              Event = 38
	EventMultiplication   Event = 39
	EventDivision         Event = 40
	EventOne              Event = 42
	EventTwo              Event = 43
	EventThree            Event = 44
	EventPlus             Event = 45
	EventMinus            Event = 46
	EventZero             Event = 48
	EventDot              Event = 49
	EventEE               Event = 50
	EventAns              Event = 51
	EventEXE              Event = 52
	EventShiftLeft        Event = 54
	EventShiftUp          Event = 55
	EventShiftDown        Event = 56
	EventShiftRight       Event = 57
	EventAlphaLock        Event = 67
	EventCut              Event = 68
	EventCopy             Event = 69
	EventPaste            Event = 70
	EventClear            Event = 71
	EventLeftBracket      Event = 72
	EventRightBracket     Event = 73
	EventLeftBrace        Event = 74
	EventRightBrace       Event = 75
	EventUnderscore       Event = 76
	EventSTO              Event = 77
	EventArcsine          Event = 78
	EventArccosine        Event = 79
	EventArctangent       Event = 80
	EventEqual            Event = 81
	EventLower            Event = 82
	EventGreater          Event = 83
	EventColon            Event = 122
	EventSemicolon        Event = 123
	EventDoubleQuotes     Event = 124
	EventPercent          Event = 125
	EventLowerA           Event = 126
	EventLowerB           Event = 127
	EventLowerC           Event = 128
	EventLowerD           Event = 129
	EventLowerE           Event = 130
	EventLowerF           Event = 131
	EventLowerG           Event = 132
	EventLowerH           Event = 133
	EventLowerI           Event = 134
	EventLowerJ           Event = 135
	EventLowerK           Event = 136
	EventLowerL           Event = 137
	EventLowerM           Event = 138
	EventLowerN           Event = 139
	EventLowerO           Event = 140
	EventLowerP           Event = 141
	EventLowerQ           Event = 142
	EventLowerR           Event = 144
	EventLowerS           Event = 145
	EventLowerT           Event = 146
	EventLowerU           Event = 147
	EventLowerV           Event = 148
	EventLowerW           Event = 150
	EventLowerX           Event = 151
	EventLowerY           Event = 152
	EventLowerZ           Event = 153
	EventSpace            Event = 154
	EventQuestion         Event = 156
	EventExclamation      Event = 157
	EventUpperA           Event = 180
	EventUpperB           Event = 181
	EventUpperC           Event = 182
	EventUpperD           Event = 183
	EventUpperE           Event = 184
	EventUpperF           Event = 185
	EventUpperG           Event = 186
	EventUpperH           Event = 187
	EventUpperI           Event = 188
	EventUpperJ           Event = 189
	EventUpperK           Event = 190
	EventUpperL           Event = 191
	EventUpperM           Event = 192
	EventUpperN           Event = 193
	EventUpperO           Event = 194
	EventUpperP           Event = 195
	EventUpperQ           Event = 196
	EventUpperR           Event = 198
	EventUpperS           Event = 199
	EventUpperT           Event = 200
	EventUpperU           Event = 201
	EventUpperV           Event = 202
	EventUpperW           Event = 204
	EventUpperX           Event = 205
	EventUpperY           Event = 206
	EventUpperZ           Event = 207
)

// EventNone is returned alongside false when no catalogued event arrived.
// It is not a firmware code.
const EventNone Event = 0xFFFF

type eventInfo struct {
	name string
	r    rune
}

var events = map[Event]eventInfo{
	EventLeft:             {"Left", 0},
	EventUp:               {"Up", 0},
	EventDown:             {"Down", 0},
	EventRight:            {"Right", 0},
	EventOK:               {"OK", 0},
	EventBack:             {"Back", 0},
	EventShift:            {"Shift", 0},
	EventAlpha:            {"Alpha", 0},
	EventXNT:              {"XNT", 0},
	EventVar:              {"Var", 0},
	EventToolbox:          {"Toolbox", 0},
	EventBackspace:        {"Backspace", 0},
	EventExp:              {"Exp", 0},
	EventLn:               {"Ln", 0},
	EventLog:              {"Log", 0},
	EventImaginary:        {"Imaginary", 0},
	EventComma:            {"Comma", ','},
	EventPower:            {"Power", '^'},
	EventSine:             {"Sine", 0},
	EventCosine:           {"Cosine", 0},
	EventTangent:          {"Tangent", 0},
	EventPi:               {"Pi", 'π'},
	EventSqrt:             {"Sqrt", '√'},
	EventSquare:           {"Square", 0},
	EventSeven:            {"Seven", '7'},
	EventEight:            {"Eight", '8'},
	EventNine:             {"Nine", '9'},
	EventLeftParenthesis:  {"LeftParenthesis", '('},
	EventRightParenthesis: {"RightParenthesis", ')'},
	EventFour:             {"Four", '4'},
	EventFive:             {"Five", '5'},
	EventSix:              {"Six", '6'},
	EventMultiplication:   {"Multiplication", '*'},
	EventDivision:         {"Division", '/'},
	EventOne:              {"One", '1'},
	EventTwo:              {"Two", '2'},
	EventThree:            {"Three", '3'},
	EventPlus:             {"Plus", '+'},
	EventMinus:            {"Minus", '-'},
	EventZero:             {"Zero", '0'},
	EventDot:              {"Dot", '.'},
	EventEE:               {"EE", 0},
	EventAns:              {"Ans", 0},
	EventEXE:              {"EXE", 0},
	EventShiftLeft:        {"ShiftLeft", 0},
	EventShiftUp:          {"ShiftUp", 0},
	EventShiftDown:        {"ShiftDown", 0},
	EventShiftRight:       {"ShiftRight", 0},
	EventAlphaLock:        {"AlphaLock", 0},
	EventCut:              {"Cut", 0},
	EventCopy:             {"Copy", 0},
	EventPaste:            {"Paste", 0},
	EventClear:            {"Clear", 0},
	EventLeftBracket:      {"LeftBracket", '['},
	EventRightBracket:     {"RightBracket", ']'},
	EventLeftBrace:        {"LeftBrace", '{'},
	EventRightBrace:       {"RightBrace", '}'},
	EventUnderscore:       {"Underscore", '_'},
	EventSTO:              {"STO", 0},
	EventArcsine:          {"Arcsine", 0},
	EventArccosine:        {"Arccosine", 0},
	EventArctangent:       {"Arctangent", 0},
	EventEqual:            {"Equal", '='},
	EventLower:            {"Lower", '<'},
	EventGreater:          {"Greater", '>'},
	EventColon:            {"Colon", ':'},
	EventSemicolon:        {"Semicolon", ';'},
	EventDoubleQuotes:     {"DoubleQuotes", '"'},
	EventPercent:          {"Percent", '%'},
	EventLowerA:           {"LowerA", 'a'},
	EventLowerB:           {"LowerB", 'b'},
	EventLowerC:           {"LowerC", 'c'},
	EventLowerD:           {"LowerD", 'd'},
	EventLowerE:           {"LowerE", 'e'},
	EventLowerF:           {"LowerF", 'f'},
	EventLowerG:           {"LowerG", 'g'},
	EventLowerH:           {"LowerH", 'h'},
	EventLowerI:           {"LowerI", 'i'},
	EventLowerJ:           {"LowerJ", 'j'},
	EventLowerK:           {"LowerK", 'k'},
	EventLowerL:           {"LowerL", 'l'},
	EventLowerM:           {"LowerM", 'm'},
	EventLowerN:           {"LowerN", 'n'},
	EventLowerO:           {"LowerO", 'o'},
	EventLowerP:           {"LowerP", 'p'},
	EventLowerQ:           {"LowerQ", 'q'},
	EventLowerR:           {"LowerR", 'r'},
	EventLowerS:           {"LowerS", 's'},
	EventLowerT:           {"LowerT", 't'},
	EventLowerU:           {"LowerU", 'u'},
	EventLowerV:           {"LowerV", 'v'},
	EventLowerW:           {"LowerW", 'w'},
	EventLowerX:           {"LowerX", 'x'},
	EventLowerY:           {"LowerY", 'y'},
	EventLowerZ:           {"LowerZ", 'z'},
	EventSpace:            {"Space", ' '},
	EventQuestion:         {"Question", '?'},
	EventExclamation:      {"Exclamation", '!'},
	EventUpperA:           {"UpperA", 'A'},
	EventUpperB:           {"UpperB", 'B'},
	EventUpperC:           {"UpperC", 'C'},
	EventUpperD:           {"UpperD", 'D'},
	EventUpperE:           {"UpperE", 'E'},
	EventUpperF:           {"UpperF", 'F'},
	EventUpperG:           {"UpperG", 'G'},
	EventUpperH:           {"UpperH", 'H'},
	EventUpperI:           {"UpperI", 'I'},
	EventUpperJ:           {"UpperJ", 'J'},
	EventUpperK:           {"UpperK", 'K'},
	EventUpperL:           {"UpperL", 'L'},
	EventUpperM:           {"UpperM", 'M'},
	EventUpperN:           {"UpperN", 'N'},
	EventUpperO:           {"UpperO", 'O'},
	EventUpperP:           {"UpperP", 'P'},
	EventUpperQ:           {"UpperQ", 'Q'},
	EventUpperR:           {"UpperR", 'R'},
	EventUpperS:           {"UpperS", 'S'},
	EventUpperT:           {"UpperT", 'T'},
	EventUpperU:           {"UpperU", 'U'},
	EventUpperV:           {"UpperV", 'V'},
	EventUpperW:           {"UpperW", 'W'},
	EventUpperX:           {"UpperX", 'X'},
	EventUpperY:           {"UpperY", 'Y'},
	EventUpperZ:           {"UpperZ", 'Z'},
}

// EventFromCode maps a firmware event code to its Event. Codes outside the
// catalogue, including the firmware's own "none" code, report false.
func EventFromCode(code uint16) (Event, bool) {
	e := Event(code)
	if _, ok := events[e]; !ok {
		return EventNone, false
	}
	return e, true
}

func (e Event) String() string {
	if info, ok := events[e]; ok {
		return info.name
	}
	if e == EventNone {
		return "None"
	}
	return fmt.Sprintf("Event(%d)", uint16(e))
}

// IsDigit reports whether e is one of the ten digit events.
func (e Event) IsDigit() bool {
	_, ok := e.ToDigit()
	return ok
}

// ToDigit returns the decimal value of a digit event.
func (e Event) ToDigit() (uint8, bool) {
	switch e {
	case EventZero:
		return 0, true
	case EventOne:
		return 1, true
	case EventTwo:
		return 2, true
	case EventThree:
		return 3, true
	case EventFour:
		return 4, true
	case EventFive:
		return 5, true
	case EventSix:
		return 6, true
	case EventSeven:
		return 7, true
	case EventEight:
		return 8, true
	case EventNine:
		return 9, true
	}
	return 0, false
}

// Rune returns the character an event types, if any.
func (e Event) Rune() (rune, bool) {
	info, ok := events[e]
	if !ok || info.r == 0 {
		return 0, false
	}
	return info.r, true
}

// EventForRune is the inverse of Event.Rune. Host frontends use it to turn
// typed characters into events.
func EventForRune(r rune) (Event, bool) {
	e, ok := runeEvents[r]
	return e, ok
}

var runeEvents = func() map[rune]Event {
	m := make(map[rune]Event, len(events))
	for e, info := range events {
		if info.r != 0 {
			m[info.r] = e
		}
	}
	return m
}()
