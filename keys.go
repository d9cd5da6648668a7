package sapling

import "unicode"

// Key is the platform-neutral key an event reports.
type Key uint16

const (
	KeyUnknown Key = iota
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEnter
	KeyTab
	KeyEscape
	KeyHome
	KeyEnd
	KeyDelete
	KeyControl
	KeyShiftL
	KeyShiftR
	KeyAlt
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyDot
	KeyComma
	KeyMinus
	KeyPlus
	KeySlash
	KeyBackslash
	KeySemicolon
	KeyQuote
	KeyEqual
	KeyLeftBracket
	KeyRightBracket
	KeyGrave
	// KeyCharacter is any other printable character; the event Text holds it.
	KeyCharacter
)

var keyNames = map[Key]string{
	KeyUnknown: "unknown", KeyBackspace: "backspace", KeyUp: "up", KeyDown: "down",
	KeyLeft: "left", KeyRight: "right", KeySpace: "space", KeyEnter: "enter",
	KeyTab: "tab", KeyEscape: "escape", KeyHome: "home", KeyEnd: "end",
	KeyDelete: "delete", KeyControl: "control", KeyShiftL: "shift_l",
	KeyShiftR: "shift_r", KeyAlt: "alt", KeyCharacter: "character",
}

func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('a' + k - KeyA))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + k - Key0))
	}
	if n, ok := keyNames[k]; ok {
		return n
	}
	return "punct"
}

// ScanCode is a platform-neutral physical key the native backends translate
// to their own key codes. Only keys the shell polls directly have one.
type ScanCode uint8

const (
	ScanBackspace ScanCode = iota
	ScanLeft
	ScanRight
	ScanUp
	ScanDown
	ScanDelete
	ScanEnter
	ScanLeftCtrl
	ScanRightCtrl
	ScanLeftShift
	ScanRightShift
	ScanLeftAlt
	ScanRightAlt
	ScanEscape
	ScanHome
	ScanA
	ScanC
	ScanV
	ScanX
)

// Repeats reports whether holding the key fires repeated down events.
func (c ScanCode) Repeats() bool {
	switch c {
	case ScanLeft, ScanRight, ScanUp, ScanDown, ScanBackspace, ScanDelete:
		return true
	}
	return false
}

// KeyState pairs a polled physical key with the Key its events report.
type KeyState struct {
	Code ScanCode
	Key  Key
}

// DefaultKeyStates returns the keys that produce no printable character
// (navigation, editing, modifiers) plus the clipboard shortcut letters.
// They are polled for down/up edges every frame instead of arriving through
// character input.
func DefaultKeyStates() []KeyState {
	return []KeyState{
		{ScanBackspace, KeyBackspace},
		{ScanLeft, KeyLeft},
		{ScanRight, KeyRight},
		{ScanUp, KeyUp},
		{ScanDown, KeyDown},
		{ScanDelete, KeyDelete},
		{ScanEnter, KeyEnter},
		{ScanLeftCtrl, KeyControl},
		{ScanRightCtrl, KeyControl},
		{ScanLeftShift, KeyShiftL},
		{ScanRightShift, KeyShiftR},
		{ScanLeftAlt, KeyAlt},
		{ScanRightAlt, KeyAlt},
		{ScanEscape, KeyEscape},
		{ScanHome, KeyHome},
		{ScanA, KeyA},
		{ScanC, KeyC},
		{ScanV, KeyV},
		{ScanX, KeyX},
	}
}

var punctKeys = map[rune]Key{
	'.': KeyDot, ',': KeyComma, '-': KeyMinus, '+': KeyPlus, '/': KeySlash,
	'\\': KeyBackslash, ';': KeySemicolon, '\'': KeyQuote, '=': KeyEqual,
	'[': KeyLeftBracket, ']': KeyRightBracket, '`': KeyGrave,
}

// KeyFromRune maps a character to the key that produces it.
func KeyFromRune(r rune) Key {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A')
	case r >= '0' && r <= '9':
		return Key0 + Key(r-'0')
	}
	switch r {
	case '\b':
		return KeyBackspace
	case 0x7f:
		return KeyDelete
	case 0x1b:
		return KeyEscape
	case '\t':
		return KeyTab
	case '\r', '\n':
		return KeyEnter
	case ' ':
		return KeySpace
	}
	if k, ok := punctKeys[r]; ok {
		return k
	}
	if unicode.IsPrint(r) {
		return KeyCharacter
	}
	return KeyUnknown
}

// polledOnly are keys whose character input is dropped because the shell
// already reports them through key polling.
func polledOnly(k Key) bool {
	switch k {
	case KeyUp, KeyDown, KeyLeft, KeyRight, KeyBackspace, KeyControl,
		KeyHome, KeyEscape, KeyDelete, KeyUnknown:
		return true
	}
	return false
}

// KeyEventFromRune converts character input to a key-down event carrying
// the literal text. It returns false for characters of keys that are polled
// directly, so they are not reported twice.
func KeyEventFromRune(r rune) (KeyEvent, bool) {
	k := KeyFromRune(r)
	if polledOnly(k) {
		return KeyEvent{}, false
	}
	return KeyEvent{Key: k, State: ButtonDown, Text: string(r)}, true
}
