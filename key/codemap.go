package key

// names maps key codes to their canonical Linux names.
var names = map[Code]string{
	Reserved: "KEY_RESERVED",
	Esc:      "KEY_ESC",

	// Numbers
	Key1: "KEY_1", Key2: "KEY_2", Key3: "KEY_3", Key4: "KEY_4", Key5: "KEY_5",
	Key6: "KEY_6", Key7: "KEY_7", Key8: "KEY_8", Key9: "KEY_9", Key0: "KEY_0",

	// Letters
	A: "KEY_A", B: "KEY_B", C: "KEY_C", D: "KEY_D", E: "KEY_E", F: "KEY_F", G: "KEY_G",
	H: "KEY_H", I: "KEY_I", J: "KEY_J", K: "KEY_K", L: "KEY_L", M: "KEY_M", N: "KEY_N",
	O: "KEY_O", P: "KEY_P", Q: "KEY_Q", R: "KEY_R", S: "KEY_S", T: "KEY_T", U: "KEY_U",
	V: "KEY_V", W: "KEY_W", X: "KEY_X", Y: "KEY_Y", Z: "KEY_Z",

	// Punctuation and whitespace
	Minus:      "KEY_MINUS",
	Equal:      "KEY_EQUAL",
	Backspace:  "KEY_BACKSPACE",
	Tab:        "KEY_TAB",
	LeftBrace:  "KEY_LEFTBRACE",
	RightBrace: "KEY_RIGHTBRACE",
	Enter:      "KEY_ENTER",
	Semicolon:  "KEY_SEMICOLON",
	Apostrophe: "KEY_APOSTROPHE",
	Grave:      "KEY_GRAVE",
	Backslash:  "KEY_BACKSLASH",
	Comma:      "KEY_COMMA",
	Dot:        "KEY_DOT",
	Slash:      "KEY_SLASH",
	Space:      "KEY_SPACE",
	Key102nd:   "KEY_102ND",

	// Modifiers and locks
	LeftCtrl:   "KEY_LEFTCTRL",
	LeftShift:  "KEY_LEFTSHIFT",
	LeftAlt:    "KEY_LEFTALT",
	LeftMeta:   "KEY_LEFTMETA",
	RightCtrl:  "KEY_RIGHTCTRL",
	RightShift: "KEY_RIGHTSHIFT",
	RightAlt:   "KEY_RIGHTALT",
	RightMeta:  "KEY_RIGHTMETA",
	Compose:    "KEY_COMPOSE",
	CapsLock:   "KEY_CAPSLOCK",
	NumLock:    "KEY_NUMLOCK",
	ScrollLock: "KEY_SCROLLLOCK",

	// Function keys
	F1: "KEY_F1", F2: "KEY_F2", F3: "KEY_F3", F4: "KEY_F4", F5: "KEY_F5", F6: "KEY_F6",
	F7: "KEY_F7", F8: "KEY_F8", F9: "KEY_F9", F10: "KEY_F10", F11: "KEY_F11", F12: "KEY_F12",
	F13: "KEY_F13", F14: "KEY_F14", F15: "KEY_F15", F16: "KEY_F16", F17: "KEY_F17", F18: "KEY_F18",
	F19: "KEY_F19", F20: "KEY_F20", F21: "KEY_F21", F22: "KEY_F22", F23: "KEY_F23", F24: "KEY_F24",

	// Navigation
	Home:     "KEY_HOME",
	Up:       "KEY_UP",
	PageUp:   "KEY_PAGEUP",
	Left:     "KEY_LEFT",
	Right:    "KEY_RIGHT",
	End:      "KEY_END",
	Down:     "KEY_DOWN",
	PageDown: "KEY_PAGEDOWN",
	Insert:   "KEY_INSERT",
	Delete:   "KEY_DELETE",
	SysRq:    "KEY_SYSRQ",
	Pause:    "KEY_PAUSE",

	// Numpad
	Kp0: "KEY_KP0", Kp1: "KEY_KP1", Kp2: "KEY_KP2", Kp3: "KEY_KP3", Kp4: "KEY_KP4",
	Kp5: "KEY_KP5", Kp6: "KEY_KP6", Kp7: "KEY_KP7", Kp8: "KEY_KP8", Kp9: "KEY_KP9",
	KpAsterisk: "KEY_KPASTERISK",
	KpMinus:    "KEY_KPMINUS",
	KpPlus:     "KEY_KPPLUS",
	KpDot:      "KEY_KPDOT",
	KpEnter:    "KEY_KPENTER",
	KpSlash:    "KEY_KPSLASH",
	KpEqual:    "KEY_KPEQUAL",

	// Media
	Mute:         "KEY_MUTE",
	VolumeDown:   "KEY_VOLUMEDOWN",
	VolumeUp:     "KEY_VOLUMEUP",
	Power:        "KEY_POWER",
	NextSong:     "KEY_NEXTSONG",
	PlayPause:    "KEY_PLAYPAUSE",
	PreviousSong: "KEY_PREVIOUSSONG",
	StopCD:       "KEY_STOPCD",
}

// byName is the reverse of names, keyed by the canonical name.
var byName = func() map[string]Code {
	m := make(map[string]Code, len(names))
	for c, n := range names {
		m[n] = c
	}
	return m
}()
