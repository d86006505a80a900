package key

// Event types (linux/input-event-codes.h)
const (
	EvSyn uint16 = 0x00
	EvKey uint16 = 0x01
	EvMsc uint16 = 0x04
)

// SynReport marks the end of one atomic group of events.
const SynReport uint16 = 0

// Max is the highest key code a virtual keyboard may advertise.
const Max Code = 0x2ff

// Linux input key codes (KEY_* in linux/input-event-codes.h)
const (
	Reserved   Code = 0
	Esc        Code = 1
	Key1       Code = 2
	Key2       Code = 3
	Key3       Code = 4
	Key4       Code = 5
	Key5       Code = 6
	Key6       Code = 7
	Key7       Code = 8
	Key8       Code = 9
	Key9       Code = 10
	Key0       Code = 11
	Minus      Code = 12
	Equal      Code = 13
	Backspace  Code = 14
	Tab        Code = 15
	Q          Code = 16
	W          Code = 17
	E          Code = 18
	R          Code = 19
	T          Code = 20
	Y          Code = 21
	U          Code = 22
	I          Code = 23
	O          Code = 24
	P          Code = 25
	LeftBrace  Code = 26 // [ and {
	RightBrace Code = 27 // ] and }
	Enter      Code = 28
	LeftCtrl   Code = 29
	A          Code = 30
	S          Code = 31
	D          Code = 32
	F          Code = 33
	G          Code = 34
	H          Code = 35
	J          Code = 36
	K          Code = 37
	L          Code = 38
	Semicolon  Code = 39
	Apostrophe Code = 40
	Grave      Code = 41
	LeftShift  Code = 42
	Backslash  Code = 43
	Z          Code = 44
	X          Code = 45
	C          Code = 46
	V          Code = 47
	B          Code = 48
	N          Code = 49
	M          Code = 50
	Comma      Code = 51
	Dot        Code = 52
	Slash      Code = 53
	RightShift Code = 54
	KpAsterisk Code = 55
	LeftAlt    Code = 56
	Space      Code = 57
	CapsLock   Code = 58

	// Function keys
	F1  Code = 59
	F2  Code = 60
	F3  Code = 61
	F4  Code = 62
	F5  Code = 63
	F6  Code = 64
	F7  Code = 65
	F8  Code = 66
	F9  Code = 67
	F10 Code = 68

	NumLock    Code = 69
	ScrollLock Code = 70

	// Numpad
	Kp7     Code = 71
	Kp8     Code = 72
	Kp9     Code = 73
	KpMinus Code = 74
	Kp4     Code = 75
	Kp5     Code = 76
	Kp6     Code = 77
	KpPlus  Code = 78
	Kp1     Code = 79
	Kp2     Code = 80
	Kp3     Code = 81
	Kp0     Code = 82
	KpDot   Code = 83

	Key102nd Code = 86 // Non-US \ and |
	F11      Code = 87
	F12      Code = 88

	KpEnter   Code = 96
	RightCtrl Code = 97
	KpSlash   Code = 98
	SysRq     Code = 99
	RightAlt  Code = 100

	// Navigation
	Home     Code = 102
	Up       Code = 103
	PageUp   Code = 104
	Left     Code = 105
	Right    Code = 106
	End      Code = 107
	Down     Code = 108
	PageDown Code = 109
	Insert   Code = 110
	Delete   Code = 111

	// Media
	Mute       Code = 113
	VolumeDown Code = 114
	VolumeUp   Code = 115
	Power      Code = 116
	KpEqual    Code = 117
	Pause      Code = 119

	LeftMeta  Code = 125 // Windows/Super key
	RightMeta Code = 126
	Compose   Code = 127 // Menu key

	// Extended function keys
	F13 Code = 183
	F14 Code = 184
	F15 Code = 185
	F16 Code = 186
	F17 Code = 187
	F18 Code = 188
	F19 Code = 189
	F20 Code = 190
	F21 Code = 191
	F22 Code = 192
	F23 Code = 193
	F24 Code = 194

	NextSong     Code = 163
	PlayPause    Code = 164
	PreviousSong Code = 165
	StopCD       Code = 166
)
