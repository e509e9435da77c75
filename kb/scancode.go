package kb

/*
 * PC/AT set-1 keyboard scan codes, US layout
 *
 * A scan code identifies a physical key position; the shift flag selects
 * which glyph the key produces.  Shifted symbols therefore reuse the scan
 * code of their unshifted base key ('!' is the '1' key plus shift).
 */

const Version = "0.1.0"

// left shift make code, used to bracket shifted characters
const ShiftCode = 0x2a

const (
	letterBase = 0x1e // 'a'
	digitBase  = 0x02 // '1'

	// '0' sits to the right of '9' on the top row, after the 1-9 run
	digitZeroCode = 0x0b
)

type Key struct {
	Code  uint16
	Shift bool
}

var symbolMap = map[rune]Key{

	' ':  {0x39, false}, // Space
	'\n': {0x1c, false}, // Enter
	'\t': {0x0f, false}, // Tab

	'-':  {0x0c, false}, // Minus
	'=':  {0x0d, false}, // Equals
	'[':  {0x1a, false}, // Left bracket
	']':  {0x1b, false}, // Right bracket
	'\\': {0x2b, false}, // Backslash
	';':  {0x27, false}, // Semicolon
	'\'': {0x28, false}, // Quote
	'`':  {0x29, false}, // Backtick
	',':  {0x33, false}, // Comma
	'.':  {0x34, false}, // Period
	'/':  {0x35, false}, // Slash

	'!': {0x02, true}, // 1 and !
	'@': {0x03, true}, // 2 and @
	'#': {0x04, true}, // 3 and #
	'$': {0x05, true}, // 4 and $
	'%': {0x06, true}, // 5 and %
	'^': {0x07, true}, // 6 and ^
	'&': {0x08, true}, // 7 and &
	'*': {0x09, true}, // 8 and *
	'(': {0x0a, true}, // 9 and (
	')': {0x0b, true}, // 0 and )
	'_': {0x0c, true}, // - and _
	'+': {0x0d, true}, // = and +
	'{': {0x1a, true}, // [ and {
	'}': {0x1b, true}, // ] and }
	'|': {0x2b, true}, // \ and |
	':': {0x27, true}, // ; and :
	'"': {0x28, true}, // ' and "
	'~': {0x29, true}, // ` and ~
	'<': {0x33, true}, // , and <
	'>': {0x34, true}, // . and >
	'?': {0x35, true}, // / and ?
}

// Encode maps a character to its scan code and shift state.  The second
// return value is false for characters with no mapping.
func Encode(char rune) (Key, bool) {
	switch {
	case char >= 'a' && char <= 'z':
		return Key{Code: letterBase + uint16(char-'a')}, true
	case char >= 'A' && char <= 'Z':
		return Key{Code: letterBase + uint16(char-'A'), Shift: true}, true
	case char == '0':
		return Key{Code: digitZeroCode}, true
	case char >= '1' && char <= '9':
		return Key{Code: digitBase + uint16(char-'1')}, true
	}
	key, ok := symbolMap[char]
	return key, ok
}

// Keymap returns the complete mapping for every supported character.
func Keymap() map[rune]Key {
	keys := make(map[rune]Key)
	for char := 'a'; char <= 'z'; char++ {
		key, _ := Encode(char)
		keys[char] = key
		keys[char-'a'+'A'] = Key{Code: key.Code, Shift: true}
	}
	for char := '0'; char <= '9'; char++ {
		key, _ := Encode(char)
		keys[char] = key
	}
	for char, key := range symbolMap {
		keys[char] = key
	}
	return keys
}
