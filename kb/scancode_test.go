package kb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func initTestConfig(t *testing.T) {
	testFile := filepath.Join("testdata", "config.yaml")
	Init("test", Version, testFile)
}

func TestEncodeLetters(t *testing.T) {
	initTestConfig(t)
	for char := 'a'; char <= 'z'; char++ {
		lower, ok := Encode(char)
		require.True(t, ok)
		require.False(t, lower.Shift)
		require.Equal(t, uint16(0x1e+char-'a'), lower.Code)

		upper, ok := Encode(char - 'a' + 'A')
		require.True(t, ok)
		require.True(t, upper.Shift)
		require.Equal(t, lower.Code, upper.Code)
	}
}

func TestEncodeDigits(t *testing.T) {
	initTestConfig(t)
	previous := uint16(0)
	for char := '1'; char <= '9'; char++ {
		key, ok := Encode(char)
		require.True(t, ok)
		require.False(t, key.Shift)
		require.Equal(t, uint16(0x02+char-'1'), key.Code)
		if char > '1' {
			require.Equal(t, previous+1, key.Code)
		}
		previous = key.Code
	}

	// '0' is not at the position digit arithmetic would give; it follows
	// '9' on the physical top row
	zero, ok := Encode('0')
	require.True(t, ok)
	require.False(t, zero.Shift)
	require.Equal(t, uint16(0x0b), zero.Code)
	require.NotEqual(t, uint16(0x01), zero.Code)
}

func TestEncodeShiftedSymbols(t *testing.T) {
	initTestConfig(t)
	pairs := map[rune]rune{
		'!': '1',
		'@': '2',
		'#': '3',
		'$': '4',
		'%': '5',
		'^': '6',
		'&': '7',
		'*': '8',
		'(': '9',
		')': '0',
		'_': '-',
		'+': '=',
		'{': '[',
		'}': ']',
		'|': '\\',
		':': ';',
		'"': '\'',
		'~': '`',
		'<': ',',
		'>': '.',
		'?': '/',
	}
	for symbol, base := range pairs {
		shifted, ok := Encode(symbol)
		require.True(t, ok, "symbol %q", symbol)
		require.True(t, shifted.Shift, "symbol %q", symbol)
		unshifted, ok := Encode(base)
		require.True(t, ok, "base %q", base)
		require.False(t, unshifted.Shift, "base %q", base)
		require.Equal(t, unshifted.Code, shifted.Code, "symbol %q base %q", symbol, base)
	}
}

func TestEncodePlainPunctuation(t *testing.T) {
	initTestConfig(t)
	expected := map[rune]uint16{
		' ':  0x39,
		'\n': 0x1c,
		'\t': 0x0f,
		'-':  0x0c,
		'=':  0x0d,
		'[':  0x1a,
		']':  0x1b,
		'\\': 0x2b,
		';':  0x27,
		'\'': 0x28,
		'`':  0x29,
		',':  0x33,
		'.':  0x34,
		'/':  0x35,
	}
	for char, code := range expected {
		key, ok := Encode(char)
		require.True(t, ok, "char %q", char)
		require.False(t, key.Shift, "char %q", char)
		require.Equal(t, code, key.Code, "char %q", char)
	}
}

func TestEncodeUnknown(t *testing.T) {
	initTestConfig(t)
	for _, char := range []rune{'\x07', '\x1b', '\r', 'é', '€', '😀', 'ㅎ'} {
		_, ok := Encode(char)
		require.False(t, ok, "char %q", char)
	}
}

func TestKeymapComplete(t *testing.T) {
	initTestConfig(t)
	keymap := Keymap()
	// 26 letters twice, 10 digits, 14 plain and 21 shifted symbols
	require.Len(t, keymap, 97)
	for char, key := range keymap {
		encoded, ok := Encode(char)
		require.True(t, ok, "char %q", char)
		require.Equal(t, encoded, key, "char %q", char)
	}
}
