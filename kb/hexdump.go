package kb

import (
	"fmt"
	"strings"
)

const hexdumpLineSize = 16

// HexDump formats data as offset-prefixed hex lines with a printable
// column, used for debug output of the input text.
func HexDump(data []byte) string {
	var output strings.Builder
	for i := 0; i < len(data); i += hexdumpLineSize {
		output.WriteString(fmt.Sprintf("%08x  ", i))
		printable := make([]rune, hexdumpLineSize)
		for j := 0; j < hexdumpLineSize; j++ {
			printable[j] = '.'
			if i+j < len(data) {
				b := data[i+j]
				output.WriteString(fmt.Sprintf("%02x ", b))
				if b >= 32 && b <= 126 {
					printable[j] = rune(b)
				}
			} else {
				output.WriteString("   ")
			}
			if j == 7 {
				output.WriteString("- ")
			}
		}
		output.WriteString(fmt.Sprintf(" |%s|\n", string(printable)))
	}
	return output.String()
}
