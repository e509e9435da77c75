package kb

import (
	"fmt"
	"log"
	"strconv"
	"time"
	"unicode/utf8"
)

// SettleDelay is the pause between the sub-events of one character,
// the minimum hold a driver stack reliably registers as a discrete
// transition.
const SettleDelay = 10 * time.Millisecond

// Typist expands characters into key event sequences and paces them
// through a Sink.
type Typist struct {
	sink    Sink
	sleep   func(time.Duration)
	verbose bool
	debug   bool
}

func NewTypist(sink Sink) *Typist {
	return &Typist{
		sink:    sink,
		sleep:   time.Sleep,
		verbose: ViperGetBool("verbose"),
		debug:   ViperGetBool("debug"),
	}
}

// Type emits the key events for text in input order, waiting delay between
// characters.  Characters without a mapping are skipped with a warning.
// The returned count is the number of characters fully emitted; a sink
// failure aborts the remainder and returns the count alongside the error.
func (t *Typist) Type(text string, delay time.Duration) (int, error) {
	if delay < 0 {
		return 0, Fatalf("negative delay: %s", delay)
	}
	if t.debug {
		log.Printf("text:\n%s\n", HexDump([]byte(text)))
	}
	count := 0
	for _, char := range text {
		key, ok := Encode(char)
		if !ok {
			log.Printf("Warning: unknown character %s (0x%02X)", strconv.Quote(string(char)), char)
			continue
		}
		if count > 0 {
			t.sleep(delay)
		}
		if key.Shift {
			if err := t.send(ShiftCode, KeyDown); err != nil {
				return count, err
			}
			t.sleep(SettleDelay)
		}
		if err := t.send(key.Code, KeyDown); err != nil {
			return count, err
		}
		t.sleep(SettleDelay)
		if err := t.send(key.Code, KeyUp); err != nil {
			return count, err
		}
		if key.Shift {
			t.sleep(SettleDelay)
			if err := t.send(ShiftCode, KeyUp); err != nil {
				return count, err
			}
		}
		count++
		if t.verbose {
			fmt.Printf("Typed: %s\n", strconv.Quote(string(char)))
			if count%10 == 0 {
				log.Printf("progress: %d characters", count)
			}
		}
	}
	return count, nil
}

func (t *Typist) send(code uint16, direction KeyDirection) error {
	event := KeyEvent{Code: code, Direction: direction}
	if t.debug {
		log.Printf("send(%s)", event)
	}
	err := t.sink.Send(event)
	if err != nil {
		return Fatalf("send %s: %v", event, err)
	}
	return nil
}

// DecodeEscapes expands backslash escapes such as \n and \x27 in text.
// Sequences that do not decode are passed through as literal runes, so
// unescaped input (including multibyte characters) survives unchanged.
func DecodeEscapes(text string) string {
	var decoded string
	for len(text) > 0 {
		char, _, tail, err := strconv.UnquoteChar(text, byte('"'))
		if err != nil {
			r, size := utf8.DecodeRuneInString(text)
			decoded += string(r)
			text = text[size:]
			continue
		}
		decoded += string(char)
		text = tail
	}
	return decoded
}
