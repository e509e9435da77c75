package kb

import (
	"bytes"
	"errors"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type eventRecorder struct {
	events []KeyEvent
	failAt int // 1-based send ordinal to fail on, 0 for never
	sends  int
}

func (r *eventRecorder) Send(event KeyEvent) error {
	r.sends++
	if r.failAt > 0 && r.sends >= r.failAt {
		return errors.New("injection failed")
	}
	r.events = append(r.events, event)
	return nil
}

func newTestTypist(sink Sink) (*Typist, *[]time.Duration) {
	typist := NewTypist(sink)
	sleeps := &[]time.Duration{}
	typist.sleep = func(interval time.Duration) {
		*sleeps = append(*sleeps, interval)
	}
	return typist, sleeps
}

func down(code uint16) KeyEvent {
	return KeyEvent{Code: code, Direction: KeyDown}
}

func up(code uint16) KeyEvent {
	return KeyEvent{Code: code, Direction: KeyUp}
}

func TestTypeLowercase(t *testing.T) {
	initTestConfig(t)
	recorder := &eventRecorder{}
	typist, _ := newTestTypist(recorder)
	count, err := typist.Type("ab", 0)
	require.Nil(t, err)
	require.Equal(t, 2, count)
	expected := []KeyEvent{
		down(0x1e), up(0x1e),
		down(0x1f), up(0x1f),
	}
	require.Equal(t, expected, recorder.events)
}

func TestTypeShiftBracketing(t *testing.T) {
	initTestConfig(t)
	recorder := &eventRecorder{}
	typist, _ := newTestTypist(recorder)
	count, err := typist.Type("A", 0)
	require.Nil(t, err)
	require.Equal(t, 1, count)
	expected := []KeyEvent{
		down(ShiftCode),
		down(0x1e),
		up(0x1e),
		up(ShiftCode),
	}
	require.Equal(t, expected, recorder.events)
}

func TestTypeEventOrder(t *testing.T) {
	initTestConfig(t)
	recorder := &eventRecorder{}
	typist, _ := newTestTypist(recorder)
	count, err := typist.Type("Ab1!", 0)
	require.Nil(t, err)
	require.Equal(t, 4, count)
	expected := []KeyEvent{
		down(ShiftCode), down(0x1e), up(0x1e), up(ShiftCode),
		down(0x1f), up(0x1f),
		down(0x02), up(0x02),
		down(ShiftCode), down(0x02), up(0x02), up(ShiftCode),
	}
	require.Equal(t, expected, recorder.events)
}

func TestTypeUnknownSkipped(t *testing.T) {
	initTestConfig(t)
	var logBuf bytes.Buffer
	log.SetOutput(&logBuf)
	defer log.SetOutput(os.Stderr)

	recorder := &eventRecorder{}
	typist, _ := newTestTypist(recorder)
	count, err := typist.Type("a😀b", 0)
	require.Nil(t, err)
	require.Equal(t, 2, count)
	expected := []KeyEvent{
		down(0x1e), up(0x1e),
		down(0x1f), up(0x1f),
	}
	require.Equal(t, expected, recorder.events)
	require.Contains(t, logBuf.String(), "unknown character")
	require.Contains(t, logBuf.String(), "0x1F600")
}

func TestTypeDelayAffectsTimingOnly(t *testing.T) {
	initTestConfig(t)
	fast := &eventRecorder{}
	fastTypist, fastSleeps := newTestTypist(fast)
	fastCount, err := fastTypist.Type("Hi there!", 0)
	require.Nil(t, err)

	slow := &eventRecorder{}
	slowTypist, slowSleeps := newTestTypist(slow)
	slowCount, err := slowTypist.Type("Hi there!", 100*time.Millisecond)
	require.Nil(t, err)

	require.Equal(t, fastCount, slowCount)
	require.Equal(t, fast.events, slow.events)
	require.Equal(t, len(*fastSleeps), len(*slowSleeps))
	require.Contains(t, *slowSleeps, 100*time.Millisecond)
	require.NotContains(t, *fastSleeps, 100*time.Millisecond)
}

func TestTypeSettleDelay(t *testing.T) {
	initTestConfig(t)
	recorder := &eventRecorder{}
	typist, sleeps := newTestTypist(recorder)
	_, err := typist.Type("A", 0)
	require.Nil(t, err)
	// shift-down settle, key hold, key-up settle
	require.Equal(t, []time.Duration{SettleDelay, SettleDelay, SettleDelay}, *sleeps)
}

func TestTypeSendFailure(t *testing.T) {
	initTestConfig(t)
	recorder := &eventRecorder{failAt: 3}
	typist, _ := newTestTypist(recorder)
	count, err := typist.Type("ab", 0)
	require.NotNil(t, err)
	require.Equal(t, 1, count)
	expected := []KeyEvent{down(0x1e), up(0x1e)}
	require.Equal(t, expected, recorder.events)
}

func TestTypeNegativeDelay(t *testing.T) {
	initTestConfig(t)
	recorder := &eventRecorder{}
	typist, _ := newTestTypist(recorder)
	count, err := typist.Type("a", -1*time.Millisecond)
	require.NotNil(t, err)
	require.Equal(t, 0, count)
	require.Empty(t, recorder.events)
}

func TestTypeEmpty(t *testing.T) {
	initTestConfig(t)
	recorder := &eventRecorder{}
	typist, _ := newTestTypist(recorder)
	count, err := typist.Type("", 100*time.Millisecond)
	require.Nil(t, err)
	require.Equal(t, 0, count)
	require.Empty(t, recorder.events)
}

func TestDecodeEscapes(t *testing.T) {
	initTestConfig(t)
	require.Equal(t, "line\n", DecodeEscapes(`line\n`))
	require.Equal(t, "it's", DecodeEscapes(`it\x27s`))
	require.Equal(t, "a\tb", DecodeEscapes(`a\tb`))
	require.Equal(t, "plain text", DecodeEscapes("plain text"))
	require.Equal(t, "😀", DecodeEscapes("😀"))
}
