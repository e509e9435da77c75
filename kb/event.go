package kb

import (
	"fmt"
)

type KeyDirection int

const (
	KeyDown = KeyDirection(iota)
	KeyUp
)

func (d KeyDirection) String() string {
	if d == KeyDown {
		return "down"
	}
	return "up"
}

// KeyEvent is a single key transition, identified only by its fields.
type KeyEvent struct {
	Code      uint16
	Direction KeyDirection
}

func (e KeyEvent) String() string {
	return fmt.Sprintf("%02x:%s", e.Code, e.Direction)
}
